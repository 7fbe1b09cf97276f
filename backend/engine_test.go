package backend_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvldense/backend"
)

const tol = 1e-9

// ---------- flat-buffer helpers ----------

func mulR(a, b []float64, m, k, n int) []float64 {
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for p := 0; p < k; p++ {
				s += a[i*k+p] * b[p*n+j]
			}
			out[i*n+j] = s
		}
	}
	return out
}

func mulC(a, b []complex128, m, k, n int) []complex128 {
	out := make([]complex128, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for p := 0; p < k; p++ {
				s += a[i*k+p] * b[p*n+j]
			}
			out[i*n+j] = s
		}
	}
	return out
}

func transR(a []float64, m, n int) []float64 {
	out := make([]float64, n*m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j*m+i] = a[i*n+j]
		}
	}
	return out
}

func ctransC(a []complex128, m, n int) []complex128 {
	out := make([]complex128, n*m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			e := a[i*n+j]
			out[j*m+i] = complex(real(e), -imag(e))
		}
	}
	return out
}

func maxDiffR(t *testing.T, a, b []float64) float64 {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
}

func maxDiffC(t *testing.T, a, b []complex128) float64 {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	var d float64
	for i := range a {
		e := a[i] - b[i]
		d = math.Max(d, math.Hypot(real(e), imag(e)))
	}
	return d
}

func identR(n int) []float64 {
	id := make([]float64, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}
	return id
}

func identC(n int) []complex128 {
	id := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}
	return id
}

// requireOrthogonal checks QᵀQ = I for a real m×m factor.
func requireOrthogonal(t *testing.T, q []float64, m int) {
	t.Helper()
	if d := maxDiffR(t, mulR(transR(q, m, m), q, m, m, m), identR(m)); d > tol {
		t.Fatalf("Q not orthogonal, deviation %g", d)
	}
}

// requireUnitary checks QᴴQ = I for a complex m×m factor.
func requireUnitary(t *testing.T, q []complex128, m int) {
	t.Helper()
	if d := maxDiffC(t, mulC(ctransC(q, m, m), q, m, m, m), identC(m)); d > tol {
		t.Fatalf("Q not unitary, deviation %g", d)
	}
}

var eng = backend.Default()

// ---------- real lane ----------

func TestDLUReconstruction(t *testing.T) {
	a := []float64{2, 1, 1, 4, -6, 0, -2, 7, 2}
	perm, l, u, err := eng.DLU(a, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	lu := mulR(l, u, 3, 3, 3)
	// Row i of L·U must reproduce row perm[i] of A.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(lu[i*3+j]-a[perm[i]*3+j]) > tol {
				t.Fatalf("row %d col %d: LU=%g A[perm]=%g", i, j, lu[i*3+j], a[perm[i]*3+j])
			}
		}
	}
	// L unit lower, U upper.
	for i := 0; i < 3; i++ {
		if math.Abs(l[i*3+i]-1) > tol {
			t.Fatalf("L diagonal not unit at %d", i)
		}
		for j := i + 1; j < 3; j++ {
			if l[i*3+j] != 0 {
				t.Fatalf("L not lower triangular at (%d,%d)", i, j)
			}
		}
		for j := 0; j < i; j++ {
			if u[i*3+j] != 0 {
				t.Fatalf("U not upper triangular at (%d,%d)", i, j)
			}
		}
	}
}

func TestDQRShapes(t *testing.T) {
	cases := []struct {
		name string
		m, n int
		a    []float64
	}{
		{"tall", 4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"square", 3, 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2}},
		{"wide", 2, 4, []float64{1, 0, 2, -1, 3, 1, 0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, r, err := eng.DQR(tc.a, tc.m, tc.n)
			if err != nil {
				t.Fatal(err)
			}
			requireOrthogonal(t, q, tc.m)
			if d := maxDiffR(t, mulR(q, r, tc.m, tc.m, tc.n), tc.a); d > tol {
				t.Fatalf("QR != A, deviation %g", d)
			}
			for i := 0; i < tc.m; i++ {
				for j := 0; j < i && j < tc.n; j++ {
					if math.Abs(r[i*tc.n+j]) > tol {
						t.Fatalf("R not upper trapezoidal at (%d,%d)", i, j)
					}
				}
			}
		})
	}
}

func TestDSVDReconstruction(t *testing.T) {
	a := []float64{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}
	m, n := 4, 3
	u, s, v, err := eng.DSVD(a, m, n)
	if err != nil {
		t.Fatal(err)
	}
	requireOrthogonal(t, u, m)
	requireOrthogonal(t, v, n)
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			t.Fatalf("singular values not descending: %v", s)
		}
	}
	sm := make([]float64, m*n)
	for i := range s {
		sm[i*n+i] = s[i]
	}
	if d := maxDiffR(t, mulR(mulR(u, sm, m, m, n), transR(v, n, n), m, n, n), a); d > tol {
		t.Fatalf("U·S·Vᵀ != A, deviation %g", d)
	}
}

func TestDSchur(t *testing.T) {
	a := []float64{3, 1, 0, -1, 2, 1, 1, 0, 2}
	q, tt, err := eng.DSchur(a, 3)
	if err != nil {
		t.Fatal(err)
	}
	requireOrthogonal(t, q, 3)
	// A = Q·T·Qᵀ.
	rec := mulR(mulR(q, tt, 3, 3, 3), transR(q, 3, 3), 3, 3, 3)
	if d := maxDiffR(t, rec, a); d > tol {
		t.Fatalf("QTQᵀ != A, deviation %g", d)
	}
	// Quasi-triangular: nothing below the first subdiagonal.
	for i := 2; i < 3; i++ {
		for j := 0; j < i-1; j++ {
			if math.Abs(tt[i*3+j]) > tol {
				t.Fatalf("T not quasi-triangular at (%d,%d)", i, j)
			}
		}
	}
}

func TestDCholesky(t *testing.T) {
	a := []float64{4, 12, -16, 12, 37, -43, -16, -43, 98}
	l, err := eng.DCholesky(a, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 0, 0, 6, 1, 0, -8, 5, 3}
	if d := maxDiffR(t, l, want); d > tol {
		t.Fatalf("L = %v, want %v", l, want)
	}

	_, err = eng.DCholesky([]float64{1, 2, 2, 1}, 2)
	if !errors.Is(err, backend.ErrNotPositiveDefinite) {
		t.Fatalf("err = %v", err)
	}
}

func TestDEigRotation(t *testing.T) {
	a := []float64{0, -1, 1, 0}
	vals, _, vr, err := eng.DEig(a, 2, false, true)
	if err != nil {
		t.Fatal(err)
	}
	seenPlus, seenMinus := false, false
	for _, v := range vals {
		if math.Abs(real(v)) > tol {
			t.Fatalf("eigenvalue %v not purely imaginary", v)
		}
		if math.Abs(imag(v)-1) < tol {
			seenPlus = true
		}
		if math.Abs(imag(v)+1) < tol {
			seenMinus = true
		}
	}
	if !seenPlus || !seenMinus {
		t.Fatalf("eigenvalues = %v, want ±i", vals)
	}
	// A·v = λ·v column by column.
	ac := []complex128{0, -1, 1, 0}
	for k := 0; k < 2; k++ {
		col := []complex128{vr[k], vr[2+k]}
		av := mulC(ac, col, 2, 2, 1)
		for i := 0; i < 2; i++ {
			if e := av[i] - vals[k]*col[i]; math.Hypot(real(e), imag(e)) > tol {
				t.Fatalf("A·v != λ·v for column %d", k)
			}
		}
	}
}

func TestDEigSymReadsLowerTriangle(t *testing.T) {
	// Upper triangle is garbage on purpose; only the lower half counts.
	a := []float64{2, 999, 1, 3}
	vals, vecs, err := eng.DEigSym(a, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	// Spectrum of [[2,1],[1,3]]: (5 ± √5)/2.
	want := []float64{(5 - math.Sqrt(5)) / 2, (5 + math.Sqrt(5)) / 2}
	for i := range want {
		if math.Abs(vals[i]-want[i]) > tol {
			t.Fatalf("vals = %v, want %v", vals, want)
		}
	}
	sym := []float64{2, 1, 1, 3}
	for k := 0; k < 2; k++ {
		col := []float64{vecs[k], vecs[2+k]}
		av := mulR(sym, col, 2, 2, 1)
		for i := 0; i < 2; i++ {
			if math.Abs(av[i]-vals[k]*col[i]) > tol {
				t.Fatalf("A·v != λ·v for column %d", k)
			}
		}
	}
}

func TestDEigGenSingularB(t *testing.T) {
	a := identR(2)
	b := []float64{1, 0, 0, 0}
	alpha, beta, _, _, err := eng.DEigGen(a, b, 2, false, false)
	if err != nil {
		t.Fatal(err)
	}
	finiteSeen, infiniteSeen := false, false
	for i := range alpha {
		if beta[i] == 0 {
			infiniteSeen = true
			continue
		}
		ratio := alpha[i] / complex(beta[i], 0)
		if math.Hypot(real(ratio)-1, imag(ratio)) > tol {
			t.Fatalf("finite eigenvalue %v, want 1", ratio)
		}
		finiteSeen = true
	}
	if !finiteSeen || !infiniteSeen {
		t.Fatalf("alpha=%v beta=%v, want one finite and one infinite", alpha, beta)
	}
}

func TestDSolve(t *testing.T) {
	a := []float64{3, 1, 1, 2}
	b := []float64{9, 8}
	x, err := eng.DSolve(a, 2, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiffR(t, mulR(a, x, 2, 2, 1), b); d > tol {
		t.Fatalf("A·x != b, deviation %g", d)
	}

	_, err = eng.DSolve([]float64{1, 2, 2, 4}, 2, b, 1)
	if !errors.Is(err, backend.ErrSingular) {
		t.Fatalf("singular solve err = %v", err)
	}
}

func TestDExpmRotation(t *testing.T) {
	theta := math.Pi / 3
	a := []float64{0, -theta, theta, 0}
	e, err := eng.DExpm(a, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{math.Cos(theta), -math.Sin(theta), math.Sin(theta), math.Cos(theta)}
	if d := maxDiffR(t, e, want); d > 1e-12 {
		t.Fatalf("expm deviation %g", d)
	}
}

func TestDExpmScaling(t *testing.T) {
	// Norm far above theta13 exercises the squaring phase.
	a := []float64{10, 0, 0, -10}
	e, err := eng.DExpm(a, 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(e[0]-math.Exp(10)) > 1e-6*math.Exp(10) || math.Abs(e[3]-math.Exp(-10)) > 1e-9 {
		t.Fatalf("expm diag = %v, %v", e[0], e[3])
	}
	if e[1] != 0 || e[2] != 0 {
		t.Fatalf("expm off-diagonal nonzero: %v", e)
	}
}
