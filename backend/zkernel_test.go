package backend_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvldense/backend"
)

// a33 is the shared non-Hermitian complex test matrix.
var a33 = []complex128{
	1 + 1i, 2, 3 - 1i,
	1i, -1, 2 + 2i,
	0, 1, 1 - 1i,
}

func TestZLUReconstruction(t *testing.T) {
	perm, l, u, err := eng.ZLU(a33, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	lu := mulC(l, u, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e := lu[i*3+j] - a33[perm[i]*3+j]
			if cmplx.Abs(e) > tol {
				t.Fatalf("LU row %d != A row perm[%d]", i, i)
			}
		}
	}
	for i := 0; i < 3; i++ {
		if l[i*3+i] != 1 {
			t.Fatalf("L diagonal not unit at %d", i)
		}
		for j := 0; j < i; j++ {
			if u[i*3+j] != 0 {
				t.Fatalf("U not upper at (%d,%d)", i, j)
			}
		}
	}
}

func TestZQRReconstruction(t *testing.T) {
	cases := []struct {
		name string
		m, n int
		a    []complex128
	}{
		{"square", 3, 3, a33},
		{"tall", 3, 2, []complex128{1, 1i, 2 - 1i, 3, 0, 1 + 1i}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, r, err := eng.ZQR(tc.a, tc.m, tc.n)
			if err != nil {
				t.Fatal(err)
			}
			requireUnitary(t, q, tc.m)
			if d := maxDiffC(t, mulC(q, r, tc.m, tc.m, tc.n), tc.a); d > tol {
				t.Fatalf("QR != A, deviation %g", d)
			}
			for i := 0; i < tc.m; i++ {
				for j := 0; j < i && j < tc.n; j++ {
					if cmplx.Abs(r[i*tc.n+j]) > tol {
						t.Fatalf("R not upper at (%d,%d)", i, j)
					}
				}
			}
		})
	}
}

func TestZCholesky(t *testing.T) {
	// Hermitian positive definite 2×2.
	h := []complex128{2, 1 + 1i, 1 - 1i, 3}
	l, err := eng.ZCholesky(h, 2)
	if err != nil {
		t.Fatal(err)
	}
	rec := mulC(l, ctransC(l, 2, 2), 2, 2, 2)
	if d := maxDiffC(t, rec, h); d > tol {
		t.Fatalf("L·Lᴴ != A, deviation %g", d)
	}
	for i := 0; i < 2; i++ {
		d := l[i*2+i]
		if imag(d) != 0 || real(d) <= 0 {
			t.Fatalf("L diagonal not real positive: %v", d)
		}
	}

	_, err = eng.ZCholesky([]complex128{1, 0, 0, -1}, 2)
	if !errors.Is(err, backend.ErrNotPositiveDefinite) {
		t.Fatalf("err = %v", err)
	}
}

func TestZSchur(t *testing.T) {
	q, s, err := eng.ZSchur(a33, 3)
	if err != nil {
		t.Fatal(err)
	}
	requireUnitary(t, q, 3)
	rec := mulC(mulC(q, s, 3, 3, 3), ctransC(q, 3, 3), 3, 3, 3)
	if d := maxDiffC(t, rec, a33); d > 1e-8 {
		t.Fatalf("QTQᴴ != A, deviation %g", d)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < i; j++ {
			if s[i*3+j] != 0 {
				t.Fatalf("T not upper triangular at (%d,%d)", i, j)
			}
		}
	}
	// The diagonal of T carries the spectrum; trace is invariant.
	var trT, trA complex128
	for i := 0; i < 3; i++ {
		trT += s[i*3+i]
		trA += a33[i*3+i]
	}
	if cmplx.Abs(trT-trA) > 1e-8 {
		t.Fatalf("trace drift: %v vs %v", trT, trA)
	}
}

func TestZEig(t *testing.T) {
	vals, vl, vr, err := eng.ZEig(a33, 3, true, true)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 3; k++ {
		right := []complex128{vr[k], vr[3+k], vr[6+k]}
		av := mulC(a33, right, 3, 3, 1)
		for i := 0; i < 3; i++ {
			if e := av[i] - vals[k]*right[i]; cmplx.Abs(e) > 1e-8 {
				t.Fatalf("A·v != λ·v for eigenvalue %v", vals[k])
			}
		}
		left := []complex128{vl[k], vl[3+k], vl[6+k]}
		wa := mulC(ctransC(left, 3, 1), a33, 1, 3, 3)
		for i := 0; i < 3; i++ {
			want := cmplx.Conj(left[i]) * vals[k]
			if e := wa[i] - want; cmplx.Abs(e) > 1e-8 {
				t.Fatalf("wᴴ·A != λ·wᴴ for eigenvalue %v", vals[k])
			}
		}
	}
}

func TestZEigHerm(t *testing.T) {
	h := []complex128{
		2, 0, 0,
		1 + 1i, 3, 0,
		0, -2i, 1,
	}
	// Full Hermitian matrix implied by the lower triangle above.
	full := []complex128{
		2, 1 - 1i, 0,
		1 + 1i, 3, 2i,
		0, -2i, 1,
	}
	vals, vecs, err := eng.ZEigHerm(h, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < 3; i++ {
		if vals[i] < vals[i-1] {
			t.Fatalf("eigenvalues not ascending: %v", vals)
		}
	}
	requireUnitary(t, vecs, 3)
	for k := 0; k < 3; k++ {
		col := []complex128{vecs[k], vecs[3+k], vecs[6+k]}
		av := mulC(full, col, 3, 3, 1)
		for i := 0; i < 3; i++ {
			if e := av[i] - complex(vals[k], 0)*col[i]; cmplx.Abs(e) > 1e-8 {
				t.Fatalf("A·v != λ·v at eigenvalue %v", vals[k])
			}
		}
	}
	// Trace check: 2 + 3 + 1.
	sum := vals[0] + vals[1] + vals[2]
	if math.Abs(sum-6) > 1e-8 {
		t.Fatalf("eigenvalue sum = %v, want 6", sum)
	}
}

func TestZSVD(t *testing.T) {
	cases := []struct {
		name string
		m, n int
		a    []complex128
	}{
		{"square", 3, 3, a33},
		{"tall", 3, 2, []complex128{1 + 1i, 0, 0, 2, 1, 1i}},
		{"wide", 2, 3, []complex128{1, 1i, 0, 2 - 1i, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, s, v, err := eng.ZSVD(tc.a, tc.m, tc.n)
			if err != nil {
				t.Fatal(err)
			}
			requireUnitary(t, u, tc.m)
			requireUnitary(t, v, tc.n)
			for i := 1; i < len(s); i++ {
				if s[i] > s[i-1] {
					t.Fatalf("singular values not descending: %v", s)
				}
			}
			sm := make([]complex128, tc.m*tc.n)
			for i := range s {
				sm[i*tc.n+i] = complex(s[i], 0)
			}
			rec := mulC(mulC(u, sm, tc.m, tc.m, tc.n), ctransC(v, tc.n, tc.n), tc.m, tc.n, tc.n)
			if d := maxDiffC(t, rec, tc.a); d > 1e-8 {
				t.Fatalf("U·S·Vᴴ != A, deviation %g", d)
			}
		})
	}
}

func TestZEigGenIdentityPencil(t *testing.T) {
	// With B = I the pencil reduces to the ordinary eigenproblem of a
	// triangular A, whose spectrum is its diagonal.
	a := []complex128{2, 1, 0, 3 + 1i}
	alpha, beta, _, vr, err := eng.ZEigGen(a, identC(2), 2, false, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []complex128{2, 3 + 1i}
	seen := make([]bool, 2)
	for i := range alpha {
		if beta[i] == 0 {
			t.Fatalf("unexpected infinite eigenvalue, beta = %v", beta)
		}
		v := alpha[i] / beta[i]
		for w := range want {
			if cmplx.Abs(v-want[w]) < 1e-8 {
				seen[w] = true
			}
		}
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("spectrum %v/%v missing a diagonal entry", alpha, beta)
	}
	// β·A·x = α·B·x for each right vector.
	for k := 0; k < 2; k++ {
		col := []complex128{vr[k], vr[2+k]}
		av := mulC(a, col, 2, 2, 1)
		for i := 0; i < 2; i++ {
			lhs := beta[k] * av[i]
			rhs := alpha[k] * col[i]
			if cmplx.Abs(lhs-rhs) > 1e-8 {
				t.Fatalf("pencil residual at column %d", k)
			}
		}
	}
}

func TestZEigGenSingularPencil(t *testing.T) {
	a := identC(2)
	b := []complex128{1, 0, 0, 0}
	alpha, beta, _, vr, err := eng.ZEigGen(a, b, 2, false, true)
	if err != nil {
		t.Fatal(err)
	}
	finiteSeen, infiniteSeen := false, false
	for i := range alpha {
		if beta[i] == 0 {
			infiniteSeen = true
			// The infinite eigenvector lies in the null space of B.
			col := []complex128{vr[i], vr[2+i]}
			bv := mulC(b, col, 2, 2, 1)
			if cmplx.Abs(bv[0])+cmplx.Abs(bv[1]) > 1e-8 {
				t.Fatalf("B·x != 0 on the infinite eigenvector")
			}
			continue
		}
		v := alpha[i] / beta[i]
		if cmplx.Abs(v-1) > 1e-8 {
			t.Fatalf("finite eigenvalue %v, want 1", v)
		}
		finiteSeen = true
	}
	if !finiteSeen || !infiniteSeen {
		t.Fatalf("alpha=%v beta=%v, want one finite and one infinite", alpha, beta)
	}
}

func TestZSolve(t *testing.T) {
	a := []complex128{1 + 1i, 2, 0, 3}
	b := []complex128{3 + 1i, 6}
	x, err := eng.ZSolve(a, 2, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxDiffC(t, mulC(a, x, 2, 2, 1), b); d > tol {
		t.Fatalf("A·x != b, deviation %g", d)
	}

	_, err = eng.ZSolve([]complex128{1, 1i, 1, 1i}, 2, b, 1)
	if !errors.Is(err, backend.ErrSingular) {
		t.Fatalf("singular solve err = %v", err)
	}
}

func TestZExpm(t *testing.T) {
	// exp of a diagonal matrix exponentiates the diagonal.
	a := []complex128{1i * math.Pi, 0, 0, 0}
	e, err := eng.ZExpm(a, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(e[0]-(-1)) > 1e-12 || cmplx.Abs(e[3]-1) > 1e-12 {
		t.Fatalf("expm diag = %v, %v", e[0], e[3])
	}
}

func TestShapeValidation(t *testing.T) {
	if _, _, _, err := eng.DLU(nil, 0, 3); !errors.Is(err, backend.ErrShape) {
		t.Fatalf("DLU zero rows err = %v", err)
	}
	if _, err := eng.ZCholesky([]complex128{1, 2}, 2); !errors.Is(err, backend.ErrShape) {
		t.Fatalf("short buffer err = %v", err)
	}
}
