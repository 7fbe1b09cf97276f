// Package backend: real-lane kernels, delegated to gonum.
// High-level factorizations go through gonum/mat; raw-buffer routines mat
// does not surface call lapack/gonum directly. The real Schur form is
// assembled from Dgehrd/Dorghr/Dhseqr; the generalized eigenproblem is
// widened to the complex lane, which gonum does not cover either way.

package backend

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// lapackImpl is the stateless pure-Go LAPACK implementation.
var lapackImpl = lapackgonum.Implementation{}

// flatten copies a mat.Dense into a contiguous row-major slice,
// respecting the source stride.
func flatten(d *mat.Dense) []float64 {
	r, c := d.Dims()
	raw := d.RawMatrix()
	out := make([]float64, r*c)
	var i int
	for i = 0; i < r; i++ {
		copy(out[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}
	return out
}

// flattenC copies a mat.CDense into a contiguous row-major slice.
func flattenC(d *mat.CDense) []complex128 {
	r, c := d.Dims()
	raw := d.RawCMatrix()
	out := make([]complex128, r*c)
	var i int
	for i = 0; i < r; i++ {
		copy(out[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}
	return out
}

// checkPositive validates a buffer against strictly positive dimensions.
// Degenerate (zero-dimension) shapes are the dense layer's business and
// never reach the engine.
func checkPositive[T any](buf []T, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrShape
	}
	return checkShape(buf, rows, cols)
}

func (gonumEngine) DLU(a []float64, m, n int) ([]int, []float64, []float64, error) {
	if err := checkPositive(a, m, n); err != nil {
		return nil, nil, nil, err
	}
	k := min(m, n)
	f := append([]float64(nil), a...)
	ipiv := make([]int, k)
	// ok=false only flags an exactly zero pivot; the factors are still
	// fully formed, so singularity is not an error for LU itself.
	lapackImpl.Dgetrf(m, n, f, n, ipiv)

	perm := make([]int, m)
	var i, j int
	for i = range perm {
		perm[i] = i
	}
	for i = 0; i < k; i++ {
		perm[i], perm[ipiv[i]] = perm[ipiv[i]], perm[i]
	}
	l := make([]float64, m*m)
	u := make([]float64, m*n)
	for i = 0; i < m; i++ {
		l[i*m+i] = 1
		for j = 0; j < min(i, k); j++ {
			l[i*m+j] = f[i*n+j]
		}
		if i < k {
			for j = i; j < n; j++ {
				u[i*n+j] = f[i*n+j]
			}
		}
	}
	return perm, l, u, nil
}

func (gonumEngine) DQR(a []float64, m, n int) ([]float64, []float64, error) {
	if err := checkPositive(a, m, n); err != nil {
		return nil, nil, err
	}
	k := min(m, n)
	f := append([]float64(nil), a...)
	tau := make([]float64, k)

	work := make([]float64, 1)
	lapackImpl.Dgeqrf(m, n, f, n, tau, work, -1)
	work = make([]float64, max(int(work[0]), 1))
	lapackImpl.Dgeqrf(m, n, f, n, tau, work, len(work))

	r := make([]float64, m*n)
	var i, j int
	for i = 0; i < m; i++ {
		for j = i; j < n; j++ {
			r[i*n+j] = f[i*n+j]
		}
	}
	// Assemble the full m×m Q from the reflectors stored below the
	// diagonal of the factored buffer.
	q := make([]float64, m*m)
	for i = 0; i < m; i++ {
		for j = 0; j < k && j < i; j++ {
			q[i*m+j] = f[i*n+j]
		}
	}
	lapackImpl.Dorgqr(m, m, k, q, m, tau, work, -1)
	work = make([]float64, max(int(work[0]), 1))
	lapackImpl.Dorgqr(m, m, k, q, m, tau, work, len(work))
	return q, r, nil
}

func (gonumEngine) DSVD(a []float64, m, n int) ([]float64, []float64, []float64, error) {
	if err := checkPositive(a, m, n); err != nil {
		return nil, nil, nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(m, n, append([]float64(nil), a...)), mat.SVDFull); !ok {
		return nil, nil, nil, ErrConvergence
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	return flatten(&u), svd.Values(nil), flatten(&v), nil
}

// DSchur reduces a to upper Hessenberg form, accumulates the orthogonal
// similarity and runs the shifted QR iteration on the Hessenberg factor.
// The returned t is quasi-triangular: 1×1 blocks for real eigenvalues,
// 2×2 blocks for complex conjugate pairs.
func (gonumEngine) DSchur(a []float64, n int) ([]float64, []float64, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, err
	}
	h := append([]float64(nil), a...)
	tau := make([]float64, n-1)

	work := make([]float64, 1)
	lapackImpl.Dgehrd(n, 0, n-1, h, n, tau, work, -1)
	work = make([]float64, max(int(work[0]), n))
	lapackImpl.Dgehrd(n, 0, n-1, h, n, tau, work, len(work))

	// Build Q from the reflectors before scrubbing them out of h.
	q := append([]float64(nil), h...)
	lapackImpl.Dorghr(n, 0, n-1, q, n, tau, work, -1)
	work = make([]float64, max(int(work[0]), n))
	lapackImpl.Dorghr(n, 0, n-1, q, n, tau, work, len(work))

	var i, j int
	for i = 2; i < n; i++ {
		for j = 0; j < i-1; j++ {
			h[i*n+j] = 0
		}
	}

	wr := make([]float64, n)
	wi := make([]float64, n)
	lapackImpl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig, n, 0, n-1, h, n, wr, wi, q, n, work, -1)
	work = make([]float64, max(int(work[0]), n))
	unconverged := lapackImpl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig, n, 0, n-1, h, n, wr, wi, q, n, work, len(work))
	if unconverged > 0 {
		return nil, nil, ErrConvergence
	}
	return q, h, nil
}

func (gonumEngine) DCholesky(a []float64, n int) ([]float64, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, err
	}
	f := append([]float64(nil), a...)
	if ok := lapackImpl.Dpotrf(blas.Lower, n, f, n); !ok {
		return nil, ErrNotPositiveDefinite
	}
	// Zero the untouched upper triangle.
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			f[i*n+j] = 0
		}
	}
	return f, nil
}

func (gonumEngine) DEig(a []float64, n int, left, right bool) ([]complex128, []complex128, []complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, nil, err
	}
	kind := mat.EigenNone
	if left {
		kind |= mat.EigenLeft
	}
	if right {
		kind |= mat.EigenRight
	}
	var eg mat.Eigen
	if ok := eg.Factorize(mat.NewDense(n, n, append([]float64(nil), a...)), kind); !ok {
		return nil, nil, nil, ErrConvergence
	}
	vals := eg.Values(nil)
	var vl, vr []complex128
	if left {
		var cd mat.CDense
		eg.LeftVectorsTo(&cd)
		vl = flattenC(&cd)
	}
	if right {
		var cd mat.CDense
		eg.VectorsTo(&cd)
		vr = flattenC(&cd)
	}
	return vals, vl, vr, nil
}

func (gonumEngine) DEigSym(a []float64, n int, vectors bool) ([]float64, []float64, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, err
	}
	// Only the lower triangle of a is read; it is mirrored into a full
	// symmetric matrix, so an asymmetric input is silently symmetrized.
	full := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			full[i*n+j] = a[i*n+j]
			full[j*n+i] = a[i*n+j]
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, full), vectors); !ok {
		return nil, nil, ErrConvergence
	}
	var vecs []float64
	if vectors {
		var ev mat.Dense
		es.VectorsTo(&ev)
		vecs = flatten(&ev)
	}
	return es.Values(nil), vecs, nil
}

// DEigGen solves the real generalized problem by widening the pencil to
// the complex lane, which handles real input exactly. Beta is rotated
// onto the non-negative real axis afterwards, giving the LAPACK-style
// (complex alpha, real beta) convention; an exactly zero beta stays zero.
func (e gonumEngine) DEigGen(a, b []float64, n int, left, right bool) ([]complex128, []float64, []complex128, []complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := checkPositive(b, n, n); err != nil {
		return nil, nil, nil, nil, err
	}
	az := make([]complex128, len(a))
	bz := make([]complex128, len(b))
	var k int
	for k = range a {
		az[k] = complex(a[k], 0)
	}
	for k = range b {
		bz[k] = complex(b[k], 0)
	}
	alphaz, betaz, vl, vr, err := e.ZEigGen(az, bz, n, left, right)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	alpha := make([]complex128, n)
	beta := make([]float64, n)
	for k = 0; k < n; k++ {
		alpha[k] = alphaz[k]
		r := cmplx.Abs(betaz[k])
		if r == 0 {
			continue
		}
		// Rotating (alpha, beta) by a unit phase leaves the eigenvalue and
		// the eigenvectors untouched.
		alpha[k] *= cmplx.Conj(betaz[k]) / complex(r, 0)
		beta[k] = r
	}
	return alpha, beta, vl, vr, nil
}

func (gonumEngine) DSolve(a []float64, n int, b []float64, nrhs int) ([]float64, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, err
	}
	if err := checkPositive(b, n, nrhs); err != nil {
		return nil, err
	}
	fa := append([]float64(nil), a...)
	x := append([]float64(nil), b...)
	ipiv := make([]int, n)
	if ok := lapackImpl.Dgesv(n, nrhs, fa, n, ipiv, x, nrhs); !ok {
		return nil, ErrSingular
	}
	return x, nil
}

func (e gonumEngine) DExpm(a []float64, n int) ([]float64, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, err
	}
	return expmPade(a, n, absReal, func(m, rhs []float64) ([]float64, error) {
		return e.DSolve(m, n, rhs, n)
	})
}
