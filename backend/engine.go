// Package backend: the Engine interface, sentinel errors and the default
// engine constructor.

package backend

import "errors"

var (
	// ErrSingular is returned when a linear solve meets an exactly
	// singular matrix (zero pivot during elimination).
	ErrSingular = errors.New("backend: matrix is singular")

	// ErrNotPositiveDefinite is returned by the Cholesky kernels when a
	// non-positive pivot shows the matrix is not positive definite.
	ErrNotPositiveDefinite = errors.New("backend: matrix is not positive definite")

	// ErrConvergence is returned when an iterative eigenvalue or singular
	// value algorithm fails to converge within its iteration budget.
	ErrConvergence = errors.New("backend: algorithm failed to converge")

	// ErrShape is returned when a buffer length disagrees with the stated
	// dimensions. This is a programmer error surfaced as a value to keep
	// the engine panic-free.
	ErrShape = errors.New("backend: buffer length does not match dimensions")
)

// Engine supplies the factorization and solver primitives the dense layer
// builds on. All matrices are flat row-major slices with explicit
// dimensions; implementations must not modify their inputs and must
// return freshly allocated outputs.
//
// Dimension conventions (m×n input, k = min(m,n)):
//
//	LU:   perm has length m with A[perm[i],:] = (L·U)[i,:]; l is m×m unit
//	      lower triangular (identity beyond column k), u is m×n upper
//	      trapezoidal.
//	QR:   q is m×m unitary, r is m×n upper trapezoidal.
//	SVD:  u is m×m, s has length k (descending, non-negative), v is n×n;
//	      A = U·diag(s)·Vᴴ.
//	Schur: q is n×n unitary, t is the (quasi-)triangular factor with
//	      A = Q·T·Qᴴ.
//	Eigenvectors are stored as columns; right vectors come back with unit
//	Euclidean norm.
type Engine interface {
	// Real lane.
	DLU(a []float64, m, n int) (perm []int, l, u []float64, err error)
	DQR(a []float64, m, n int) (q, r []float64, err error)
	DSVD(a []float64, m, n int) (u []float64, s []float64, v []float64, err error)
	DSchur(a []float64, n int) (q, t []float64, err error)
	DCholesky(a []float64, n int) (l []float64, err error)
	DEig(a []float64, n int, left, right bool) (vals, vl, vr []complex128, err error)
	DEigSym(a []float64, n int, vectors bool) (vals []float64, vecs []float64, err error)
	DEigGen(a, b []float64, n int, left, right bool) (alpha []complex128, beta []float64, vl, vr []complex128, err error)
	DSolve(a []float64, n int, b []float64, nrhs int) (x []float64, err error)
	DExpm(a []float64, n int) ([]float64, error)

	// Complex lane.
	ZLU(a []complex128, m, n int) (perm []int, l, u []complex128, err error)
	ZQR(a []complex128, m, n int) (q, r []complex128, err error)
	ZSVD(a []complex128, m, n int) (u []complex128, s []float64, v []complex128, err error)
	ZSchur(a []complex128, n int) (q, t []complex128, err error)
	ZCholesky(a []complex128, n int) (l []complex128, err error)
	ZEig(a []complex128, n int, left, right bool) (vals, vl, vr []complex128, err error)
	ZEigHerm(a []complex128, n int, vectors bool) (vals []float64, vecs []complex128, err error)
	ZEigGen(a, b []complex128, n int, left, right bool) (alpha, beta, vl, vr []complex128, err error)
	ZSolve(a []complex128, n int, b []complex128, nrhs int) (x []complex128, err error)
	ZExpm(a []complex128, n int) ([]complex128, error)
}

// gonumEngine is the packaged Engine: gonum for the real lane, native
// kernels for the complex lane.
type gonumEngine struct{}

var _ Engine = gonumEngine{}

// Default returns the packaged engine. It is stateless and safe for
// concurrent use.
func Default() Engine { return gonumEngine{} }

// checkShape validates a buffer length against its stated dimensions.
func checkShape[T any](buf []T, rows, cols int) error {
	if rows < 0 || cols < 0 || len(buf) != rows*cols {
		return ErrShape
	}
	return nil
}
