// Package dense: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", err) for context); callers match with errors.Is.
// No public API panics on user-triggered conditions.

package dense

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or columns) or a data slice does not match it.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible operand dimensions, e.g.
	// Add over different shapes or Mul with inner dimensions that differ.
	ErrShapeMismatch = errors.New("dense: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = errors.New("dense: matrix is not square")

	// ErrSingular signals an exactly (or numerically) singular matrix
	// where an inverse or a unique solution was required.
	ErrSingular = errors.New("dense: matrix is singular")

	// ErrNotHermitian signals that a Hermitian matrix was required.
	// Cholesky reports this before probing definiteness, so the two
	// failure modes stay distinguishable.
	ErrNotHermitian = errors.New("dense: matrix is not Hermitian")

	// ErrNotPositiveDefinite signals a Hermitian matrix that fails the
	// positive-definiteness test (a non-positive Cholesky pivot).
	ErrNotPositiveDefinite = errors.New("dense: matrix is not positive definite")

	// ErrRingConversion signals a narrowing ring change that would lose
	// information: CDF→RDF with nonzero imaginary lanes, or requesting a
	// real Schur form of a complex matrix.
	ErrRingConversion = errors.New("dense: ring conversion would lose information")

	// ErrNumerical signals that an iterative kernel failed to converge.
	ErrNumerical = errors.New("dense: numerical failure")
)
