// Package backend defines the numerical engine behind the dense matrix
// layer and ships its default implementation.
//
// Description:
//
//	Engine is a LAPACK-shaped interface: flat row-major buffers, explicit
//	dimensions, factor outputs as freshly allocated slices. The dense
//	layer receives an Engine once, at matrix construction, and never
//	resolves numerical routines lazily or globally — swapping the engine
//	(e.g. for an instrumented stub in tests) is a constructor argument,
//	not a patch.
//
// Two lanes:
//
//   - D-prefixed methods operate on float64 and delegate to gonum
//     (mat.SVD, mat.Eigen, mat.EigenSym, lapack/gonum Dgetrf, Dgeqrf,
//     Dorgqr, Dpotrf, Dgesv, Dgees, Dggev).
//   - Z-prefixed methods operate on complex128. gonum carries no complex
//     LAPACK, so these kernels are implemented natively in this package:
//     partially pivoted LU, Householder QR, Cholesky, Hessenberg reduction
//     with shifted QR iteration for Schur/eigen problems, cyclic Jacobi
//     for the Hermitian eigenproblem, one-sided Jacobi SVD and a
//     single-shift QZ sweep for the generalized eigenproblem.
//
// Failure signaling: numerical breakdown surfaces as one of the package
// sentinels (ErrSingular, ErrNotPositiveDefinite, ErrConvergence), never
// as a panic and never as a half-written result. Inputs are not mutated;
// every method works on private copies.
package backend
