// Package lvldense is your toolbox for dense double-precision linear
// algebra — complex scalars, immutable matrices, cached decompositions
// and numerically careful structural tests.
//
// 🚀 What is lvldense?
//
//	A focused numeric library that brings together:
//		• cdouble: a complex double scalar with full arithmetic, roots,
//		  transcendental and special functions (gamma, zeta, eta, dilog, AGM)
//		• dense: immutable real/complex matrices built through a mutable
//		  Builder, with LU, QR, SVD, Schur and Cholesky factorizations
//		• Eigen-solvers: ordinary and generalized problems, symmetric and
//		  Hermitian fast paths, homogeneous (α, β) eigenvalue pairs
//		• Structural predicates: unitary, Hermitian, skew-Hermitian, normal
//		  and positive-definite — tolerance-gated, two strategies each
//		• spectral: eigenvalue-spectrum and singular-value plots
//
// ✨ Why choose lvldense?
//
//   - Factor once – every decomposition is computed at most once per matrix
//     and cached under a mutex, so repeated requests are free and race-free
//   - Honest errors – a small sentinel taxonomy (ErrNotSquare, ErrSingular,
//     ErrNotHermitian, ...) matched with errors.Is; no raw backend panics
//   - Type-enforced immutability – a mutable Builder produces a frozen
//     Matrix; there is no mutation path to invalidate cached factors
//   - Swappable backend – all LAPACK-shaped kernels sit behind
//     backend.Engine, resolved once at construction, gonum-powered by default
//
// Under the hood, everything is organized under four subpackages:
//
//	cdouble/  — complex double scalar, special functions, tagged Value
//	backend/  — the numerical engine interface + gonum/native implementation
//	dense/    — Builder, Matrix, decompositions, eigen-solvers, predicates
//	spectral/ — gonum/plot renderings of spectra and singular values
//
// Quick taste:
//
//	b := dense.NewBuilder(dense.RDF, 2, 2)
//	_ = b.SetReal(0, 1, -1)
//	_ = b.SetReal(1, 0, 1)
//	m, _ := b.Build()
//	vals, _ := m.Eigenvalues() // {-i, i}
//
// Dive into the per-package docs for full examples and the error taxonomy.
//
//	go get github.com/katalvlaran/lvldense
package lvldense
