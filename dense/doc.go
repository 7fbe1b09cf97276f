// Package dense provides immutable dense matrices over the real (RDF) and
// complex (CDF) double-precision rings, with cached factorizations and
// spectral queries on top of a pluggable numerical backend.
//
// # What's inside
//
//   - Builder / Matrix — a mutable accumulator that freezes into an
//     immutable Matrix. All derivation methods (arithmetic, transposes,
//     ring changes, factors) return new matrices; nothing mutates in place.
//   - Factorizations — LU (PA = LU as P, L, U), QR, SVD, Schur (real
//     quasi-triangular or complex triangular), Cholesky. Every factor set
//     is computed at most once per matrix and cached; repeated calls hand
//     back the same immutable factors.
//   - Eigen — ordinary, symmetric/Hermitian and generalized (pencil)
//     eigenproblems, with optional tolerance grouping into
//     (value, multiplicity) pairs and a homogeneous (alpha, beta) form
//     that represents infinite eigenvalues of singular pencils exactly.
//   - Predicates — IsUnitary, IsHermitian, IsSkewHermitian, IsNormal
//     under a naive entrywise strategy or an orthonormal (Schur-based)
//     strategy; IsPositiveDefinite defined by Cholesky success.
//   - Norms, condition numbers and the matrix exponential.
//
// # Quick start
//
//	b := dense.NewBuilder(dense.RDF, 2, 2)
//	_ = b.SetReal(0, 1, -1)
//	_ = b.SetReal(1, 0, 1)
//	m, _ := b.Build()
//	vals, _ := m.Eigenvalues() // {−i, +i}
//
// Errors are package-level sentinels (ErrNotSquare, ErrSingular, ...)
// matched with errors.Is. Matrices are safe for concurrent readers; the
// factor cache is internally synchronized.
package dense
