// Package cdouble implements a double-precision complex scalar.
//
// Description:
//
//	Complex holds a real and an imaginary IEEE-754 float64 lane and behaves
//	as an immutable value: every operation returns a new Complex. Division
//	by zero follows IEEE float semantics and yields NaN lanes instead of an
//	error, which keeps the type round-trip compatible with the dense matrix
//	layer's decomposition failure paths.
//
// Beyond field arithmetic the package provides:
//
//   - Abs, Abs2, Arg (principal, in (-π, π]) and a numerically stable LogAbs.
//   - Pow with a real-base/integer-exponent short circuit that keeps real
//     results real, Sqrt/NthRoot plus AllSqrt/AllNthRoots returning every
//     root ordered by increasing angle.
//   - Elementary transcendentals (Exp, Log, trigonometric, hyperbolic).
//   - Special functions: Gamma, GammaInc, Zeta, Eta, Dilog and AGM.
//
// Poles of Gamma and Zeta are values, not failures: those functions return
// a tagged Value that is either Finite, Infinity (unsigned) or Undefined,
// so callers must handle the non-finite cases explicitly.
//
// Ordering:
//
//	Cmp is lexicographic (real lane first, then imaginary). This is NOT a
//	field-compatible ordering — ℂ has none — and exists only for sorting
//	and display.
//
// Errors:
//   - ErrDomain       — input outside a function's domain (e.g. Eta below
//     the upper half plane).
//   - ErrBadParameter — invalid argument such as NthRoot(z, 0).
package cdouble
