// Package cdouble: elementary transcendental functions.
// Thin, allocation-free wrappers over math/cmplx; all branch cuts and
// special-value behavior (NaN/Inf propagation) are inherited from there.

package cdouble

import "math/cmplx"

// Exp returns e**z.
func (z Complex) Exp() Complex { return FromComplex128(cmplx.Exp(z.Complex128())) }

// Log returns the principal natural logarithm of z, with imaginary part
// in (-π, π].
func (z Complex) Log() Complex { return FromComplex128(cmplx.Log(z.Complex128())) }

// Sin returns sin(z).
func (z Complex) Sin() Complex { return FromComplex128(cmplx.Sin(z.Complex128())) }

// Cos returns cos(z).
func (z Complex) Cos() Complex { return FromComplex128(cmplx.Cos(z.Complex128())) }

// Tan returns tan(z).
func (z Complex) Tan() Complex { return FromComplex128(cmplx.Tan(z.Complex128())) }

// Sinh returns sinh(z).
func (z Complex) Sinh() Complex { return FromComplex128(cmplx.Sinh(z.Complex128())) }

// Cosh returns cosh(z).
func (z Complex) Cosh() Complex { return FromComplex128(cmplx.Cosh(z.Complex128())) }

// Tanh returns tanh(z).
func (z Complex) Tanh() Complex { return FromComplex128(cmplx.Tanh(z.Complex128())) }

// Asin returns the principal inverse sine of z.
func (z Complex) Asin() Complex { return FromComplex128(cmplx.Asin(z.Complex128())) }

// Acos returns the principal inverse cosine of z.
func (z Complex) Acos() Complex { return FromComplex128(cmplx.Acos(z.Complex128())) }

// Atan returns the principal inverse tangent of z.
func (z Complex) Atan() Complex { return FromComplex128(cmplx.Atan(z.Complex128())) }
