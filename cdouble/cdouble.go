// Package cdouble: the Complex value type, constructors and field arithmetic.

package cdouble

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Complex is an immutable double-precision complex number a+bi.
// The zero value is the complex zero.
type Complex struct {
	re, im float64
}

// Commonly used constants.
var (
	// Zero is 0+0i.
	Zero = Complex{}
	// One is 1+0i.
	One = Complex{re: 1}
	// I is the imaginary unit 0+1i.
	I = Complex{im: 1}
)

// New returns the complex number re+im·i.
func New(re, im float64) Complex { return Complex{re: re, im: im} }

// FromFloat returns the real number x as a Complex.
func FromFloat(x float64) Complex { return Complex{re: x} }

// FromComplex128 converts a native complex128.
func FromComplex128(z complex128) Complex { return Complex{re: real(z), im: imag(z)} }

// FromPolar returns the complex number with modulus r and argument theta.
func FromPolar(r, theta float64) Complex {
	return Complex{re: r * math.Cos(theta), im: r * math.Sin(theta)}
}

// Inf returns a complex infinity (both lanes +Inf).
func Inf() Complex { return FromComplex128(cmplx.Inf()) }

// NaN returns a quiet complex NaN.
func NaN() Complex { return FromComplex128(cmplx.NaN()) }

// Real returns the real lane.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary lane.
func (z Complex) Imag() float64 { return z.im }

// Complex128 returns the value as a native complex128.
func (z Complex) Complex128() complex128 { return complex(z.re, z.im) }

// IsZero reports whether both lanes are exactly zero.
func (z Complex) IsZero() bool { return z.re == 0 && z.im == 0 }

// IsReal reports whether the imaginary lane is exactly zero.
func (z Complex) IsReal() bool { return z.im == 0 }

// IsNaN reports whether either lane is NaN and neither lane is an infinity.
func (z Complex) IsNaN() bool { return cmplx.IsNaN(z.Complex128()) }

// IsInf reports whether either lane is an infinity.
func (z Complex) IsInf() bool { return cmplx.IsInf(z.Complex128()) }

// Add returns z+w.
func (z Complex) Add(w Complex) Complex { return Complex{re: z.re + w.re, im: z.im + w.im} }

// Sub returns z-w.
func (z Complex) Sub(w Complex) Complex { return Complex{re: z.re - w.re, im: z.im - w.im} }

// Mul returns z·w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z/w. Division by zero yields NaN lanes (IEEE semantics),
// never an error.
func (z Complex) Div(w Complex) Complex {
	return FromComplex128(z.Complex128() / w.Complex128())
}

// Neg returns -z.
func (z Complex) Neg() Complex { return Complex{re: -z.re, im: -z.im} }

// Inverse returns 1/z. The inverse of zero has NaN lanes.
func (z Complex) Inverse() Complex { return One.Div(z) }

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex { return Complex{re: z.re, im: -z.im} }

// Scale returns z scaled by the real factor x.
func (z Complex) Scale(x float64) Complex { return Complex{re: z.re * x, im: z.im * x} }

// Abs returns the modulus |z|, computed without intermediate overflow.
func (z Complex) Abs() float64 { return math.Hypot(z.re, z.im) }

// Abs2 returns the squared modulus re²+im².
func (z Complex) Abs2() float64 { return z.re*z.re + z.im*z.im }

// Arg returns the principal argument of z in (-π, π].
func (z Complex) Arg() float64 { return math.Atan2(z.im, z.re) }

// LogAbs returns log|z|. More stable and faster than z.Abs() followed by
// math.Log when |z| is near the under/overflow boundary.
func (z Complex) LogAbs() float64 {
	ar, ai := math.Abs(z.re), math.Abs(z.im)
	if ar < ai {
		ar, ai = ai, ar
	}
	if ar == 0 {
		return math.Inf(-1)
	}
	if ai == 0 {
		return math.Log(ar)
	}
	// log(hypot) in the scaled form log(ar) + log1p((ai/ar)²)/2.
	q := ai / ar
	return math.Log(ar) + 0.5*math.Log1p(q*q)
}

// Equal reports exact lane-wise equality.
func (z Complex) Equal(w Complex) bool { return z.re == w.re && z.im == w.im }

// EqualWithin reports lane-wise equality within the absolute tolerance tol.
func (z Complex) EqualWithin(w Complex, tol float64) bool {
	return math.Abs(z.re-w.re) <= tol && math.Abs(z.im-w.im) <= tol
}

// Cmp orders z and w lexicographically: real lanes first, then imaginary.
// This ordering is for sorting and display only; it is not compatible with
// the field structure of ℂ.
func (z Complex) Cmp(w Complex) int {
	switch {
	case z.re < w.re:
		return -1
	case z.re > w.re:
		return 1
	case z.im < w.im:
		return -1
	case z.im > w.im:
		return 1
	}
	return 0
}

// String renders z in the conventional a+bi form.
func (z Complex) String() string {
	if z.im == 0 {
		return fmt.Sprintf("%g", z.re)
	}
	if z.re == 0 {
		return fmt.Sprintf("%gi", z.im)
	}
	if z.im < 0 {
		return fmt.Sprintf("%g-%gi", z.re, -z.im)
	}
	return fmt.Sprintf("%g+%gi", z.re, z.im)
}
