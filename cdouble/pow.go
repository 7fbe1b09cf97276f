// Package cdouble: powers and roots.

package cdouble

import (
	"math"
	"math/cmplx"
)

// Pow returns z**w.
//
// When both z and w are real and w is an exact integer the result is kept
// real via math.Pow, so e.g. New(-8, 0).Pow(FromFloat(3)) is exactly -512
// with a zero imaginary lane. The general case uses exp(w·log z) with the
// principal branch of log.
func (z Complex) Pow(w Complex) Complex {
	if z.im == 0 && w.im == 0 && w.re == math.Trunc(w.re) {
		return Complex{re: math.Pow(z.re, w.re)}
	}
	return FromComplex128(cmplx.Pow(z.Complex128(), w.Complex128()))
}

// Sqrt returns the principal square root of z.
func (z Complex) Sqrt() Complex {
	return FromComplex128(cmplx.Sqrt(z.Complex128()))
}

// NthRoot returns the principal n-th root of z. n must be positive.
func (z Complex) NthRoot(n int) (Complex, error) {
	if n <= 0 {
		return Zero, ErrBadParameter
	}
	if n == 1 {
		return z, nil
	}
	if z.IsZero() {
		return Zero, nil
	}
	r := math.Pow(z.Abs(), 1/float64(n))
	return FromPolar(r, z.Arg()/float64(n)), nil
}

// AllSqrt returns both square roots of z, ordered by increasing angle.
// The roots of zero form the singleton {0}, not a duplicated pair.
func (z Complex) AllSqrt() []Complex {
	roots, _ := z.AllNthRoots(2)
	return roots
}

// AllNthRoots returns all n distinct n-th roots of z, starting from the
// principal root and walking around the circle by successive multiplication
// with the primitive n-th root of unity, i.e. ordered by increasing angle.
// The roots of zero form the singleton {0}. n must be positive.
func (z Complex) AllNthRoots(n int) ([]Complex, error) {
	if n <= 0 {
		return nil, ErrBadParameter
	}
	if z.IsZero() {
		return []Complex{Zero}, nil
	}
	principal, err := z.NthRoot(n)
	if err != nil {
		return nil, err
	}
	unity := FromPolar(1, 2*math.Pi/float64(n))
	roots := make([]Complex, n)
	roots[0] = principal
	var k int
	for k = 1; k < n; k++ {
		roots[k] = roots[k-1].Mul(unity)
	}
	return roots, nil
}
