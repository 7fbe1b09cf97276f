// Package cdouble: arithmetic-geometric mean.

package cdouble

import "math/cmplx"

// Branch selects the square-root branch rule used by each AGM step.
// It is a closed enum: anything outside the defined constants is rejected
// with ErrBadParameter before iteration starts.
type Branch uint8

const (
	// BranchOptimal picks, at every step, the geometric-mean sign giving
	// the "right" sequence: |a₁−b₁| ≤ |a₁+b₁|, ties broken toward
	// Im(b₁/a₁) > 0. This is the convergence-optimal choice and the one
	// with the clean theory for complex arguments.
	BranchOptimal Branch = iota

	// BranchPrincipal always takes the principal square root. Simpler and
	// matching the real-positive case, but it can converge to a different
	// (still valid) AGM value for arguments off the positive real axis.
	BranchPrincipal
)

// String returns the branch rule name.
func (b Branch) String() string {
	switch b {
	case BranchOptimal:
		return "Optimal"
	case BranchPrincipal:
		return "Principal"
	}
	return "Branch(?)"
}

// agmMaxIter bounds the quadratically convergent iteration; 64 doubles the
// correct digits far past float64 precision for any finite input.
const agmMaxIter = 64

// AGM returns the arithmetic-geometric mean of z and w under the given
// branch rule.
//
// The iteration is a, b ← (a+b)/2, ±√(ab), quadratically convergent. The
// mean of any pair containing 0, or of a pair with a = −b (where the
// arithmetic step annihilates), is exactly 0.
func (z Complex) AGM(w Complex, branch Branch) (Complex, error) {
	if branch != BranchOptimal && branch != BranchPrincipal {
		return Zero, ErrBadParameter
	}
	a, b := z.Complex128(), w.Complex128()
	if a == 0 || b == 0 || a+b == 0 {
		return Zero, nil
	}
	var i int
	for i = 0; i < agmMaxIter; i++ {
		if cmplx.Abs(a-b) <= 1e-16*cmplx.Abs(a) {
			break
		}
		a1 := (a + b) / 2
		b1 := cmplx.Sqrt(a * b)
		if branch == BranchOptimal && !rightChoice(a1, b1) {
			b1 = -b1
		}
		a, b = a1, b1
	}
	return FromComplex128(a), nil
}

// rightChoice reports whether b1 is the "right" geometric mean relative
// to a1: |a1−b1| ≤ |a1+b1|, ties resolved by Im(b1/a1) > 0.
func rightChoice(a1, b1 complex128) bool {
	d, s := cmplx.Abs(a1-b1), cmplx.Abs(a1+b1)
	if d != s {
		return d < s
	}
	return imag(b1/a1) > 0
}
