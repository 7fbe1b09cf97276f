// Package cdouble: special functions.
//
// The gonum stack ships real-valued special functions
// only, so the complex kernels below are written in-house: Lanczos for
// Gamma, a series/continued-fraction pair for the incomplete gamma,
// Euler–Maclaurin with reflection for Zeta, the pentagonal-number q-series
// for Eta and a Bernoulli/log series for Dilog. Accuracy target is ~1e-13
// relative over the non-pathological range, which matches the
// double-precision ambition of the rest of the library.

package cdouble

import (
	"math"
	"math/cmplx"
)

// lanczosG and lanczosCoeff are the g=7, n=9 Lanczos approximation
// parameters (Godfrey's coefficients).
const lanczosG = 7

var lanczosCoeff = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// isNonPositiveInteger reports whether z is a real number in {0, -1, -2, ...}.
func (z Complex) isNonPositiveInteger() bool {
	return z.im == 0 && z.re <= 0 && z.re == math.Trunc(z.re)
}

// Gamma returns Γ(z) as a tagged Value.
//
// At the poles — the non-positive real integers — the result is the
// unsigned Infinity variant, matching the convention "the value is
// infinity" rather than "the computation failed". Everywhere else the
// result is Finite: Lanczos for Re(z) ≥ 1/2, the reflection formula
// Γ(z)Γ(1−z) = π/sin(πz) below it.
func (z Complex) Gamma() Value {
	if z.isNonPositiveInteger() {
		return Infinity()
	}
	return Finite(gammaFinite(z.Complex128()))
}

// gammaFinite evaluates Γ away from the poles.
func gammaFinite(z complex128) Complex {
	if real(z) < 0.5 {
		// Reflection: Γ(z) = π / (sin(πz) · Γ(1−z)).
		s := cmplx.Sin(complex(math.Pi, 0) * z)
		return FromComplex128(complex(math.Pi, 0) / (s * gammaFinite(1-z).Complex128()))
	}
	w := z - 1
	x := complex(lanczosCoeff[0], 0)
	var i int
	for i = 1; i < len(lanczosCoeff); i++ {
		x += complex(lanczosCoeff[i], 0) / (w + complex(float64(i), 0))
	}
	t := w + complex(lanczosG+0.5, 0)
	r := complex(math.Sqrt(2*math.Pi), 0) * cmplx.Pow(t, w+0.5) * cmplx.Exp(-t) * x
	return FromComplex128(r)
}

// GammaInc returns the upper incomplete gamma function Γ(z, x), treating
// the receiver as the first argument.
//
// Γ(z, 0) reduces to Γ(z) and inherits its poles (Infinity variant).
// For x ≠ 0 the function is finite: a regularized power series is used
// inside |x| < Re(z)+1, the Lentz continued fraction outside. Accuracy
// degrades on the far negative real x axis; that region is outside the
// supported domain of this double-precision kernel.
func (z Complex) GammaInc(x Complex) Value {
	if x.IsZero() {
		return z.Gamma()
	}
	zc, xc := z.Complex128(), x.Complex128()
	if real(xc) > 0 && cmplx.Abs(xc) > real(zc)+1 {
		return Finite(FromComplex128(gammaIncCF(zc, xc)))
	}
	if z.isNonPositiveInteger() {
		// The series route needs Γ(z); shift the parameter above the poles
		// with Γ(z,x) = (Γ(z+1,x) − x^z e^{−x}) / z, then fall back to the
		// continued fraction at the shifted parameter when possible.
		return Finite(gammaIncShifted(zc, xc))
	}
	// Lower series: γ(z,x) = x^z e^{−x} Σ x^n / (z(z+1)...(z+n)).
	lower := gammaIncLowerSeries(zc, xc)
	return Finite(FromComplex128(gammaFinite(zc).Complex128() - lower))
}

// gammaIncLowerSeries evaluates γ(z, x) by its regularized power series.
func gammaIncLowerSeries(z, x complex128) complex128 {
	term := complex(1, 0) / z
	sum := term
	den := z
	var n int
	for n = 1; n < 1000; n++ {
		den += 1
		term *= x / den
		sum += term
		if cmplx.Abs(term) < 1e-17*cmplx.Abs(sum) {
			break
		}
	}
	return cmplx.Pow(x, z) * cmplx.Exp(-x) * sum
}

// gammaIncCF evaluates Γ(z, x) with the modified Lentz continued fraction.
func gammaIncCF(z, x complex128) complex128 {
	const tiny = 1e-300
	b := x + 1 - z
	c := complex(1/tiny, 0)
	d := 1 / b
	h := d
	var i int
	for i = 1; i < 1000; i++ {
		an := -complex(float64(i), 0) * (complex(float64(i), 0) - z)
		b += 2
		d = an*d + b
		if cmplx.Abs(d) < tiny {
			d = complex(tiny, 0)
		}
		c = b + an/c
		if cmplx.Abs(c) < tiny {
			c = complex(tiny, 0)
		}
		d = 1 / d
		del := d * c
		h *= del
		if cmplx.Abs(del-1) < 1e-16 {
			break
		}
	}
	return cmplx.Pow(x, z) * cmplx.Exp(-x) * h
}

// gammaIncShifted lifts a non-positive-integer parameter above zero via
// Γ(z,x) = (Γ(z+1,x) − x^z e^{−x}) / z and evaluates the shifted value.
func gammaIncShifted(z, x complex128) Complex {
	if real(z) > 0 {
		lower := gammaIncLowerSeries(z, x)
		return FromComplex128(gammaFinite(z).Complex128() - lower)
	}
	if z == 0 {
		// Γ(0, x) = (Γ(1, x) − e^{−x}) / z is indeterminate; integrate by
		// parts once more: Γ(0,x) = E₁(x), evaluated by the same continued
		// fraction, which converges for x off the negative real axis.
		return FromComplex128(gammaIncCF(0, x))
	}
	up := gammaIncShifted(z+1, x).Complex128()
	return FromComplex128((up - cmplx.Pow(x, z)*cmplx.Exp(-x)) / z)
}

// bernoulli2k holds B₂, B₄, ..., B₂₀ for the Euler–Maclaurin tail.
var bernoulli2k = [10]float64{
	1.0 / 6, -1.0 / 30, 1.0 / 42, -1.0 / 30, 5.0 / 66,
	-691.0 / 2730, 7.0 / 6, -3617.0 / 510, 43867.0 / 798, -174611.0 / 330,
}

// Zeta returns the Riemann zeta function ζ(z) as a tagged Value.
//
// The simple pole at z = 1 yields the Infinity variant. Re(z) ≥ 1/2 is
// evaluated by Euler–Maclaurin summation; the functional equation
// ζ(z) = 2^z π^{z−1} sin(πz/2) Γ(1−z) ζ(1−z) handles the rest.
func (z Complex) Zeta() Value {
	if z.re == 1 && z.im == 0 {
		return Infinity()
	}
	return Finite(FromComplex128(zetaEM(z.Complex128())))
}

func zetaEM(s complex128) complex128 {
	if s == 0 {
		// The functional equation lands 1−s on the pole; the value itself
		// is plain: ζ(0) = −1/2.
		return complex(-0.5, 0)
	}
	if real(s) < 0.5 {
		// Functional equation; Γ(1−s) is finite here since Re(1−s) > 1/2.
		pref := cmplx.Pow(2, s) * cmplx.Pow(complex(math.Pi, 0), s-1) *
			cmplx.Sin(complex(math.Pi/2, 0)*s) * gammaFinite(1-s).Complex128()
		if pref == 0 {
			return 0
		}
		return pref * zetaEM(1-s)
	}
	const n = 20
	var sum complex128
	var k int
	for k = 1; k < n; k++ {
		sum += cmplx.Pow(complex(float64(k), 0), -s)
	}
	nc := complex(float64(n), 0)
	sum += cmplx.Pow(nc, 1-s)/(s-1) + 0.5*cmplx.Pow(nc, -s)

	// Tail: Σ_k B₂ₖ/(2k)! · (s)(s+1)...(s+2k−2) · n^{−s−2k+1}.
	poch := s                     // rising product s(s+1)...(s+2k-2)
	fact := 2.0                   // (2k)!
	npow := cmplx.Pow(nc, -s-1)   // n^{−s−2k+1}
	var j float64
	for k = 0; k < len(bernoulli2k); k++ {
		sum += complex(bernoulli2k[k]/fact, 0) * poch * npow
		// Advance to the next even order.
		j = float64(2*k + 1)
		poch *= (s + complex(j, 0)) * (s + complex(j+1, 0))
		fact *= (j + 2) * (j + 3)
		npow /= nc * nc
	}
	return sum
}

// etaUnderflowIm is the imaginary part beyond which |q^{1/24}| underflows
// to zero: π·Im(τ)/12 > 710 exceeds the largest finite float64 exponent.
const etaUnderflowIm = 710 * 12 / math.Pi

// Eta returns the Dedekind eta function
//
//	η(τ) = e^{iπτ/12} · Π_{n≥1} (1 − q^n),  q = e^{2πiτ},
//
// evaluated by the pentagonal-number series. τ must lie strictly in the
// upper half plane; anywhere else the series diverges and ErrDomain is
// returned. For very large Im(τ) the leading factor underflows and the
// result short-circuits to exact zero rather than overflowing the series.
func (z Complex) Eta() (Complex, error) {
	if !(z.im > 0) {
		return Zero, ErrDomain
	}
	if z.im > etaUnderflowIm {
		return Zero, nil
	}
	tau := z.Complex128()
	q := cmplx.Exp(complex(0, 2*math.Pi) * tau)
	absQ := cmplx.Abs(q)

	// Σ_{k∈ℤ} (−1)^k q^{k(3k−1)/2}, paired as (k, −k).
	sum := complex(1, 0)
	sign := -1.0
	var k, e1, e2 float64
	for k = 1; k < 1e6; k++ {
		e1 = k * (3*k - 1) / 2
		e2 = k * (3*k + 1) / 2
		term := cmplx.Pow(q, complex(e1, 0)) + cmplx.Pow(q, complex(e2, 0))
		sum += complex(sign, 0) * term
		sign = -sign
		if math.Pow(absQ, e1) < 1e-20 {
			break
		}
	}
	pref := cmplx.Exp(complex(0, math.Pi/12) * tau)
	return FromComplex128(pref * sum), nil
}

// bernoulliAll holds B₀..B₂₉ with the B₁ = −1/2 convention, feeding the
// Dilog log-series. Odd entries above B₁ are zero.
var bernoulliAll = [30]float64{
	1, -0.5, 1.0 / 6, 0, -1.0 / 30, 0, 1.0 / 42, 0, -1.0 / 30, 0,
	5.0 / 66, 0, -691.0 / 2730, 0, 7.0 / 6, 0, -3617.0 / 510, 0, 43867.0 / 798, 0,
	-174611.0 / 330, 0, 854513.0 / 138, 0, -236364091.0 / 2730, 0, 8553103.0 / 6, 0,
	-23749461029.0 / 870, 0,
}

// Dilog returns the dilogarithm Li₂(z) with the principal branch cut on
// [1, ∞).
//
// Strategy: |z| > 1 is folded inside the unit disk with the inversion
// formula; near z = 1 the Euler reflection is applied; the remaining
// region uses the Bernoulli series in u = −log(1−z), which converges for
// |u| < 2π and in particular everywhere on the closed unit disk away
// from 1.
func (z Complex) Dilog() Complex {
	return FromComplex128(dilog(z.Complex128()))
}

const pi2over6 = math.Pi * math.Pi / 6

func dilog(z complex128) complex128 {
	switch {
	case z == 0:
		return 0
	case z == 1:
		return complex(pi2over6, 0)
	case cmplx.Abs(z) > 1:
		// Li₂(z) = −Li₂(1/z) − π²/6 − ½ log²(−z). Negating a real z flips
		// +0i to −0i and would drag Log onto the wrong side of the cut on
		// [1, ∞); normalize the signed zero first.
		nz := -z
		if imag(nz) == 0 {
			nz = complex(real(nz), 0)
		}
		l := cmplx.Log(nz)
		return -dilog(1/z) - complex(pi2over6, 0) - 0.5*l*l
	case cmplx.Abs(1-z) < 0.5:
		// Li₂(z) = π²/6 − log(z)·log(1−z) − Li₂(1−z).
		return complex(pi2over6, 0) - cmplx.Log(z)*cmplx.Log(1-z) - dilog(1-z)
	}
	// Bernoulli series: Li₂(z) = Σ_{n≥0} Bₙ u^{n+1}/(n+1)!, u = −log(1−z).
	u := -cmplx.Log(1 - z)
	term := u // n = 0 term: B₀·u/1!
	sum := term
	var n int
	for n = 1; n < len(bernoulliAll); n++ {
		term *= u / complex(float64(n+1), 0)
		if bernoulliAll[n] == 0 {
			continue
		}
		contrib := complex(bernoulliAll[n], 0) * term
		sum += contrib
		if cmplx.Abs(contrib) < 1e-17*cmplx.Abs(sum) {
			break
		}
	}
	return sum
}
