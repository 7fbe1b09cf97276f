package cdouble_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/cdouble"
)

func finite(t *testing.T, v cdouble.Value) cdouble.Complex {
	t.Helper()
	z, ok := v.Complex()
	require.True(t, ok, "expected a finite value, got %v", v)
	return z
}

func TestGammaFactorials(t *testing.T) {
	// Γ(n) = (n−1)! on the positive integers.
	want := 1.0
	for n := 1; n <= 8; n++ {
		g := finite(t, cdouble.FromFloat(float64(n)).Gamma())
		assert.InDelta(t, want, g.Real(), 1e-9*want, "Gamma(%d)", n)
		assert.InDelta(t, 0, g.Imag(), 1e-9)
		want *= float64(n)
	}
}

func TestGammaHalf(t *testing.T) {
	g := finite(t, cdouble.FromFloat(0.5).Gamma())
	assert.InDelta(t, math.Sqrt(math.Pi), g.Real(), 1e-12)
}

func TestGammaPolesAreInfinity(t *testing.T) {
	for _, x := range []float64{0, -1, -2, -7} {
		v := cdouble.FromFloat(x).Gamma()
		assert.True(t, v.IsInfinity(), "Gamma(%v) = %v", x, v)
	}
	// Near-pole but not at it: finite.
	assert.True(t, cdouble.New(-1, 1e-8).Gamma().IsFinite())
}

func TestGammaReflection(t *testing.T) {
	// Γ(z)Γ(1−z) = π / sin(πz) at z = 0.3 + 0.4i.
	z := cdouble.New(0.3, 0.4)
	lhs := finite(t, z.Gamma()).Mul(finite(t, cdouble.One.Sub(z).Gamma()))
	rhs := cdouble.FromFloat(math.Pi).Div(z.Scale(math.Pi).Sin())
	assert.True(t, lhs.EqualWithin(rhs, 1e-11), "lhs %v rhs %v", lhs, rhs)
}

func TestGammaInc(t *testing.T) {
	// Γ(1, x) = e^{−x}.
	g := finite(t, cdouble.One.GammaInc(cdouble.One))
	assert.InDelta(t, math.Exp(-1), g.Real(), 1e-12)
	assert.InDelta(t, 0, g.Imag(), 1e-12)

	// Γ(z, 0) = Γ(z), poles included.
	g = finite(t, cdouble.FromFloat(3).GammaInc(cdouble.Zero))
	assert.InDelta(t, 2, g.Real(), 1e-10)
	assert.True(t, cdouble.Zero.GammaInc(cdouble.Zero).IsInfinity())

	// Γ(0, 1) = E₁(1).
	g = finite(t, cdouble.Zero.GammaInc(cdouble.One))
	assert.InDelta(t, 0.21938393439552026, g.Real(), 1e-12)

	// Γ(z, x) + γ(z, x) = Γ(z): check via Γ(2, 1) = 2/e.
	g = finite(t, cdouble.FromFloat(2).GammaInc(cdouble.One))
	assert.InDelta(t, 2/math.E, g.Real(), 1e-12)

	// Large x takes the continued-fraction route; Γ(1, 10) = e^{−10}.
	g = finite(t, cdouble.One.GammaInc(cdouble.FromFloat(10)))
	assert.InDelta(t, math.Exp(-10), g.Real(), 1e-16)
	assert.InDelta(t, 0, g.Imag(), 1e-16)
}

func TestZetaValues(t *testing.T) {
	z := finite(t, cdouble.FromFloat(2).Zeta())
	assert.InDelta(t, math.Pi*math.Pi/6, z.Real(), 1e-12)

	z = finite(t, cdouble.FromFloat(4).Zeta())
	assert.InDelta(t, math.Pow(math.Pi, 4)/90, z.Real(), 1e-12)

	// Functional-equation side.
	z = finite(t, cdouble.FromFloat(0).Zeta())
	assert.InDelta(t, -0.5, z.Real(), 1e-12)
	z = finite(t, cdouble.FromFloat(-1).Zeta())
	assert.InDelta(t, -1.0/12, z.Real(), 1e-12)

	assert.True(t, cdouble.One.Zeta().IsInfinity(), "pole at 1")
}

func TestZetaComplex(t *testing.T) {
	// First nontrivial zero is near 1/2 + 14.1347i; ζ there is tiny.
	z := finite(t, cdouble.New(0.5, 14.134725141734693).Zeta())
	assert.Less(t, z.Abs(), 1e-8)
}

func TestEtaDomain(t *testing.T) {
	for _, tau := range []cdouble.Complex{
		cdouble.FromFloat(1),
		cdouble.New(0.5, 0),
		cdouble.New(0, -1),
	} {
		_, err := tau.Eta()
		assert.ErrorIs(t, err, cdouble.ErrDomain, "Eta(%v)", tau)
	}
}

func TestEtaAtI(t *testing.T) {
	// η(i) = Γ(1/4) / (2·π^{3/4}).
	got, err := cdouble.I.Eta()
	require.NoError(t, err)
	assert.InDelta(t, 0.7682254223260566, got.Real(), 1e-12)
	assert.InDelta(t, 0, got.Imag(), 1e-12)
}

func TestEtaUnderflowsToExactZero(t *testing.T) {
	got, err := cdouble.New(0, 5000).Eta()
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "η(5000i) = %v", got)
}

func TestDilogValues(t *testing.T) {
	pi2 := math.Pi * math.Pi
	assert.InDelta(t, pi2/6, cdouble.One.Dilog().Real(), 1e-12)
	assert.InDelta(t, -pi2/12, cdouble.One.Neg().Dilog().Real(), 1e-12)

	// Li₂(1/2) = π²/12 − ln²2/2.
	l := cdouble.FromFloat(0.5).Dilog()
	assert.InDelta(t, pi2/12-math.Ln2*math.Ln2/2, l.Real(), 1e-12)
	assert.InDelta(t, 0, l.Imag(), 1e-12)

	// Inversion region: Li₂(2) = π²/4 − iπ·ln 2.
	l = cdouble.FromFloat(2).Dilog()
	assert.InDelta(t, pi2/4, l.Real(), 1e-11)
	assert.InDelta(t, -math.Pi*math.Ln2, l.Imag(), 1e-11)
}

func TestAGM(t *testing.T) {
	got, err := cdouble.One.AGM(cdouble.FromFloat(math.Sqrt2), cdouble.BranchOptimal)
	require.NoError(t, err)
	assert.InDelta(t, 1.1981402347355923, got.Real(), 1e-12)
	assert.InDelta(t, 0, got.Imag(), 1e-12)

	// AGM(a, a) = a, and AGM(a, −a) = 0.
	a := cdouble.New(2, 1)
	got, err = a.AGM(a, cdouble.BranchOptimal)
	require.NoError(t, err)
	assert.True(t, got.EqualWithin(a, 1e-12))

	got, err = a.AGM(a.Neg(), cdouble.BranchPrincipal)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = a.AGM(a, cdouble.Branch(99))
	assert.ErrorIs(t, err, cdouble.ErrBadParameter)
}

func TestValueTaggedUnion(t *testing.T) {
	f := cdouble.Finite(cdouble.New(1, 2))
	assert.True(t, f.IsFinite())
	z, ok := f.Complex()
	assert.True(t, ok)
	assert.True(t, z.Equal(cdouble.New(1, 2)))

	inf := cdouble.Infinity()
	assert.True(t, inf.IsInfinity())
	_, ok = inf.Complex()
	assert.False(t, ok)

	und := cdouble.Undefined()
	assert.True(t, und.IsUndefined())
	assert.NotEqual(t, inf.Kind(), und.Kind())
}
