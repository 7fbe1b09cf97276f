package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/cdouble"
	"github.com/katalvlaran/lvldense/dense"
)

func TestEigenvaluesRotation(t *testing.T) {
	// [[0,−1],[1,0]] rotates by π/2; spectrum {−i, +i}.
	m := rdf(t, 2, 2, 0, -1, 1, 0)
	vals, err := m.Eigenvalues()
	require.NoError(t, err)
	require.Len(t, vals, 2)

	v0 := vals[0].Value().MustComplex()
	v1 := vals[1].Value().MustComplex()
	assert.True(t, v0.EqualWithin(cdouble.I.Neg(), tol), "first (sorted) eigenvalue %v", v0)
	assert.True(t, v1.EqualWithin(cdouble.I, tol), "second eigenvalue %v", v1)
	for _, v := range vals {
		assert.Equal(t, 1, v.Multiplicity)
		assert.True(t, v.Beta.Equal(cdouble.One))
	}
}

func TestEigenvaluesHermitianPath(t *testing.T) {
	m := cdf(t, 2, 2, 2, 1-1i, 1+1i, 3)
	vals, err := m.Eigenvalues(dense.WithAlgorithm(dense.AlgHermitian))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	// Spectrum of [[2,1−i],[1+i,3]]: (5 ± √(1+8))/2 = {1, 4}.
	assert.InDelta(t, 1, vals[0].Value().MustComplex().Real(), tol)
	assert.InDelta(t, 4, vals[1].Value().MustComplex().Real(), tol)
	for _, v := range vals {
		assert.InDelta(t, 0, v.Value().MustComplex().Imag(), tol)
	}
}

func TestEigenvaluesSymmetricIgnoresImaginary(t *testing.T) {
	// AlgSymmetric re-reads entries as their real parts: the imaginary
	// garbage below must not influence the spectrum of [[2,1],[1,3]].
	m := cdf(t, 2, 2, 2+9i, 1-7i, 1+3i, 3-2i)
	vals, err := m.Eigenvalues(dense.WithAlgorithm(dense.AlgSymmetric))
	require.NoError(t, err)
	want := []float64{(5 - math.Sqrt(5)) / 2, (5 + math.Sqrt(5)) / 2}
	for i := range want {
		assert.InDelta(t, want[i], vals[i].Value().MustComplex().Real(), tol)
	}
}

func TestEigenvalueGrouping(t *testing.T) {
	// diag(1, 1+ε, 5): a loose tolerance merges the near-degenerate pair.
	m := rdf(t, 3, 3,
		1, 0, 0,
		0, 1+1e-9, 0,
		0, 0, 5,
	)
	vals, err := m.Eigenvalues(dense.WithGroupTolerance(1e-6))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, 2, vals[0].Multiplicity)
	assert.InDelta(t, 1, vals[0].Value().MustComplex().Real(), 1e-6)
	assert.Equal(t, 1, vals[1].Multiplicity)
	assert.InDelta(t, 5, vals[1].Value().MustComplex().Real(), tol)

	// A zero tolerance groups only exact ties.
	vals, err = m.Eigenvalues(dense.WithGroupTolerance(0))
	require.NoError(t, err)
	assert.Len(t, vals, 3)
}

func TestGeneralizedPencil(t *testing.T) {
	// A = diag(2, 6), B = diag(1, 2) ⇒ eigenvalues {2, 3}.
	a := rdf(t, 2, 2, 2, 0, 0, 6)
	b := rdf(t, 2, 2, 1, 0, 0, 2)
	vals, err := a.Eigenvalues(dense.WithMatrix(b))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	got := []float64{
		vals[0].Value().MustComplex().Real(),
		vals[1].Value().MustComplex().Real(),
	}
	assert.InDelta(t, 2, got[0], tol)
	assert.InDelta(t, 3, got[1], tol)
}

func TestGeneralizedSingularPencilHomogeneous(t *testing.T) {
	// B is singular: one eigenvalue escapes to infinity. Homogeneous
	// coordinates keep it as an exact (α, 0) pair.
	a, err := dense.Identity(dense.RDF, 2)
	require.NoError(t, err)
	b := rdf(t, 2, 2, 1, 0, 0, 0)
	vals, err := a.Eigenvalues(dense.WithMatrix(b), dense.Homogeneous())
	require.NoError(t, err)
	require.Len(t, vals, 2)

	finite, infinite := 0, 0
	for _, v := range vals {
		switch val := v.Value(); {
		case val.IsFinite():
			finite++
			assert.InDelta(t, 1, val.MustComplex().Real(), tol)
		case val.IsInfinity():
			infinite++
			assert.True(t, v.Beta.IsZero(), "infinite eigenvalue must carry β = 0 exactly")
		}
	}
	assert.Equal(t, 1, finite)
	assert.Equal(t, 1, infinite)
}

func TestEigenvectorsRight(t *testing.T) {
	m := rdf(t, 2, 2, 0, -1, 1, 0)
	pairs, err := m.EigenvectorsRight()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	mc, err := m.ChangeRing(dense.CDF)
	require.NoError(t, err)
	for _, p := range pairs {
		require.Len(t, p.Vectors, 1)
		assert.Equal(t, 1, p.Value.Multiplicity)
		v := p.Vectors[0]
		av, err := mc.Mul(v)
		require.NoError(t, err)
		lv := v.Scale(p.Value.Value().MustComplex())
		requireClose(t, av, lv, tol)
		// Unit norm.
		n, err := v.Norm(dense.NormFrobenius)
		require.NoError(t, err)
		assert.InDelta(t, 1, n, tol)
	}
}

func TestEigenvectorsLeft(t *testing.T) {
	m := rdf(t, 3, 3, 3, 1, 0, -1, 2, 1, 1, 0, 2)
	pairs, err := m.EigenvectorsLeft()
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	mc, err := m.ChangeRing(dense.CDF)
	require.NoError(t, err)
	for _, p := range pairs {
		w := p.Vectors[0]
		// wᴴ·A = λ·wᴴ.
		wa, err := w.ConjT().Mul(mc)
		require.NoError(t, err)
		lw := w.ConjT().Scale(p.Value.Value().MustComplex())
		requireClose(t, wa, lw, 1e-7)
	}
}

func TestEigenvectorsGeneralized(t *testing.T) {
	a := rdf(t, 2, 2, 2, 1, 0, 6)
	b := rdf(t, 2, 2, 1, 0, 0, 2)
	pairs, err := a.EigenvectorsRight(dense.WithMatrix(b))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	ac, _ := a.ChangeRing(dense.CDF)
	bc, _ := b.ChangeRing(dense.CDF)
	for _, p := range pairs {
		v := p.Vectors[0]
		av, err := ac.Mul(v)
		require.NoError(t, err)
		bv, err := bc.Mul(v)
		require.NoError(t, err)
		// β·A·x = α·B·x.
		lhs := av.Scale(p.Value.Beta)
		rhs := bv.Scale(p.Value.Alpha)
		requireClose(t, lhs, rhs, 1e-7)
	}

	left, err := a.EigenvectorsLeft(dense.WithMatrix(b))
	require.NoError(t, err)
	for _, p := range left {
		// Left vectors are explicitly unit-normalized.
		n, err := p.Vectors[0].Norm(dense.NormFrobenius)
		require.NoError(t, err)
		assert.InDelta(t, 1, n, tol)
	}
}

func TestHomogeneousSuppressesGrouping(t *testing.T) {
	m := rdf(t, 2, 2, 1, 0, 0, 1)
	vals, err := m.Eigenvalues(dense.Homogeneous())
	require.NoError(t, err)
	// Two raw pairs, even though the eigenvalues tie exactly.
	require.Len(t, vals, 2)
	for _, v := range vals {
		assert.Equal(t, 1, v.Multiplicity)
	}
}

func TestPencilShapeMismatch(t *testing.T) {
	a := rdf(t, 2, 2, 1, 0, 0, 1)
	b := rdf(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1)
	_, err := a.Eigenvalues(dense.WithMatrix(b))
	assert.ErrorIs(t, err, dense.ErrShapeMismatch)
}
