// Package dense: eigenvalues and eigenvectors, ordinary and generalized.
// Eigenvalues travel in homogeneous (alpha, beta) form internally, so a
// singular pencil's infinite eigenvalues survive until the caller asks
// for a plain value (cdouble.Value absorbs the pole).

package dense

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvldense/cdouble"
)

// Eigenvalue is one (grouped) eigenvalue in homogeneous coordinates:
// the eigenvalue proper is Alpha/Beta, with Beta = 0 encoding the
// infinite eigenvalues of a singular pencil. Ordinary (non-pencil)
// problems always carry Beta = 1.
type Eigenvalue struct {
	Alpha        cdouble.Complex
	Beta         cdouble.Complex
	Multiplicity int
}

// Value resolves the homogeneous pair: Finite(Alpha/Beta) when Beta is
// nonzero, Infinity when only Beta vanishes, Undefined for the
// indeterminate 0/0 of a degenerate pencil.
func (e Eigenvalue) Value() cdouble.Value {
	if e.Beta.IsZero() {
		if e.Alpha.IsZero() {
			return cdouble.Undefined()
		}
		return cdouble.Infinity()
	}
	return cdouble.Finite(e.Alpha.Div(e.Beta))
}

// EigenPair couples an eigenvalue with its eigenvector basis. The solver
// reports one unit vector per eigenvalue occurrence and multiplicity 1;
// repeated eigenvalues therefore appear as repeated pairs, not as a
// higher-dimensional basis.
type EigenPair struct {
	Value   Eigenvalue
	Vectors []*Matrix
}

// Eigenvalues returns the eigenvalues of m (or of the pencil (m, B) when
// WithMatrix is given). Without options every eigenvalue comes back with
// multiplicity 1, sorted lexicographically. WithGroupTolerance merges
// nearby values into (value, multiplicity) groups; Homogeneous returns
// the raw (alpha, beta) pairs in backend order instead.
//
// Complexity is O(n³); results are not cached (the factor cache covers
// the decompositions the eigen paths are built from).
func (m *Matrix) Eigenvalues(opts ...EigenOption) ([]Eigenvalue, error) {
	eo := gatherEigenOptions(opts)
	alpha, beta, err := m.eigenvalueData(&eo)
	if err != nil {
		return nil, err
	}
	out := make([]Eigenvalue, len(alpha))
	var i int
	for i = range alpha {
		out[i] = Eigenvalue{
			Alpha:        cdouble.FromComplex128(alpha[i]),
			Beta:         cdouble.FromComplex128(beta[i]),
			Multiplicity: 1,
		}
	}
	if eo.homogeneous {
		return out, nil
	}
	if eo.grouping {
		return groupEigenvalues(out, eo.groupTol), nil
	}
	sortEigenvalues(out)
	return out, nil
}

// eigenvalueData runs the selected kernel and returns raw homogeneous
// pairs; ordinary problems get beta = 1 throughout.
func (m *Matrix) eigenvalueData(eo *eigenOptions) ([]complex128, []complex128, error) {
	if !m.IsSquare() {
		return nil, nil, ErrNotSquare
	}
	n := m.rows
	if eo.pencil != nil {
		b := eo.pencil
		if !b.IsSquare() || b.rows != n {
			return nil, nil, ErrShapeMismatch
		}
		if n == 0 {
			return nil, nil, nil
		}
		if m.ring.join(b.ring) == RDF {
			alpha, beta, _, _, err := m.eng.DEigGen(m.realData(), b.realData(), n, false, false)
			if err != nil {
				return nil, nil, mapBackendErr(err)
			}
			cb := make([]complex128, n)
			var i int
			for i = range beta {
				cb[i] = complex(beta[i], 0)
			}
			return alpha, cb, nil
		}
		alpha, beta, _, _, err := m.eng.ZEigGen(m.dataCopy(), b.dataCopy(), n, false, false)
		if err != nil {
			return nil, nil, mapBackendErr(err)
		}
		return alpha, beta, nil
	}
	if n == 0 {
		return nil, nil, nil
	}
	var alpha []complex128
	switch eo.algorithm {
	case AlgSymmetric, AlgHermitian:
		vals, _, err := m.hermitianEigen(eo.algorithm, false)
		if err != nil {
			return nil, nil, err
		}
		alpha = make([]complex128, n)
		var i int
		for i = range vals {
			alpha[i] = complex(vals[i], 0)
		}
	default:
		var err error
		if m.ring == RDF {
			alpha, _, _, err = m.eng.DEig(m.realData(), n, false, false)
		} else {
			alpha, _, _, err = m.eng.ZEig(m.dataCopy(), n, false, false)
		}
		if err != nil {
			return nil, nil, mapBackendErr(err)
		}
	}
	beta := make([]complex128, n)
	var i int
	for i = range beta {
		beta[i] = 1
	}
	return alpha, beta, nil
}

// hermitianEigen dispatches the symmetric/Hermitian fast path.
// AlgSymmetric reads the real lane of every entry; AlgHermitian keeps
// complex entries and reads only the lower triangle. Eigenvalues are
// real, ascending; vectors (when requested) are orthonormal columns.
func (m *Matrix) hermitianEigen(alg EigenAlgorithm, vectors bool) ([]float64, *Matrix, error) {
	n := m.rows
	if alg == AlgSymmetric || m.ring == RDF {
		re := make([]float64, n*n)
		var k int
		for k = range m.data {
			re[k] = real(m.data[k])
		}
		vals, vecs, err := m.eng.DEigSym(re, n, vectors)
		if err != nil {
			return nil, nil, mapBackendErr(err)
		}
		var vm *Matrix
		if vectors {
			vm = m.fromReal(RDF, n, n, vecs)
		}
		return vals, vm, nil
	}
	vals, vecs, err := m.eng.ZEigHerm(m.dataCopy(), n, vectors)
	if err != nil {
		return nil, nil, mapBackendErr(err)
	}
	var vm *Matrix
	if vectors {
		vm = m.derived(CDF, n, n, vecs)
	}
	return vals, vm, nil
}

// EigenvectorsRight returns, per eigenvalue, a unit right eigenvector
// satisfying m·x = λ·x (or β·m·x = α·B·x for a pencil). Grouping options
// are ignored here: each pair reports multiplicity 1 with a singleton
// basis. Homogeneous keeps raw (alpha, beta) values.
func (m *Matrix) EigenvectorsRight(opts ...EigenOption) ([]EigenPair, error) {
	return m.eigenvectors(opts, false)
}

// EigenvectorsLeft returns, per eigenvalue, a unit left eigenvector
// satisfying wᴴ·m = λ·wᴴ (or β·wᴴ·m = α·wᴴ·B for a pencil).
func (m *Matrix) EigenvectorsLeft(opts ...EigenOption) ([]EigenPair, error) {
	return m.eigenvectors(opts, true)
}

func (m *Matrix) eigenvectors(opts []EigenOption, left bool) ([]EigenPair, error) {
	eo := gatherEigenOptions(opts)
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	n := m.rows
	var alpha, beta, vecs []complex128
	vecRing := CDF

	switch {
	case eo.pencil != nil:
		b := eo.pencil
		if !b.IsSquare() || b.rows != n {
			return nil, ErrShapeMismatch
		}
		if n == 0 {
			return []EigenPair{}, nil
		}
		var err error
		if m.ring.join(b.ring) == RDF {
			var rb []float64
			var vl, vr []complex128
			alpha, rb, vl, vr, err = m.eng.DEigGen(m.realData(), b.realData(), n, left, !left)
			if err != nil {
				return nil, mapBackendErr(err)
			}
			beta = make([]complex128, n)
			var i int
			for i = range rb {
				beta[i] = complex(rb[i], 0)
			}
			vecs = vr
			if left {
				vecs = vl
			}
		} else {
			var vl, vr []complex128
			alpha, beta, vl, vr, err = m.eng.ZEigGen(m.dataCopy(), b.dataCopy(), n, left, !left)
			if err != nil {
				return nil, mapBackendErr(err)
			}
			vecs = vr
			if left {
				vecs = vl
			}
		}
		if left {
			// Generalized left vectors follow the LAPACK normalization
			// (largest component), not unit length; rescale explicitly.
			normalizeVectorColumns(vecs, n)
		}
	case eo.algorithm == AlgSymmetric || eo.algorithm == AlgHermitian:
		if n == 0 {
			return []EigenPair{}, nil
		}
		vals, vm, err := m.hermitianEigen(eo.algorithm, true)
		if err != nil {
			return nil, err
		}
		// Hermitian: real spectrum makes left and right vectors coincide.
		alpha = make([]complex128, n)
		var i int
		for i = range vals {
			alpha[i] = complex(vals[i], 0)
		}
		vecs = vm.dataCopy()
		vecRing = vm.ring
	default:
		if n == 0 {
			return []EigenPair{}, nil
		}
		var err error
		var vl, vr []complex128
		if m.ring == RDF {
			alpha, vl, vr, err = m.eng.DEig(m.realData(), n, left, !left)
		} else {
			alpha, vl, vr, err = m.eng.ZEig(m.dataCopy(), n, left, !left)
		}
		if err != nil {
			return nil, mapBackendErr(err)
		}
		vecs = vr
		if left {
			vecs = vl
		}
	}
	if beta == nil {
		beta = make([]complex128, n)
		var i int
		for i = range beta {
			beta[i] = 1
		}
	}

	pairs := make([]EigenPair, n)
	var k, i int
	for k = 0; k < n; k++ {
		col := make([]complex128, n)
		for i = 0; i < n; i++ {
			col[i] = vecs[i*n+k]
		}
		pairs[k] = EigenPair{
			Value: Eigenvalue{
				Alpha:        cdouble.FromComplex128(alpha[k]),
				Beta:         cdouble.FromComplex128(beta[k]),
				Multiplicity: 1,
			},
			Vectors: []*Matrix{m.derived(vecRing, n, 1, col)},
		}
	}
	return pairs, nil
}

// normalizeVectorColumns rescales each column of an n×n flat buffer to
// unit Euclidean norm, skipping zero columns.
func normalizeVectorColumns(v []complex128, n int) {
	var i, j int
	for j = 0; j < n; j++ {
		var norm float64
		for i = 0; i < n; i++ {
			e := v[i*n+j]
			norm += real(e)*real(e) + imag(e)*imag(e)
		}
		if norm == 0 {
			continue
		}
		inv := complex(1/math.Sqrt(norm), 0)
		for i = 0; i < n; i++ {
			v[i*n+j] *= inv
		}
	}
}

// sortEigenvalues orders by the lexicographic Cmp of the resolved value,
// infinite and undefined entries last.
func sortEigenvalues(vals []Eigenvalue) {
	sort.SliceStable(vals, func(a, b int) bool {
		va, vb := vals[a].Value(), vals[b].Value()
		if va.IsFinite() != vb.IsFinite() {
			return va.IsFinite()
		}
		if !va.IsFinite() {
			return false
		}
		return vals[a].Value().MustComplex().Cmp(vals[b].Value().MustComplex()) < 0
	})
}

// groupEigenvalues merges sorted finite eigenvalues whose distance to the
// group's running mean stays within tol, reporting the mean with the
// accumulated multiplicity. A running-mean single-linkage pass is a
// heuristic: clusters wider than tol can still split or chain. Infinite
// and indeterminate pencil eigenvalues group among themselves exactly.
func groupEigenvalues(vals []Eigenvalue, tol float64) []Eigenvalue {
	var finite []Eigenvalue
	infCount, undefCount := 0, 0
	var i int
	for i = range vals {
		v := vals[i].Value()
		switch {
		case v.IsFinite():
			finite = append(finite, vals[i])
		case v.IsInfinity():
			infCount++
		default:
			undefCount++
		}
	}
	sortEigenvalues(finite)

	out := make([]Eigenvalue, 0, len(finite)+2)
	var mean complex128
	count := 0
	flush := func() {
		if count > 0 {
			out = append(out, Eigenvalue{
				Alpha:        cdouble.FromComplex128(mean),
				Beta:         cdouble.One,
				Multiplicity: count,
			})
		}
		count = 0
	}
	for i = range finite {
		v := finite[i].Value().MustComplex().Complex128()
		if count > 0 && cdouble.FromComplex128(v-mean).Abs() <= tol {
			count++
			mean += (v - mean) / complex(float64(count), 0)
			continue
		}
		flush()
		mean = v
		count = 1
	}
	flush()
	if infCount > 0 {
		out = append(out, Eigenvalue{Alpha: cdouble.One, Beta: cdouble.Zero, Multiplicity: infCount})
	}
	if undefCount > 0 {
		out = append(out, Eigenvalue{Alpha: cdouble.Zero, Beta: cdouble.Zero, Multiplicity: undefCount})
	}
	return out
}
