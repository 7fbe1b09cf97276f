// Package dense: functional configuration.
// Three independent option sets live here: build-time options (engine
// injection), eigenproblem options, and predicate options. Each follows
// the same pattern: documented Default* constants as the single source of
// truth, an Option func over unexported state, and WithX constructors that
// panic only on nonsensical values (programmer error).

package dense

import (
	"math"

	"github.com/katalvlaran/lvldense/backend"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance used by predicates and by
	// eigenvalue grouping when the caller does not supply one.
	DefaultTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEngineNil        = "dense: WithEngine: engine must not be nil"
	panicToleranceInvalid = "dense: tolerance must be finite, non-negative"
	panicAlgorithmInvalid = "dense: unknown algorithm"
	panicRingInvalid      = "dense: unknown ring"
	panicPencilNil        = "dense: WithMatrix: pencil matrix must not be nil"
	panicEigenExclusive   = "dense: WithGroupTolerance and Homogeneous are mutually exclusive"
	panicPencilAlgorithm  = "dense: the generalized problem supports AlgDefault only"
)

// ---------- Build options ----------

// Option configures matrix construction (Builder and the convenience
// constructors). Safe to apply repeatedly; the last write wins.
type Option func(*buildOptions)

type buildOptions struct {
	engine backend.Engine
}

func defaultBuildOptions() buildOptions {
	return buildOptions{engine: backend.Default()}
}

// WithEngine injects the numerical backend used by every factorization of
// the built matrix. Panics if e is nil (programmer error); the packaged
// backend.Default() is used when the option is absent.
func WithEngine(e backend.Engine) Option {
	if e == nil {
		panic(panicEngineNil)
	}
	return func(o *buildOptions) { o.engine = e }
}

func gatherBuildOptions(opts []Option) buildOptions {
	o := defaultBuildOptions()
	var i int
	for i = range opts {
		opts[i](&o)
	}
	return o
}

// validTolerance reports whether tol is usable as an absolute tolerance.
func validTolerance(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 1) && !math.IsNaN(tol)
}

// ---------- Eigen options ----------

// EigenAlgorithm selects the eigenproblem kernel.
type EigenAlgorithm int

const (
	// AlgDefault runs the general nonsymmetric solver.
	AlgDefault EigenAlgorithm = iota

	// AlgSymmetric re-reads every entry as its real part and defers to
	// the Hermitian path. Eigenvalues come out real.
	AlgSymmetric

	// AlgHermitian reads only the lower triangle (mirrored by
	// conjugation) and uses the symmetric/Hermitian kernel.
	AlgHermitian
)

// String implements fmt.Stringer.
func (a EigenAlgorithm) String() string {
	switch a {
	case AlgDefault:
		return "default"
	case AlgSymmetric:
		return "symmetric"
	case AlgHermitian:
		return "hermitian"
	default:
		return "EigenAlgorithm(?)"
	}
}

func (a EigenAlgorithm) valid() bool {
	return a == AlgDefault || a == AlgSymmetric || a == AlgHermitian
}

// EigenOption configures Eigenvalues, EigenvectorsRight and
// EigenvectorsLeft.
type EigenOption func(*eigenOptions)

type eigenOptions struct {
	pencil      *Matrix
	algorithm   EigenAlgorithm
	groupTol    float64
	grouping    bool
	homogeneous bool
}

func defaultEigenOptions() eigenOptions {
	return eigenOptions{algorithm: AlgDefault}
}

// WithMatrix turns the problem into the generalized pencil
// A·x = λ·B·x with b playing B. Panics if b is nil.
func WithMatrix(b *Matrix) EigenOption {
	if b == nil {
		panic(panicPencilNil)
	}
	return func(o *eigenOptions) { o.pencil = b }
}

// WithAlgorithm selects the eigen kernel. Panics on an undeclared value.
func WithAlgorithm(a EigenAlgorithm) EigenOption {
	if !a.valid() {
		panic(panicAlgorithmInvalid)
	}
	return func(o *eigenOptions) { o.algorithm = a }
}

// WithGroupTolerance enables grouping of nearby eigenvalues into
// (value, multiplicity) pairs. Values are sorted and absorbed into the
// current group while their distance to the group's running mean stays
// within tol; this is a heuristic, not a guarantee of algebraic
// multiplicity. Panics on a negative, NaN or +Inf tolerance.
func WithGroupTolerance(tol float64) EigenOption {
	if !validTolerance(tol) {
		panic(panicToleranceInvalid)
	}
	return func(o *eigenOptions) {
		o.grouping = true
		o.groupTol = tol
	}
}

// Homogeneous reports eigenvalues as raw (alpha, beta) pairs and
// suppresses grouping, so a singular pencil's infinite eigenvalues
// (beta = 0) survive exactly.
func Homogeneous() EigenOption {
	return func(o *eigenOptions) { o.homogeneous = true }
}

func gatherEigenOptions(opts []EigenOption) eigenOptions {
	o := defaultEigenOptions()
	var i int
	for i = range opts {
		opts[i](&o)
	}
	if o.homogeneous && o.grouping {
		panic(panicEigenExclusive)
	}
	if o.pencil != nil && o.algorithm != AlgDefault {
		panic(panicPencilAlgorithm)
	}
	return o
}

// ---------- Predicate options ----------

// PredicateAlgorithm selects the strategy for structural predicates.
type PredicateAlgorithm int

const (
	// AlgNaive checks entries (and, for unitarity and normality, the
	// relevant Gram products) directly. O(n²) or O(n³), no factorization.
	AlgNaive PredicateAlgorithm = iota

	// AlgOrthonormal answers through the cached complex Schur form:
	// structure of the triangular factor T decides the predicate.
	AlgOrthonormal
)

// String implements fmt.Stringer.
func (a PredicateAlgorithm) String() string {
	switch a {
	case AlgNaive:
		return "naive"
	case AlgOrthonormal:
		return "orthonormal"
	default:
		return "PredicateAlgorithm(?)"
	}
}

func (a PredicateAlgorithm) valid() bool {
	return a == AlgNaive || a == AlgOrthonormal
}

// PredicateOption configures IsUnitary, IsHermitian, IsSkewHermitian and
// IsNormal.
type PredicateOption func(*predicateOptions)

type predicateOptions struct {
	algorithm PredicateAlgorithm
	tolerance float64
}

func defaultPredicateOptions() predicateOptions {
	return predicateOptions{algorithm: AlgNaive, tolerance: DefaultTolerance}
}

// WithPredicateAlgorithm selects the predicate strategy. Panics on an
// undeclared value.
func WithPredicateAlgorithm(a PredicateAlgorithm) PredicateOption {
	if !a.valid() {
		panic(panicAlgorithmInvalid)
	}
	return func(o *predicateOptions) { o.algorithm = a }
}

// WithPredicateTolerance sets the absolute tolerance of the predicate.
// Panics on a negative, NaN or +Inf tolerance.
func WithPredicateTolerance(tol float64) PredicateOption {
	if !validTolerance(tol) {
		panic(panicToleranceInvalid)
	}
	return func(o *predicateOptions) { o.tolerance = tol }
}

func gatherPredicateOptions(opts []PredicateOption) predicateOptions {
	o := defaultPredicateOptions()
	var i int
	for i = range opts {
		opts[i](&o)
	}
	return o
}

// ---------- Schur options ----------

// SchurOption configures Matrix.Schur.
type SchurOption func(*schurOptions)

type schurOptions struct {
	ring    Ring
	ringSet bool
}

// WithSchurRing requests the output ring of the Schur factors: RDF yields
// the real quasi-triangular form (RDF matrices only), CDF the fully
// triangular complex form. Panics on an undeclared ring. Without the
// option the matrix's own ring is used.
func WithSchurRing(r Ring) SchurOption {
	if !r.valid() {
		panic(panicRingInvalid)
	}
	return func(o *schurOptions) {
		o.ring = r
		o.ringSet = true
	}
}

func gatherSchurOptions(opts []SchurOption, own Ring) schurOptions {
	o := schurOptions{ring: own}
	var i int
	for i = range opts {
		opts[i](&o)
	}
	return o
}
