package dense

// Ring identifies the coefficient ring of a matrix.
//
//   - RDF — real double field: every entry has a zero imaginary lane and
//     the real-lane backend routines apply.
//   - CDF — complex double field.
//
// RDF widens to CDF for free; the reverse direction is checked (see
// Matrix.ChangeRing).
type Ring int

const (
	// RDF is the real double-precision ring.
	RDF Ring = iota

	// CDF is the complex double-precision ring.
	CDF
)

// String implements fmt.Stringer.
func (r Ring) String() string {
	switch r {
	case RDF:
		return "RDF"
	case CDF:
		return "CDF"
	default:
		return "Ring(?)"
	}
}

// valid reports whether r is one of the declared rings.
func (r Ring) valid() bool { return r == RDF || r == CDF }

// join returns the smallest ring containing both operand rings.
func (r Ring) join(s Ring) Ring {
	if r == CDF || s == CDF {
		return CDF
	}
	return RDF
}
