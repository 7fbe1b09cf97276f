// Package cdouble: tagged result for functions with poles.

package cdouble

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	// KindFinite tags an ordinary finite complex value.
	KindFinite ValueKind = iota
	// KindInfinity tags the unsigned complex infinity, the value of a
	// function at a pole (e.g. Gamma at a non-positive real integer).
	KindInfinity
	// KindUndefined tags points where no limit exists in any direction
	// (e.g. an essential singularity approached ambiguously).
	KindUndefined
)

// String returns the variant name.
func (k ValueKind) String() string {
	switch k {
	case KindFinite:
		return "Finite"
	case KindInfinity:
		return "Infinity"
	case KindUndefined:
		return "Undefined"
	}
	return "ValueKind(?)"
}

// Value is the tagged union {Finite(Complex) | Infinity | Undefined}
// returned by functions whose poles are mathematical values rather than
// computation failures. Callers must branch on the kind; the numeric
// payload is only meaningful for the Finite variant.
type Value struct {
	kind ValueKind
	z    Complex
}

// Finite wraps an ordinary complex value.
func Finite(z Complex) Value { return Value{kind: KindFinite, z: z} }

// Infinity is the unsigned complex infinity sentinel.
func Infinity() Value { return Value{kind: KindInfinity} }

// Undefined is the no-limit sentinel.
func Undefined() Value { return Value{kind: KindUndefined} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsFinite reports whether v holds an ordinary complex value.
func (v Value) IsFinite() bool { return v.kind == KindFinite }

// IsInfinity reports whether v is the unsigned infinity sentinel.
func (v Value) IsInfinity() bool { return v.kind == KindInfinity }

// IsUndefined reports whether v is the undefined sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// Complex returns the finite payload and whether it is valid.
func (v Value) Complex() (Complex, bool) { return v.z, v.kind == KindFinite }

// MustComplex returns the finite payload and panics on a non-finite
// variant. Reserved for call sites that have already checked the kind;
// reaching the panic is a programmer error.
func (v Value) MustComplex() Complex {
	if v.kind != KindFinite {
		panic("cdouble: MustComplex on " + v.kind.String() + " value")
	}
	return v.z
}

// String renders the value or its sentinel name.
func (v Value) String() string {
	if v.kind == KindFinite {
		return v.z.String()
	}
	return v.kind.String()
}
