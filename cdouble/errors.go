// Package cdouble: sentinel error set.
// All user-triggered failures are reported through these sentinels and are
// matched by callers via errors.Is. Messages carry the "cdouble: " prefix
// for consistent grepping across logs. Poles are not errors — see Value.

package cdouble

import "errors"

var (
	// ErrDomain indicates an input outside the valid domain of a function,
	// e.g. Eta evaluated at a point with non-positive imaginary part.
	// There is no sensible sentinel value for such inputs, so they fail.
	ErrDomain = errors.New("cdouble: input outside function domain")

	// ErrBadParameter indicates an invalid parameter, e.g. a non-positive
	// root order passed to NthRoot/AllNthRoots or an unknown AGM branch.
	// Validated eagerly, before any computation.
	ErrBadParameter = errors.New("cdouble: invalid parameter")
)
