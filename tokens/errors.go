package tokens

import "errors"

// Error kinds of the resolution core. Callers match with errors.Is; the
// wrapping message carries the offending token, variable or pattern.
var (
	// ErrCircularReference marks a cycle in an inheritance chain or a
	// nested-reference walk. Non-strict resolution degrades chain cycles
	// to a complete fallback instead of surfacing this.
	ErrCircularReference = errors.New("circular reference")

	// ErrMissingBaseStyle marks a base reference that names neither a token
	// in the snapshot nor a registered base style.
	ErrMissingBaseStyle = errors.New("missing base style")

	// ErrMalformedPattern marks unbalanced braces or an empty segment in a
	// reference pattern. Always a hard per-token error.
	ErrMalformedPattern = errors.New("malformed reference pattern")

	// ErrUnresolvedVariable marks a {name} segment with no value in the
	// resolution context.
	ErrUnresolvedVariable = errors.New("unresolved dynamic variable")

	// ErrUnresolvedToken marks an assembled reference path that names no
	// token in the snapshot.
	ErrUnresolvedToken = errors.New("unresolved token")

	// ErrMaxDepthExceeded marks a reference walk that ran past the
	// configured depth limit.
	ErrMaxDepthExceeded = errors.New("max depth exceeded")
)

// StrictPolicy selects, per recoverable error kind, whether resolution
// degrades with a warning (false) or reports a per-token error (true).
// Either way a batch keeps going; strictness only changes what the affected
// token reports. Malformed patterns and unparseable dimensions are always
// per-token errors.
type StrictPolicy struct {
	MissingBase     bool // missing base: fallback to complete vs error
	MissingVariable bool // unbound {var}: keep pattern verbatim vs error
	UnresolvedToken bool // dead reference path: keep pattern verbatim vs error
	DepthExceeded   bool // chain or reference depth limit: truncate vs error
	CircularRef     bool // chain or reference cycle: degrade vs error
}

// strictFor reports whether the policy treats the given reference error as
// hard. Malformed patterns are hard regardless of policy.
func (p StrictPolicy) strictFor(err error) bool {
	switch {
	case errors.Is(err, ErrMalformedPattern):
		return true
	case errors.Is(err, ErrUnresolvedVariable):
		return p.MissingVariable
	case errors.Is(err, ErrUnresolvedToken):
		return p.UnresolvedToken
	case errors.Is(err, ErrMaxDepthExceeded):
		return p.DepthExceeded
	case errors.Is(err, ErrCircularReference):
		return p.CircularRef
	default:
		return true
	}
}
