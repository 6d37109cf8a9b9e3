package tokens

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
)

// DefaultMaxRefDepth bounds chained reference resolution.
const DefaultMaxRefDepth = 10

// refEntry is an immutable cached resolution. snapHash and varsSig pin the
// inputs it was computed from; a lookup that finds a stale entry recomputes
// and overwrites instead of purging eagerly.
type refEntry struct {
	value    any
	snapHash uint64
	varsSig  uint64
	varNames []string
}

// RefResolver resolves reference patterns of the form {path.to.token},
// including nested dynamic variables such as {color.{theme}.primary}.
// Inner variables resolve first, innermost to outermost; the assembled path
// then resolves against the snapshot. When the referenced token's value is
// itself a pattern, resolution chains until a concrete value is reached.
//
// Resolved patterns are cached. Entries are revalidated on every hit
// against the current snapshot hash and the signature of the dynamic
// variables they consumed, so changing a variable lazily invalidates
// exactly the patterns that depend on it.
type RefResolver struct {
	cache    *xsync.Map[string, *refEntry]
	maxDepth int
	log      *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRefResolver creates a resolver with the given chain depth budget.
// Non-positive maxDepth selects DefaultMaxRefDepth.
func NewRefResolver(maxDepth int, log *zap.Logger) *RefResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRefDepth
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RefResolver{
		cache:    xsync.NewMap[string, *refEntry](),
		maxDepth: maxDepth,
		log:      log.Named("refs"),
	}
}

// IsPattern reports whether a raw value looks like a reference pattern.
// Anything starting with an opening brace is treated as an attempted
// reference, so unbalanced input surfaces as a malformed pattern error
// instead of passing through silently.
func IsPattern(s string) bool {
	return strings.HasPrefix(s, "{")
}

// Resolve resolves a single pattern against the context. The returned value
// is a scalar for simple tokens or a PropertyMap clone for composite ones.
func (rr *RefResolver) Resolve(pattern string, rc *Context) (any, error) {
	if ent, ok := rr.cache.Load(pattern); ok {
		if ent.snapHash == rc.Snap.Hash() && ent.varsSig == varsSignature(ent.varNames, rc) {
			rr.hits.Add(1)
			return cloneValue(ent.value), nil
		}
	}
	rr.misses.Add(1)

	st := &refState{visited: map[string]struct{}{}}
	val, err := rr.resolve(pattern, rc, st, 1)
	if err != nil {
		return nil, err
	}

	rr.cache.Store(pattern, &refEntry{
		value:    cloneValue(val),
		snapHash: rc.Snap.Hash(),
		varsSig:  varsSignature(st.varNames, rc),
		varNames: st.varNames,
	})
	return val, nil
}

// Hits returns the number of cache hits served so far.
func (rr *RefResolver) Hits() int64 { return rr.hits.Load() }

// Misses returns the number of full resolutions performed so far.
func (rr *RefResolver) Misses() int64 { return rr.misses.Load() }

// Size returns the number of cached patterns.
func (rr *RefResolver) Size() int { return rr.cache.Size() }

// refState carries bookkeeping across one top-level resolution: patterns
// already entered (cycle detection) and dynamic variables consumed (cache
// signature).
type refState struct {
	visited  map[string]struct{}
	varNames []string
	seen     map[string]struct{}
}

func (st *refState) recordVar(name string) {
	if st.seen == nil {
		st.seen = map[string]struct{}{}
	}
	if _, dup := st.seen[name]; dup {
		return
	}
	st.seen[name] = struct{}{}
	st.varNames = append(st.varNames, name)
}

func (rr *RefResolver) resolve(pattern string, rc *Context, st *refState, depth int) (any, error) {
	if depth > rr.maxDepth {
		return nil, fmt.Errorf("pattern %q exceeds reference depth %d: %w", pattern, rr.maxDepth, ErrMaxDepthExceeded)
	}
	if _, cyc := st.visited[pattern]; cyc {
		return nil, fmt.Errorf("pattern %q references itself: %w", pattern, ErrCircularReference)
	}
	st.visited[pattern] = struct{}{}

	inner, err := outerGroup(pattern)
	if err != nil {
		return nil, err
	}

	// Substitute nested dynamic variables, always the innermost group first.
	// A value without braces consumes one group, so those splices are free.
	// A value that reintroduces braces is one level of indirection: it is
	// charged against the depth budget, and a rewrite state seen twice is a
	// cycle.
	var (
		states map[string]struct{}
		subs   int
	)
	for {
		name, start, end, ok, gerr := innermostGroup(inner)
		if gerr != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, gerr)
		}
		if !ok {
			break
		}
		st.recordVar(name)
		val, ok := rc.Var(name)
		if !ok {
			return nil, fmt.Errorf("dynamic variable %q in pattern %q: %w", name, pattern, ErrUnresolvedVariable)
		}
		inner = inner[:start] + val + inner[end+1:]
		if !strings.ContainsAny(val, "{}") {
			continue
		}
		if states == nil {
			states = map[string]struct{}{}
		}
		if _, dup := states[inner]; dup {
			return nil, fmt.Errorf("variable %q cycles in pattern %q: %w", name, pattern, ErrCircularReference)
		}
		states[inner] = struct{}{}
		subs++
		if subs > rr.maxDepth {
			return nil, fmt.Errorf("pattern %q exceeds reference depth %d: %w", pattern, rr.maxDepth, ErrMaxDepthExceeded)
		}
	}

	if inner == "" {
		return nil, fmt.Errorf("pattern %q is empty: %w", pattern, ErrMalformedPattern)
	}
	if strings.HasPrefix(inner, ".") || strings.HasSuffix(inner, ".") || strings.Contains(inner, "..") {
		return nil, fmt.Errorf("pattern %q has an empty path segment: %w", pattern, ErrMalformedPattern)
	}

	tok, found := rc.Snap.Get(inner)
	if !found {
		return nil, fmt.Errorf("token %q in pattern %q: %w", inner, pattern, ErrUnresolvedToken)
	}

	val, scalar := tok.ScalarValue()
	if !scalar {
		return tok.Props.Clone(), nil
	}
	if s, isStr := val.(string); isStr && IsPattern(s) {
		return rr.resolve(s, rc, st, depth+1)
	}
	return cloneValue(val), nil
}

// outerGroup validates that the pattern is one balanced brace group
// spanning the whole string and returns its content.
func outerGroup(pattern string) (string, error) {
	if len(pattern) < 2 || pattern[0] != '{' || pattern[len(pattern)-1] != '}' {
		return "", fmt.Errorf("pattern %q is not a single braced group: %w", pattern, ErrMalformedPattern)
	}
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return "", fmt.Errorf("pattern %q has unbalanced braces: %w", pattern, ErrMalformedPattern)
			}
			if depth == 0 && i != len(pattern)-1 {
				return "", fmt.Errorf("pattern %q closes before its end: %w", pattern, ErrMalformedPattern)
			}
		}
	}
	if depth != 0 {
		return "", fmt.Errorf("pattern %q has unbalanced braces: %w", pattern, ErrMalformedPattern)
	}
	return pattern[1 : len(pattern)-1], nil
}

// innermostGroup finds the deepest {name} group in s. It returns the group
// content and the byte range of the braces. ok is false when s has no
// braces left.
func innermostGroup(s string) (name string, start, end int, ok bool, err error) {
	end = strings.IndexByte(s, '}')
	open := strings.IndexByte(s, '{')
	if end < 0 && open < 0 {
		return "", 0, 0, false, nil
	}
	if end < 0 || (open >= 0 && open > end) {
		return "", 0, 0, false, fmt.Errorf("unbalanced braces: %w", ErrMalformedPattern)
	}
	start = strings.LastIndexByte(s[:end], '{')
	if start < 0 {
		return "", 0, 0, false, fmt.Errorf("unbalanced braces: %w", ErrMalformedPattern)
	}
	name = s[start+1 : end]
	if name == "" {
		return "", 0, 0, false, fmt.Errorf("empty variable group: %w", ErrMalformedPattern)
	}
	return name, start, end, true, nil
}
