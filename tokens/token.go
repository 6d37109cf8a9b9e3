// Package tokens is the resolution core of the design token pipeline:
// layered definitions merge into per-token property maps, inheritance
// chains resolve into deltas against ancestors, and nested reference
// patterns resolve against the current context. All dimensional comparison
// goes through EMU form so fractional points survive resolution intact.
package tokens

import (
	"sort"

	"github.com/maruel/natural"
)

// PropertyMap holds a token's properties. Values are scalars (string, bool,
// numbers), nested PropertyMap records, or reference-pattern strings that
// the reference resolver rewrites.
type PropertyMap map[string]any

// Clone returns a deep copy. Nested maps are copied recursively, scalars as
// values.
func (p PropertyMap) Clone() PropertyMap {
	if p == nil {
		return nil
	}
	out := make(PropertyMap, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

// Keys returns property names in natural order, so dumps and signatures
// stay stable between runs.
func (p PropertyMap) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Equal compares two maps deeply, coercing numeric types so an authored 400
// and a decoded 400.0 compare equal.
func (p PropertyMap) Equal(other PropertyMap) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case PropertyMap:
		return tv.Clone()
	case map[string]any:
		return PropertyMap(tv).Clone()
	default:
		return v
	}
}

func valueEqual(a, b any) bool {
	if am, ok := asPropertyMap(a); ok {
		bm, ok := asPropertyMap(b)
		return ok && am.Equal(bm)
	}
	if an, ok := numericFromAny(a); ok {
		if bn, ok := numericFromAny(b); ok {
			return an == bn
		}
		return false
	}
	return a == b
}

func asPropertyMap(v any) (PropertyMap, bool) {
	switch tv := v.(type) {
	case PropertyMap:
		return tv, true
	case map[string]any:
		return PropertyMap(tv), true
	default:
		return nil, false
	}
}

// numericFromAny widens any numeric value to float64 for comparison.
func numericFromAny(v any) (float64, bool) {
	switch tv := v.(type) {
	case int:
		return float64(tv), true
	case int32:
		return float64(tv), true
	case int64:
		return float64(tv), true
	case uint:
		return float64(tv), true
	case uint32:
		return float64(tv), true
	case uint64:
		return float64(tv), true
	case float32:
		return float64(tv), true
	case float64:
		return tv, true
	default:
		return 0, false
	}
}

// Token is a single definition as seen by the resolver, after layer merge.
type Token struct {
	ID    string
	Base  string      // optional: another token's id or a base style id
	Mode  InheritMode // authored mode, InheritModeAuto unless overridden
	Props PropertyMap
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	return &Token{ID: t.ID, Base: t.Base, Mode: t.Mode, Props: t.Props.Clone()}
}

// ScalarValue returns the token's single value for reference substitution:
// the "value" property when present, otherwise the sole property of a
// one-entry map.
func (t *Token) ScalarValue() (any, bool) {
	if v, ok := t.Props["value"]; ok {
		return v, true
	}
	if len(t.Props) == 1 {
		for _, v := range t.Props {
			return v, true
		}
	}
	return nil, false
}

// Resolved is the outcome of resolving one token. It is immutable once
// returned; concurrent readers share instances through the cache.
type Resolved struct {
	ID        string
	Base      string // cleared when Mode is complete
	Mode      InheritMode
	Delta     PropertyMap // subset of Effective, nil for complete mode
	Effective PropertyMap
	Chain     []string // root → self
	Circular  bool
}

// Depth is the inheritance depth, one less than the chain length.
func (r *Resolved) Depth() int {
	if len(r.Chain) == 0 {
		return 0
	}
	return len(r.Chain) - 1
}

// Clone returns a deep copy; mutating it never reaches cached instances.
func (r *Resolved) Clone() *Resolved {
	if r == nil {
		return nil
	}
	out := *r
	out.Delta = r.Delta.Clone()
	out.Effective = r.Effective.Clone()
	if r.Chain != nil {
		out.Chain = make([]string, len(r.Chain))
		copy(out.Chain, r.Chain)
	}
	return &out
}

// Layer is one named precedence layer: token id → definition. Layers are
// value types and never mutated by the merger.
type Layer struct {
	Name   string
	Tokens map[string]LayerToken
	Vars   map[string]string // dynamic variable defaults contributed by the layer
}

// LayerToken is a token definition as authored within one layer.
type LayerToken struct {
	Base  string
	Mode  InheritMode
	Props PropertyMap
}

// Snapshot is the immutable set of token definitions visible to one
// resolution pass, with a content hash for cache keying. Callers must not
// mutate tokens reachable from a snapshot while a pass runs over it.
type Snapshot struct {
	tokens map[string]*Token
	hash   uint64
}

// NewSnapshot copies the id → token index and fixes the content hash.
func NewSnapshot(toks map[string]*Token) *Snapshot {
	index := make(map[string]*Token, len(toks))
	for id, t := range toks {
		index[id] = t
	}
	return &Snapshot{tokens: index, hash: hashHierarchy(index)}
}

// SnapshotOf builds a snapshot from a token list, keyed by id. Later
// duplicates win, mirroring registry semantics.
func SnapshotOf(toks ...*Token) *Snapshot {
	index := make(map[string]*Token, len(toks))
	for _, t := range toks {
		index[t.ID] = t
	}
	return NewSnapshot(index)
}

// Get returns the token with the given id.
func (s *Snapshot) Get(id string) (*Token, bool) {
	t, ok := s.tokens[id]
	return t, ok
}

// Hash is the content hash of the whole snapshot.
func (s *Snapshot) Hash() uint64 { return s.hash }

// Len is the number of tokens in the snapshot.
func (s *Snapshot) Len() int { return len(s.tokens) }

// IDs returns all token ids in natural order.
func (s *Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.tokens))
	for id := range s.tokens {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))
	return ids
}

// Context is what one resolution pass sees: the hierarchy snapshot and the
// current values of dynamic selector variables.
type Context struct {
	Snap *Snapshot
	Vars map[string]string
}

// NewContext pairs a snapshot with dynamic variable values.
func NewContext(snap *Snapshot, vars map[string]string) *Context {
	return &Context{Snap: snap, Vars: vars}
}

// Var resolves a dynamic variable: explicit context values first, then an
// ordinary token of that name carrying a scalar value.
func (rc *Context) Var(name string) (string, bool) {
	if v, ok := rc.Vars[name]; ok {
		return v, true
	}
	if rc.Snap != nil {
		if t, ok := rc.Snap.Get(name); ok {
			if v, ok := t.ScalarValue(); ok {
				if s, ok := v.(string); ok {
					return s, true
				}
			}
		}
	}
	return "", false
}
