package tokens

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dtc/emu"
)

// DefaultMaxChainDepth bounds how many tokens one inheritance walk visits.
const DefaultMaxChainDepth = 10

// Options tune a Resolver. Zero values select the defaults.
type Options struct {
	MaxChainDepth int          // inheritance walk budget, default 10
	MaxRefDepth   int          // reference chain budget, default 10
	Strict        StrictPolicy // which recoverable conditions become errors
}

func (o Options) withDefaults() Options {
	if o.MaxChainDepth <= 0 {
		o.MaxChainDepth = DefaultMaxChainDepth
	}
	if o.MaxRefDepth <= 0 {
		o.MaxRefDepth = DefaultMaxRefDepth
	}
	return o
}

// Resolver walks inheritance chains and turns merged tokens into resolved
// ones: either a delta against a resolved ancestor or a self-contained
// complete property set. It never mutates its inputs and is safe for
// concurrent use over an immutable snapshot.
type Resolver struct {
	reg  *Registry
	conv *emu.Converter
	opts Options
	log  *zap.Logger

	cache *resultCache
	refs  *RefResolver
}

// NewResolver creates a resolver. A nil registry gets the builtin catalog,
// a nil converter the default conversion context.
func NewResolver(reg *Registry, conv *emu.Converter, opts Options, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if conv == nil {
		conv = emu.NewConverter(0, emu.Dimension{}, log)
	}
	if reg == nil {
		reg = NewRegistry(conv, log)
	}
	opts = opts.withDefaults()
	return &Resolver{
		reg:   reg,
		conv:  conv,
		opts:  opts,
		log:   log.Named("resolver"),
		cache: newResultCache(),
		refs:  NewRefResolver(opts.MaxRefDepth, log),
	}
}

// Registry returns the base style catalog the resolver consults.
func (r *Resolver) Registry() *Registry { return r.reg }

// Converter returns the dimension conversion context in use.
func (r *Resolver) Converter() *emu.Converter { return r.conv }

// CacheStats reports both caches and the deepest chain committed so far.
func (r *Resolver) CacheStats() CacheStats {
	return CacheStats{
		Entries:       r.cache.size(),
		Hits:          r.cache.hits.Load(),
		Misses:        r.cache.misses.Load(),
		RefEntries:    r.refs.Size(),
		RefHits:       r.refs.Hits(),
		RefMisses:     r.refs.Misses(),
		MaxChainDepth: int(r.cache.maxDepth.Load()),
	}
}

// Resolve resolves one token against the context. The result is a fresh
// copy; callers may mutate it freely. Repeated calls with an unchanged
// snapshot serve from cache and return equivalent results.
func (r *Resolver) Resolve(rc *Context, id string) (*Resolved, error) {
	tok, ok := rc.Snap.Get(id)
	if !ok {
		return nil, fmt.Errorf("token %q not in hierarchy: %w", id, ErrUnresolvedToken)
	}

	key := cacheKey(tok.ID, tok.Base, tok.Mode, rc.Snap.Hash(), contextVarsHash(rc.Vars))
	if res, hit := r.cache.lookup(key); hit {
		return res.Clone(), nil
	}

	res, err := r.resolve(rc, tok)
	if err != nil {
		return nil, err
	}
	return r.cache.commit(key, res).Clone(), nil
}

// ResolveAll resolves every token in the snapshot. Per-token failures never
// stop the batch: the returned map holds every success and the error
// aggregates every failure.
func (r *Resolver) ResolveAll(rc *Context) (map[string]*Resolved, error) {
	out := make(map[string]*Resolved, rc.Snap.Len())
	var errs error
	for _, id := range rc.Snap.IDs() {
		res, err := r.Resolve(rc, id)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[id] = res
	}
	return out, errs
}

// resolve computes a token's resolution from scratch. The walk follows base
// references through the snapshot collecting the chain self-upward, then
// composition replays it root-downward.
func (r *Resolver) resolve(rc *Context, tok *Token) (*Resolved, error) {
	// Terminal modes and rootless tokens complete immediately.
	if tok.Mode.IsTerminal() || tok.Base == "" {
		props, err := r.resolveProps(rc, tok.ID, tok.Props)
		if err != nil {
			return nil, err
		}
		return &Resolved{
			ID:        tok.ID,
			Mode:      InheritModeComplete,
			Effective: props,
			Chain:     []string{tok.ID},
		}, nil
	}

	walk, root, err := r.walkChain(rc, tok)
	if err != nil {
		return nil, err
	}
	if root.kind == rootCycle {
		props, perr := r.resolveProps(rc, tok.ID, tok.Props)
		if perr != nil {
			return nil, perr
		}
		return &Resolved{
			ID:        tok.ID,
			Mode:      InheritModeComplete,
			Effective: props,
			Chain:     []string{tok.ID},
			Circular:  true,
		}, nil
	}

	return r.compose(rc, walk, root)
}

// rootKind records how an inheritance walk terminated.
type rootKind int

const (
	rootNone      rootKind = iota // deepest token has no base reference
	rootStyle                     // chain bottoms out on a registry base style
	rootMissing                   // base named neither a token nor a style
	rootCycle                     // walk re-entered a visited token
	rootTruncated                 // chain budget exhausted
)

type chainRoot struct {
	kind  rootKind
	style BaseStyle // set for rootStyle
}

// walkChain collects the inheritance chain self-upward: walk[0] is the
// requested token, walk[len-1] the deepest reachable ancestor token.
func (r *Resolver) walkChain(rc *Context, tok *Token) ([]*Token, chainRoot, error) {
	walk := []*Token{tok}
	visited := map[string]struct{}{tok.ID: {}}

	cur := tok
	for {
		base := cur.Base
		if base == "" {
			return walk, chainRoot{kind: rootNone}, nil
		}

		// A token naming itself as base extends the registry style of the
		// same name rather than forming a one-step cycle.
		if base != cur.ID {
			if next, ok := rc.Snap.Get(base); ok {
				if _, seen := visited[next.ID]; seen {
					if r.opts.Strict.CircularRef {
						return nil, chainRoot{}, fmt.Errorf("token %q: chain re-enters %q: %w", tok.ID, next.ID, ErrCircularReference)
					}
					r.log.Warn("Inheritance cycle, completing without ancestors",
						zap.String("token", tok.ID), zap.String("reentry", next.ID))
					return walk, chainRoot{kind: rootCycle}, nil
				}
				if len(walk) >= r.opts.MaxChainDepth {
					if r.opts.Strict.DepthExceeded {
						return nil, chainRoot{}, fmt.Errorf("token %q: chain exceeds depth %d: %w", tok.ID, r.opts.MaxChainDepth, ErrMaxDepthExceeded)
					}
					r.log.Warn("Inheritance chain too deep, truncating",
						zap.String("token", tok.ID), zap.Int("limit", r.opts.MaxChainDepth))
					return walk, chainRoot{kind: rootTruncated}, nil
				}
				visited[next.ID] = struct{}{}
				walk = append(walk, next)
				cur = next
				continue
			}
		}

		if st, ok := r.reg.Get(base); ok {
			return walk, chainRoot{kind: rootStyle, style: st}, nil
		}

		if r.opts.Strict.MissingBase {
			return nil, chainRoot{}, fmt.Errorf("token %q: base %q of %q not found: %w", tok.ID, base, cur.ID, ErrMissingBaseStyle)
		}
		r.log.Warn("Base not found, completing without it",
			zap.String("token", tok.ID), zap.String("base", base), zap.String("at", cur.ID))
		return walk, chainRoot{kind: rootMissing}, nil
	}
}

// compose replays a collected walk root-downward, overlaying each token's
// resolved properties onto the running effective map. The deepest token
// completes against the root (registry defaults or nothing); every token
// above it resolves to a delta against its ancestor's effective map.
func (r *Resolver) compose(rc *Context, walk []*Token, root chainRoot) (*Resolved, error) {
	var (
		effective = make(PropertyMap)
		chain     []string
	)
	if root.kind == rootStyle {
		effective = root.style.Defaults.Clone()
		chain = append(chain, root.style.ID)
	}

	var res *Resolved
	for i := len(walk) - 1; i >= 0; i-- {
		cur := walk[i]
		props, err := r.resolveProps(rc, cur.ID, cur.Props)
		if err != nil {
			return nil, err
		}

		hasAncestor := len(chain) > 0
		ancestorEff := effective
		effective = ApplyDelta(effective, props)
		chain = append(chain, cur.ID)

		res = &Resolved{
			ID:        cur.ID,
			Mode:      InheritModeComplete,
			Effective: effective,
			Chain:     append([]string(nil), chain...),
		}
		if hasAncestor {
			res.Mode = InheritModeDelta
			res.Base = cur.Base
			if i == len(walk)-1 && root.kind == rootStyle {
				// The deepest token diffs against the raw catalog defaults,
				// where the style's precomputed EMU map applies.
				res.Delta = DeltaFromBase(r.conv, root.style, effective)
			} else {
				res.Delta = ComputeDelta(r.conv, ancestorEff, effective)
			}
		}
	}

	if res.Mode == InheritModeDelta && len(res.Delta) == 0 {
		r.log.Warn("Empty delta, inheritance may be unnecessary", zap.String("token", res.ID))
	}
	return res, nil
}

// resolveProps runs the reference resolver over every pattern-shaped value
// in props, recursing into nested maps. Under a non-strict policy an
// unresolvable pattern stays verbatim with a warning; under a strict one it
// fails the token.
func (r *Resolver) resolveProps(rc *Context, tokID string, props PropertyMap) (PropertyMap, error) {
	out := make(PropertyMap, len(props))
	for k, v := range props {
		switch tv := v.(type) {
		case string:
			if !IsPattern(tv) {
				out[k] = tv
				continue
			}
			val, err := r.refs.Resolve(tv, rc)
			if err != nil {
				if r.opts.Strict.strictFor(err) {
					return nil, fmt.Errorf("token %q property %q: %w", tokID, k, err)
				}
				r.log.Warn("Unresolved reference kept verbatim",
					zap.String("token", tokID), zap.String("property", k), zap.Error(err))
				out[k] = tv
				continue
			}
			out[k] = val
		default:
			if m, ok := asPropertyMap(v); ok {
				sub, err := r.resolveProps(rc, tokID, m)
				if err != nil {
					return nil, err
				}
				out[k] = sub
				continue
			}
			out[k] = cloneValue(tv)
		}
	}
	return out, nil
}
