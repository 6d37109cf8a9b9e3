package tokens

import (
	"fmt"

	"go.uber.org/zap"
)

// Issue is one finding from ValidateHierarchy.
type Issue struct {
	Token  string
	Kind   IssueKind
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("token %q: %s: %s", i.Token, i.Kind, i.Detail)
}

// ValidateHierarchy checks every token in the snapshot and enumerates
// missing bases, circular chains, over-deep chains and empty deltas. It
// never raises and never stops early; resolution performed for delta
// inspection runs non-strict and does not touch the resolver's caches.
// Issues come back in natural token order.
func (r *Resolver) ValidateHierarchy(rc *Context) []Issue {
	lax := &Resolver{
		reg:   r.reg,
		conv:  r.conv,
		opts:  Options{MaxChainDepth: r.opts.MaxChainDepth, MaxRefDepth: r.opts.MaxRefDepth}.withDefaults(),
		log:   zap.NewNop(),
		cache: newResultCache(),
		refs:  NewRefResolver(r.opts.MaxRefDepth, zap.NewNop()),
	}

	var issues []Issue
	for _, id := range rc.Snap.IDs() {
		tok, _ := rc.Snap.Get(id)
		if iss, structural := checkChain(rc, lax, tok); structural {
			issues = append(issues, iss...)
			continue
		}
		res, err := lax.Resolve(rc, id)
		if err != nil {
			// Malformed patterns stay strict even for the lax policy.
			issues = append(issues, Issue{Token: id, Kind: IssueKindMalformedPattern, Detail: err.Error()})
			continue
		}
		if res.Mode == InheritModeDelta && len(res.Delta) == 0 {
			issues = append(issues, Issue{
				Token:  id,
				Kind:   IssueKindEmptyDelta,
				Detail: "delta against ancestor is empty, inheritance may be unnecessary",
			})
		}
	}
	return issues
}

// checkChain walks one token's chain without resolving properties,
// reporting the first structural problem found. structural is true when
// the walk could not finish cleanly.
func checkChain(rc *Context, r *Resolver, tok *Token) ([]Issue, bool) {
	if tok.Mode.IsTerminal() || tok.Base == "" {
		return nil, false
	}

	visited := map[string]struct{}{tok.ID: {}}
	cur := tok
	hops := 1
	for {
		base := cur.Base
		if base == "" {
			return nil, false
		}
		if base != cur.ID {
			if next, ok := rc.Snap.Get(base); ok {
				if _, seen := visited[next.ID]; seen {
					return []Issue{{
						Token:  tok.ID,
						Kind:   IssueKindCircularChain,
						Detail: fmt.Sprintf("chain re-enters %q", next.ID),
					}}, true
				}
				if hops >= r.opts.MaxChainDepth {
					return []Issue{{
						Token:  tok.ID,
						Kind:   IssueKindChainTooDeep,
						Detail: fmt.Sprintf("chain exceeds depth limit %d", r.opts.MaxChainDepth),
					}}, true
				}
				visited[next.ID] = struct{}{}
				cur = next
				hops++
				continue
			}
		}
		if r.reg.Has(base) {
			return nil, false
		}
		return []Issue{{
			Token:  tok.ID,
			Kind:   IssueKindMissingBase,
			Detail: fmt.Sprintf("base %q of %q not found", base, cur.ID),
		}}, true
	}
}
