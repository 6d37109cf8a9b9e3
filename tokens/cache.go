package tokens

import (
	"fmt"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// CacheStats is a point-in-time snapshot of both resolution caches.
type CacheStats struct {
	Entries       int   // committed resolution results
	Hits          int64 // result cache hits
	Misses        int64 // result cache misses
	RefEntries    int   // cached reference patterns
	RefHits       int64
	RefMisses     int64
	MaxChainDepth int // deepest inheritance chain committed so far
}

// resultCache stores committed resolutions. Keys bind a result to the exact
// inputs that produced it: token id, base, mode, the snapshot content hash
// and the context's variable values. Entries are immutable; a racing
// recompute commits at most one result per key and every later reader sees
// that one.
type resultCache struct {
	entries  *xsync.Map[string, *Resolved]
	hits     atomic.Int64
	misses   atomic.Int64
	maxDepth atomic.Int64
}

func newResultCache() *resultCache {
	return &resultCache{entries: xsync.NewMap[string, *Resolved]()}
}

func cacheKey(id, base string, mode InheritMode, snapHash, varsHash uint64) string {
	return fmt.Sprintf("%s|%s|%s|%016x|%016x", id, base, mode, snapHash, varsHash)
}

// lookup returns the committed result for key, counting the outcome.
func (c *resultCache) lookup(key string) (*Resolved, bool) {
	r, ok := c.entries.Load(key)
	if ok {
		c.hits.Add(1)
		return r, true
	}
	c.misses.Add(1)
	return nil, false
}

// commit publishes a result. The first writer wins; a concurrent loser gets
// the winner back and discards its own computation.
func (c *resultCache) commit(key string, r *Resolved) *Resolved {
	actual, loaded := c.entries.LoadOrStore(key, r)
	if !loaded {
		c.observeDepth(r.Depth())
	}
	return actual
}

func (c *resultCache) size() int { return c.entries.Size() }

// observeDepth raises the high-water chain depth, never lowering it.
func (c *resultCache) observeDepth(d int) {
	for {
		cur := c.maxDepth.Load()
		if int64(d) <= cur || c.maxDepth.CompareAndSwap(cur, int64(d)) {
			return
		}
	}
}
