package dmp

import (
	"context"

	"github.com/glyphdiff/dmp/internal/diffcache"
)

// CachedEngine wraps an Engine with a memoizing cache in front of Diff.
// Safe for concurrent use: the underlying engine is reentrant (spec.md §5)
// and the cache is its own synchronized structure.
type CachedEngine struct {
	*Engine
	cache *diffcache.Cache[Diffs]
}

// NewCachedEngine returns a CachedEngine sized for approximately
// numCounters distinct (text1, text2) pairs and maxCostMiB mebibytes of
// cached diff scripts.
func NewCachedEngine(cfg Config, numCounters, maxCostMiB int64) (*CachedEngine, error) {
	c, err := diffcache.New[Diffs](numCounters, maxCostMiB, 64)
	if err != nil {
		return nil, err
	}
	return &CachedEngine{Engine: New(cfg), cache: c}, nil
}

// Diff returns a cached copy of e.Engine.Diff's result when this exact
// (text1, text2) pair has been diffed before, computing and caching it
// otherwise. Both paths return a fresh Clone, so a caller may mutate the
// returned script without affecting the cached entry.
func (e *CachedEngine) Diff(ctx context.Context, text1, text2 string) (Diffs, error) {
	key := diffcache.Key(text1, text2)
	if cached, ok := e.cache.Get(key); ok {
		return cached.Clone(), nil
	}
	diffs, err := e.Engine.Diff(ctx, text1, text2)
	if err != nil {
		return nil, err
	}
	var cost int64
	for _, seg := range diffs {
		cost += int64(len(seg.Text))
	}
	e.cache.Set(key, diffs, cost)
	return diffs.Clone(), nil
}
