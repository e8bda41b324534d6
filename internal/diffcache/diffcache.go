// Package diffcache memoizes diff results behind a cost-aware LRU, for
// callers that repeatedly diff the same or overlapping pairs (e.g. a
// diff-as-a-service handler under load).
package diffcache

import (
	"encoding/hex"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/zeebo/blake3"
)

// Cache memoizes values of type V keyed by an opaque digest.
type Cache[V any] struct {
	*ristretto.Cache[string, V]
}

// New returns a Cache sized for numCounters admission-tracked keys and
// maxCostMiB mebibytes of cost budget, mirroring the sizing knobs the
// teacher's object cache exposes.
func New[V any](numCounters, maxCostMiB, bufferItems int64) (*Cache[V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: numCounters,
		MaxCost:     maxCostMiB << 20,
		BufferItems: bufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("diffcache: %w", err)
	}
	return &Cache[V]{Cache: c}, nil
}

// Key hashes an ordered set of strings into a single lookup key. Callers
// combine text1, text2, and any flags that affect the result (e.g.
// checklines) so distinct calls never collide.
func Key(parts ...string) string {
	h := blake3.New()
	for _, p := range parts {
		_, _ = h.Write([]byte{0}) // separator, avoids "ab","c" == "a","bc"
		_, _ = h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
