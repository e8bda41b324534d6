package dmp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedEngineHitReturnsIndependentCopy(t *testing.T) {
	ce, err := NewCachedEngine(DefaultConfig(), 1000, 1)
	require.NoError(t, err)

	first, err := ce.Diff(context.Background(), "hello world", "hello there")
	require.NoError(t, err)
	ce.cache.Wait()

	second, err := ce.Diff(context.Background(), "hello world", "hello there")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Mutating one copy must not affect the cached entry or the other copy.
	if len(second) > 0 {
		second[0].Text = "MUTATED"
	}
	third, err := ce.Diff(context.Background(), "hello world", "hello there")
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestCachedEngineDistinctPairsDoNotCollide(t *testing.T) {
	ce, err := NewCachedEngine(DefaultConfig(), 1000, 1)
	require.NoError(t, err)

	a, err := ce.Diff(context.Background(), "abc", "abd")
	require.NoError(t, err)
	b, err := ce.Diff(context.Background(), "ab", "cabd")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
