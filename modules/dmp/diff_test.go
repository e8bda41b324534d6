package dmp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffRoundTrip(t *testing.T) {
	cases := []struct{ text1, text2 string }{
		{"", ""},
		{"abc", "abc"},
		{"", "abc"},
		{"abc", ""},
		{"The quick brown fox", "The slow brown fox jumps"},
		{"jumps over", "jump and walks"},
		{"1234567890", "a345678z"},
	}
	for _, c := range cases {
		diffs, err := DiffStrings(c.text1, c.text2)
		require.NoError(t, err)
		assert.Equal(t, c.text1, diffs.Text1(), "Text1 round-trip for %q -> %q", c.text1, c.text2)
		assert.Equal(t, c.text2, diffs.Text2(), "Text2 round-trip for %q -> %q", c.text1, c.text2)
	}
}

func TestDiffWellFormed(t *testing.T) {
	diffs, err := DiffStrings("The quick brown fox jumps over the lazy dog.", "The slow blue fox leaps over the sleepy dog.")
	require.NoError(t, err)
	for i, seg := range diffs {
		assert.NotEmpty(t, seg.Text, "segment %d must not be empty", i)
		if i > 0 {
			assert.NotEqual(t, diffs[i-1].Op, seg.Op, "adjacent segments %d,%d share Op", i-1, i)
		}
	}
}

func TestDiffEqualTextsShortCircuit(t *testing.T) {
	diffs, err := DiffStrings("same text", "same text")
	require.NoError(t, err)
	assert.Equal(t, Diffs{{Equal, "same text"}}, diffs)

	empty, err := DiffStrings("", "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDiffCommonPrefixSuffixPeeling(t *testing.T) {
	diffs, err := DiffStrings("prefixMIDDLEsuffix", "prefixOTHERsuffix")
	require.NoError(t, err)
	assert.Equal(t, "prefixMIDDLEsuffix", diffs.Text1())
	assert.Equal(t, "prefixOTHERsuffix", diffs.Text2())
	assert.Equal(t, Equal, diffs[0].Op)
	assert.Equal(t, Equal, diffs[len(diffs)-1].Op)
}

func TestDiffDeadlineDoesNotError(t *testing.T) {
	e := New(Config{DiffTimeout: time.Nanosecond})
	a := strings.Repeat("abcdefgh", 200)
	b := strings.Repeat("hgfedcba", 200)
	diffs, err := e.Diff(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, a, diffs.Text1())
	assert.Equal(t, b, diffs.Text2())
}

func TestCleanupAll(t *testing.T) {
	diffs := Diffs{{Delete, "a"}, {Equal, "b"}, {Delete, "c"}}
	got := CleanupAll(diffs)
	assert.Equal(t, Diffs{{Delete, "abc"}, {Insert, "b"}}, got)
}
