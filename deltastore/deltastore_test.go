package deltastore

import (
	"testing"

	"github.com/glyphdiff/dmp/modules/dmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	text1 := "The quick brown fox jumps over the lazy dog."
	text2 := "The quick red fox leaps over the sleepy dog."
	diffs, err := dmp.DiffStrings(text1, text2)
	require.NoError(t, err)

	blob, err := Encode(diffs)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	got, err := Decode(text1, blob)
	require.NoError(t, err)
	assert.Equal(t, text2, got.Text2())
}

func TestDecodeRejectsCorruption(t *testing.T) {
	diffs, err := dmp.DiffStrings("abc", "abd")
	require.NoError(t, err)
	blob, err := Encode(diffs)
	require.NoError(t, err)

	corrupt := append([]byte(nil), blob...)
	corrupt[0] ^= 0xFF
	_, err = Decode("abc", corrupt)
	assert.Error(t, err)
}

func TestDecodeRejectsShortBlob(t *testing.T) {
	_, err := Decode("abc", []byte("short"))
	assert.Error(t, err)
}
