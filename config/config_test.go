package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glyphdiff/dmp/modules/dmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dmp.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeTOML(t, `diff_edit_cost = 6`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.DiffEditCost)
	assert.Equal(t, dmp.DefaultDiffTimeout, cfg.DiffTimeout)
	assert.Equal(t, dmp.DefaultMatchThreshold, cfg.MatchThreshold)
	assert.Equal(t, dmp.DefaultMatchDistance, cfg.MatchDistance)
	assert.Equal(t, dmp.DefaultMatchMaxBits, cfg.MatchMaxBits)
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeTOML(t, `
diff_timeout = 2.5
diff_edit_cost = 10
match_threshold = 0.3
match_distance = 500
match_max_bits = 16
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(2.5*float64(time.Second)), cfg.DiffTimeout)
	assert.Equal(t, 10, cfg.DiffEditCost)
	assert.Equal(t, 0.3, cfg.MatchThreshold)
	assert.Equal(t, 500, cfg.MatchDistance)
	assert.Equal(t, 16, cfg.MatchMaxBits)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeTOML(t, `diff_edit_cost = "not a number"`)
	_, err := Load(path)
	assert.Error(t, err)
}
