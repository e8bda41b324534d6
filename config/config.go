// Package config loads the engine's tuning knobs from a TOML file.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/glyphdiff/dmp/modules/dmp"
)

// File is the on-disk shape of the tuning fields spec.md §3 names.
type File struct {
	DiffTimeoutSeconds float64 `toml:"diff_timeout"`
	DiffEditCost       int     `toml:"diff_edit_cost"`
	MatchThreshold     float64 `toml:"match_threshold"`
	MatchDistance      int     `toml:"match_distance"`
	MatchMaxBits       int     `toml:"match_max_bits"`
}

// Load reads path as TOML and returns a dmp.Config with any field the file
// leaves unset, or sets to zero, filled from the package defaults.
func Load(path string) (dmp.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return dmp.Config{}, err
	}
	defer f.Close()

	var raw File
	if _, err := toml.NewDecoder(f).Decode(&raw); err != nil {
		return dmp.Config{}, err
	}

	cfg := dmp.Config{
		DiffEditCost:   raw.DiffEditCost,
		MatchThreshold: raw.MatchThreshold,
		MatchDistance:  raw.MatchDistance,
		MatchMaxBits:   raw.MatchMaxBits,
	}
	if raw.DiffTimeoutSeconds != 0 {
		cfg.DiffTimeout = time.Duration(raw.DiffTimeoutSeconds * float64(time.Second))
	}
	return cfg.WithDefaults(), nil
}
