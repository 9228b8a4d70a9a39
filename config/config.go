// SPDX-License-Identifier: MIT

// Package config is the command line settings record, unmarshalled from
// Viper (flags, SEQMATCH_* environment variables and an optional YAML file).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/seqmatch/align"
	"github.com/katalvlaran/seqmatch/pattern"
)

// EnvPrefix namespaces environment overrides, e.g. SEQMATCH_ALIGN_GAP=-2.
const EnvPrefix = "SEQMATCH"

// ScoringConfig mirrors align.Scoring plus a normalization name.
type ScoringConfig struct {
	Match    int `mapstructure:"match"`
	Mismatch int `mapstructure:"mismatch"`
	Gap      int `mapstructure:"gap"`

	// one of "match-count" or "score-ratio"
	Normalization string `mapstructure:"normalization"`
}

// WindowConfig is the sliding-window scan: its own scoring and a size.
type WindowConfig struct {
	ScoringConfig `mapstructure:",squash"`

	// the number of bases per window
	Size int `mapstructure:"size"`
}

// SitesConfig caps the diagnostic site listing.
type SitesConfig struct {
	Max int `mapstructure:"max"`
}

// SearchConfig caps the mismatch fallback of the start-codon search.
type SearchConfig struct {
	MaxMismatches int `mapstructure:"max-mismatches"`
}

// Config is the root-level settings struct.
type Config struct {
	Align  ScoringConfig `mapstructure:"align"`
	Window WindowConfig  `mapstructure:"window"`
	Sites  SitesConfig   `mapstructure:"sites"`
	Search SearchConfig  `mapstructure:"search"`
}

// SetDefaults installs the library presets on v.
func SetDefaults(v *viper.Viper) {
	def := align.DefaultOptions()
	v.SetDefault("align.match", def.Scoring.Match)
	v.SetDefault("align.mismatch", def.Scoring.Mismatch)
	v.SetDefault("align.gap", def.Scoring.Gap)
	v.SetDefault("align.normalization", def.Normalization.String())

	win := align.WindowOptions()
	v.SetDefault("window.match", win.Scoring.Match)
	v.SetDefault("window.mismatch", win.Scoring.Mismatch)
	v.SetDefault("window.gap", win.Scoring.Gap)
	v.SetDefault("window.normalization", win.Normalization.String())
	v.SetDefault("window.size", align.DefaultWindowSize)

	v.SetDefault("sites.max", align.DefaultMaxSites)
	v.SetDefault("search.max-mismatches", pattern.DefaultMaxMismatches)
}

// NewViper returns a Viper with defaults and environment binding in place.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// New decodes v into a Config and validates every section.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks that each section converts into valid library options.
func (c Config) Validate() error {
	if _, err := c.AlignOptions(); err != nil {
		return fmt.Errorf("config: align: %w", err)
	}
	if _, err := c.WindowOptions(); err != nil {
		return fmt.Errorf("config: window: %w", err)
	}
	if c.Window.Size <= 0 {
		return fmt.Errorf("config: window.size %d must be > 0: %w", c.Window.Size, align.ErrInvalidParameters)
	}
	if c.Sites.Max < 0 {
		return fmt.Errorf("config: sites.max %d must be >= 0: %w", c.Sites.Max, align.ErrInvalidParameters)
	}
	if c.Search.MaxMismatches < 0 {
		return fmt.Errorf("config: search.max-mismatches %d must be >= 0: %w", c.Search.MaxMismatches, pattern.ErrInvalidParameters)
	}

	return nil
}

// AlignOptions converts the align section.
func (c Config) AlignOptions() (align.Options, error) {
	return c.Align.options()
}

// WindowOptions converts the window section.
func (c Config) WindowOptions() (align.Options, error) {
	return c.Window.options()
}

func (s ScoringConfig) options() (align.Options, error) {
	norm, err := align.ParseNormalization(s.Normalization)
	if err != nil {
		return align.Options{}, err
	}
	o := align.Options{
		Scoring:       align.Scoring{Match: s.Match, Mismatch: s.Mismatch, Gap: s.Gap},
		Normalization: norm,
	}
	if err = o.Scoring.Validate(); err != nil {
		return align.Options{}, err
	}

	return o, nil
}
