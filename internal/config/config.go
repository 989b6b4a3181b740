package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/favicons/internal/paths"
)

// Size is one rasterized output: pixel dimensions and the file name
// written under the asset directory.
type Size struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	File   string `json:"file"`
}

// DefaultSizes is the favicon set the frontend references.
var DefaultSizes = []Size{
	{16, 16, "favicon-16x16.png"},
	{32, 32, "favicon-32x32.png"},
	{48, 48, "favicon-48x48.png"},
	{64, 64, "favicon-64x64.png"},
	{96, 96, "favicon-96x96.png"},
	{128, 128, "favicon-128x128.png"},
	{180, 180, "apple-touch-icon.png"},
	{192, 192, "favicon-192x192.png"},
	{256, 256, "favicon-256x256.png"},
	{512, 512, "favicon-512x512.png"},
}

// DefaultConverters is the order in which external rasterizers are tried.
var DefaultConverters = []string{"rsvg-convert", "convert", "inkscape"}

// Config holds everything the generators need to know about their outputs.
type Config struct {
	AssetDir   string   `json:"asset_dir,omitempty"`
	Sizes      []Size   `json:"sizes,omitempty"`
	Converters []string `json:"converters,omitempty"`
}

// Default returns the built-in configuration. Slices are copies, so
// callers may modify them freely.
func Default() Config {
	return Config{
		AssetDir:   paths.AssetDir,
		Sizes:      append([]Size(nil), DefaultSizes...),
		Converters: append([]string(nil), DefaultConverters...),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load returns the built-in defaults when explicitPath is empty; no file
// is read in that case. Otherwise the file at explicitPath is parsed and
// validated.
func Load(explicitPath string) (Config, error) {
	if explicitPath == "" {
		return Default(), nil
	}
	return readConfig(explicitPath)
}

// Validate checks sizes and converter names for obvious mistakes.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("config: no sizes defined")
	}
	seen := make(map[string]bool, len(c.Sizes))
	for i, s := range c.Sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("config: size %d (%s): dimensions must be positive, got %dx%d", i, s.File, s.Width, s.Height)
		}
		if s.File == "" || s.File != filepath.Base(s.File) || strings.ContainsAny(s.File, `/\`) {
			return fmt.Errorf("config: size %d: file %q must be a plain file name", i, s.File)
		}
		if seen[s.File] {
			return fmt.Errorf("config: duplicate output file %q", s.File)
		}
		seen[s.File] = true
	}
	if len(c.Converters) == 0 {
		return fmt.Errorf("config: no converters defined")
	}
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
