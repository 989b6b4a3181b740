package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/favicons/internal/paths"
)

func TestDefaultSizes(t *testing.T) {
	cfg := Default()
	if len(cfg.Sizes) != 10 {
		t.Fatalf("len(Sizes) = %d, want 10", len(cfg.Sizes))
	}
	if cfg.Sizes[0] != (Size{16, 16, "favicon-16x16.png"}) {
		t.Errorf("first size = %+v", cfg.Sizes[0])
	}
	if cfg.Sizes[6] != (Size{180, 180, "apple-touch-icon.png"}) {
		t.Errorf("apple touch icon = %+v", cfg.Sizes[6])
	}
	if cfg.Sizes[9] != (Size{512, 512, "favicon-512x512.png"}) {
		t.Errorf("last size = %+v", cfg.Sizes[9])
	}
	if cfg.AssetDir != paths.AssetDir {
		t.Errorf("AssetDir = %q, want %q", cfg.AssetDir, paths.AssetDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := Default()
	a.Sizes[0].File = "changed.png"
	a.Converters[0] = "changed"
	b := Default()
	if b.Sizes[0].File != "favicon-16x16.png" || b.Converters[0] != "rsvg-convert" {
		t.Error("Default shares slices between calls")
	}
}

func TestLoadNoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Sizes) != len(DefaultSizes) || len(cfg.Converters) != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestUnmarshalPartialOverride(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"asset_dir": "public"}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.AssetDir != "public" {
		t.Errorf("AssetDir = %q, want public", cfg.AssetDir)
	}
	if len(cfg.Sizes) != 10 {
		t.Errorf("len(Sizes) = %d, want defaults", len(cfg.Sizes))
	}
	if strings.Join(cfg.Converters, ",") != "rsvg-convert,convert,inkscape" {
		t.Errorf("Converters = %v", cfg.Converters)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favicons.json")
	data := `{
		"sizes": [{"width": 24, "height": 24, "file": "icon-24.png"}],
		"converters": ["inkscape"]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Sizes) != 1 || cfg.Sizes[0].File != "icon-24.png" {
		t.Errorf("Sizes = %+v", cfg.Sizes)
	}
	if len(cfg.Converters) != 1 || cfg.Converters[0] != "inkscape" {
		t.Errorf("Converters = %v", cfg.Converters)
	}
	if cfg.AssetDir != paths.AssetDir {
		t.Errorf("AssetDir = %q, want default", cfg.AssetDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("expected reading error, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"sizes": [`), 0644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no sizes", Config{Converters: []string{"convert"}}, "no sizes"},
		{"zero width", Config{Sizes: []Size{{0, 16, "a.png"}}, Converters: []string{"convert"}}, "positive"},
		{"path in file", Config{Sizes: []Size{{16, 16, "../a.png"}}, Converters: []string{"convert"}}, "plain file name"},
		{"empty file", Config{Sizes: []Size{{16, 16, ""}}, Converters: []string{"convert"}}, "plain file name"},
		{"duplicate", Config{Sizes: []Size{{16, 16, "a.png"}, {32, 32, "a.png"}}, Converters: []string{"convert"}}, "duplicate"},
		{"no converters", Config{Sizes: []Size{{16, 16, "a.png"}}}, "no converters"},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: got %v, want error containing %q", tt.name, err, tt.want)
		}
	}
}
