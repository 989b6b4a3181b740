// Package manifest keeps an optional record of every favicon asset the
// tools have produced: which file, at what size, and where it came from.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Asset sources.
const (
	SourceTool        = "tool"        // rendered by an external converter
	SourcePlaceholder = "placeholder" // fallback 1×1 PNG
	SourceAssembled   = "assembled"   // hand-built favicon.ico
)

// Asset is one file written during a run.
type Asset struct {
	File   string
	Width  int
	Height int
	Source string
	Tool   string // converter name when Source == SourceTool
	Bytes  int64
	SHA256 string
}

// Run is one invocation of a generator.
type Run struct {
	ID       int64
	Started  time.Time
	Command  string
	AssetDir string
	Failed   int
	Assets   []Asset
}

// Store records runs and lists them back.
type Store interface {
	Record(run Run) (int64, error)
	Runs(limit int) ([]Run, error) // newest first, 0 = all
	Path() string
	Close() error
}

// Describe fills the size and digest of the file at path into a.
func Describe(path string, a Asset) (Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("manifest: %w", err)
	}
	sum := sha256.Sum256(data)
	a.Bytes = int64(len(data))
	a.SHA256 = hex.EncodeToString(sum[:])
	return a, nil
}
