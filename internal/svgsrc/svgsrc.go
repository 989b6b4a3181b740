// Package svgsrc holds the vector artwork the PNG favicons are rendered
// from and manages the short-lived SVG file handed to converters.
package svgsrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Mavwarf/favicons/internal/paths"
)

// Favicon is the 32×32 source artwork: a blue disc, a white document with
// three text bars, two green accent dots and an "AI" label.
const Favicon = `
    <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32" width="32" height="32">
      <circle cx="16" cy="16" r="15" fill="#007bff"/>
      <rect x="8" y="6" width="10" height="13" rx="1" fill="white" opacity="0.9"/>
      <rect x="9" y="8" width="8" height="1" fill="#007bff" opacity="0.7"/>
      <rect x="9" y="10" width="6" height="0.8" fill="#007bff" opacity="0.5"/>
      <rect x="9" y="12" width="7" height="0.8" fill="#007bff" opacity="0.5"/>
      <circle cx="22" cy="10" r="1.5" fill="#28a745" opacity="0.8"/>
      <circle cx="24" cy="14" r="1" fill="#28a745" opacity="0.6"/>
      <text x="16" y="26" font-family="Arial" font-size="4" font-weight="bold" text-anchor="middle" fill="white">AI</text>
    </svg>
    `

// Temp is the SVG file written for one generation run.
type Temp struct {
	Path string
}

// Acquire writes Favicon to dir/temp_favicon.svg, replacing any file of
// that name. Callers must defer Release.
func Acquire(dir string) (*Temp, error) {
	p := filepath.Join(dir, paths.TempSVGFileName)
	if err := os.WriteFile(p, []byte(Favicon), paths.FilePerm); err != nil {
		return nil, fmt.Errorf("svg: write %s: %w", p, err)
	}
	return &Temp{Path: p}, nil
}

// Release deletes the temporary SVG. It is safe to call more than once
// and on a nil *Temp.
func (t *Temp) Release() error {
	if t == nil {
		return nil
	}
	if err := os.Remove(t.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("svg: remove %s: %w", t.Path, err)
	}
	return nil
}
