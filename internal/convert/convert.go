// Package convert rasterizes an SVG file with whichever external command
// line converter is installed, trying each candidate in a fixed order.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sys/execabs"
)

var (
	// ErrToolUnavailable means the converter binary is not on PATH.
	ErrToolUnavailable = errors.New("converter not installed")
	// ErrAllToolsExhausted means every candidate was missing or failed.
	ErrAllToolsExhausted = errors.New("no converter succeeded")
)

// ToolError reports a converter that ran but exited unsuccessfully.
type ToolError struct {
	Tool   string
	Err    error
	Output []byte
}

func (e *ToolError) Error() string {
	if out := bytes.TrimSpace(e.Output); len(out) > 0 {
		return fmt.Sprintf("convert: %s: %v: %s", e.Tool, e.Err, out)
	}
	return fmt.Sprintf("convert: %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Converter describes one external rasterizer: the binary to run and how
// to lay out width, height, input and output on its command line.
type Converter struct {
	Name string
	Args func(width, height int, in, out string) []string
}

var builtin = map[string]Converter{
	"rsvg-convert": {
		Name: "rsvg-convert",
		Args: func(w, h int, in, out string) []string {
			return []string{"-w", strconv.Itoa(w), "-h", strconv.Itoa(h), in, "-o", out}
		},
	},
	"convert": {
		Name: "convert",
		Args: func(w, h int, in, out string) []string {
			return []string{"-background", "transparent", "-size", fmt.Sprintf("%dx%d", w, h), in, out}
		},
	},
	"inkscape": {
		Name: "inkscape",
		Args: func(w, h int, in, out string) []string {
			return []string{
				"--export-png=" + out,
				"--export-width=" + strconv.Itoa(w),
				"--export-height=" + strconv.Itoa(h),
				in,
			}
		},
	},
}

// Known returns the names of the built-in converters, sorted.
func Known() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves converter names to descriptors, preserving order.
func Lookup(names []string) ([]Converter, error) {
	out := make([]Converter, 0, len(names))
	for _, n := range names {
		c, ok := builtin[n]
		if !ok {
			return nil, fmt.Errorf("convert: unknown converter %q (known: %v)", n, Known())
		}
		out = append(out, c)
	}
	return out, nil
}

// Run invokes the converter once. A binary missing from PATH yields an
// error wrapping ErrToolUnavailable; a non-zero exit yields *ToolError.
// There is no timeout: the call returns when the tool does or ctx ends.
func (c Converter) Run(ctx context.Context, width, height int, in, out string) error {
	bin, err := execabs.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("convert: %s: %w", c.Name, ErrToolUnavailable)
	}
	cmd := execabs.CommandContext(ctx, bin, c.Args(width, height, in, out)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return &ToolError{Tool: c.Name, Err: err, Output: output}
	}
	return nil
}

// Rasterizer tries its converters in order until one succeeds.
type Rasterizer struct {
	Converters []Converter
	Log        zerolog.Logger
}

// Rasterize renders in to out at width×height. It returns the name of the
// converter that succeeded. When none does, the error wraps
// ErrAllToolsExhausted together with every individual attempt's error.
func (r *Rasterizer) Rasterize(ctx context.Context, width, height int, in, out string) (string, error) {
	errs := []error{ErrAllToolsExhausted}
	for _, c := range r.Converters {
		err := c.Run(ctx, width, height, in, out)
		if err == nil {
			r.Log.Debug().Str("tool", c.Name).Int("width", width).Int("height", height).Str("out", out).Msg("rasterized")
			return c.Name, nil
		}
		if errors.Is(err, ErrToolUnavailable) {
			r.Log.Debug().Str("tool", c.Name).Msg("converter not installed")
		} else {
			r.Log.Debug().Err(err).Str("tool", c.Name).Msg("converter failed")
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
	}
	return "", errors.Join(errs...)
}
