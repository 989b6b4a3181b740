// Package generate renders the PNG favicon set from the built-in SVG,
// falling back to placeholder files when no converter is installed.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Mavwarf/favicons/internal/config"
	"github.com/Mavwarf/favicons/internal/manifest"
	"github.com/Mavwarf/favicons/internal/paths"
	"github.com/Mavwarf/favicons/internal/placeholder"
	"github.com/Mavwarf/favicons/internal/status"
	"github.com/Mavwarf/favicons/internal/svgsrc"
)

// ErrNoConverters marks a run in which no size could be rendered and the
// placeholder fallback was used. Run never returns it; Result.Err does.
var ErrNoConverters = errors.New("generate: no size rendered, placeholders used")

// Rasterizer renders an SVG file to a PNG of the given size and reports
// which tool did it.
type Rasterizer interface {
	Rasterize(ctx context.Context, width, height int, in, out string) (string, error)
}

// Rendered is a size produced by a converter.
type Rendered struct {
	Size config.Size
	Tool string
}

// Result summarizes one run.
type Result struct {
	Dir          string
	Rendered     []Rendered
	Failed       []config.Size
	Fallback     bool
	Placeholders []string
}

// Err returns ErrNoConverters when the run fell back to placeholders.
func (r Result) Err() error {
	if r.Fallback {
		return ErrNoConverters
	}
	return nil
}

// Generator writes the favicon PNG set into Dir.
type Generator struct {
	Dir        string
	Sizes      []config.Size
	Rasterizer Rasterizer
	Status     *status.Printer
	Log        zerolog.Logger
}

// Run executes the whole pipeline: create Dir, write the temporary SVG,
// render every size, fall back to placeholders if nothing rendered, then
// delete the SVG and print a summary. Converter problems are reported and
// skipped; only filesystem errors and context cancellation are returned.
// The temporary SVG is removed on every return path, including panics.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	dir := paths.OrDefault(g.Dir)
	res := Result{Dir: dir}

	g.Status.Line(status.Start, "Generating favicons for AI Document Assistant...")

	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return res, fmt.Errorf("generate: %w", err)
	}

	svg, err := svgsrc.Acquire(dir)
	if err != nil {
		return res, err
	}
	defer func() {
		if err := svg.Release(); err != nil {
			g.Log.Warn().Err(err).Msg("temporary svg not removed")
		}
	}()

	for _, s := range g.Sizes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out := filepath.Join(dir, s.File)
		tool, err := g.Rasterizer.Rasterize(ctx, s.Width, s.Height, svg.Path, out)
		if err != nil {
			g.Status.Line(status.Failure, "Could not generate %s - no suitable converter found", s.File)
			g.Log.Debug().Err(err).Str("file", s.File).Msg("all converters exhausted")
			res.Failed = append(res.Failed, s)
			continue
		}
		g.Status.Line(status.Success, "Generated %s (%dx%d)", s.File, s.Width, s.Height)
		res.Rendered = append(res.Rendered, Rendered{Size: s, Tool: tool})
	}

	if len(res.Rendered) == 0 {
		res.Fallback = true
		if err := g.fallback(dir, &res); err != nil {
			return res, err
		}
	}

	if err := svg.Release(); err != nil {
		g.Log.Warn().Err(err).Msg("temporary svg not removed")
	}

	g.Status.Blank()
	g.Status.Line(status.Success, "Favicon generation complete!")
	g.Status.Line(status.Location, "Files created in: %s", paths.Abs(dir))
	return res, nil
}

func (g *Generator) fallback(dir string, res *Result) error {
	g.Status.Line(status.Warning, "No SVG converter found. Creating fallback files...")
	g.Status.Line(status.Note, "Creating fallback favicon files...")

	names := make([]string, len(g.Sizes))
	for i, s := range g.Sizes {
		names[i] = s.File
	}
	created, err := placeholder.WriteMissing(dir, names)
	for _, n := range created {
		g.Status.Line(status.Note, "Created placeholder %s", n)
	}
	res.Placeholders = created
	if err != nil {
		return err
	}

	g.Status.Blank()
	g.Status.Line(status.Guide, "To create proper favicons:")
	g.Status.Line(status.Plain, "1. Visit https://favicon.io/favicon-converter/")
	g.Status.Line(status.Plain, "2. Upload the favicon.svg file")
	g.Status.Line(status.Plain, "3. Download the generated files")
	g.Status.Line(status.Plain, "4. Replace the placeholder files in %s/", filepath.ToSlash(dir))
	return nil
}

// Record converts a finished run into a manifest entry, reading each
// written file for its size and digest.
func Record(res Result) (manifest.Run, error) {
	run := manifest.Run{Command: "favicons", AssetDir: res.Dir, Failed: len(res.Failed)}
	for _, r := range res.Rendered {
		a, err := manifest.Describe(filepath.Join(res.Dir, r.Size.File), manifest.Asset{
			File: r.Size.File, Width: r.Size.Width, Height: r.Size.Height,
			Source: manifest.SourceTool, Tool: r.Tool,
		})
		if err != nil {
			// A converter may exit 0 without writing anything.
			continue
		}
		run.Assets = append(run.Assets, a)
	}
	for _, name := range res.Placeholders {
		a, err := manifest.Describe(filepath.Join(res.Dir, name), manifest.Asset{
			File: name, Width: 1, Height: 1, Source: manifest.SourcePlaceholder,
		})
		if err != nil {
			return run, err
		}
		run.Assets = append(run.Assets, a)
	}
	return run, nil
}
