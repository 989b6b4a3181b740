// favicons renders the PNG favicon set for the frontend from the built-in
// SVG using rsvg-convert, ImageMagick or Inkscape, whichever is installed.
// Without any of them it writes 1×1 placeholder PNGs instead.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/favicons/internal/cli"
	"github.com/Mavwarf/favicons/internal/convert"
	"github.com/Mavwarf/favicons/internal/generate"
	"github.com/Mavwarf/favicons/internal/status"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, rest, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if len(rest) > 0 {
		switch rest[0] {
		case "help", "-h", "--help":
			printUsage(stdout)
			return 0
		case "version", "-V", "--version":
			fmt.Fprintf(stdout, "favicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
			return 0
		case "history":
			return history(opts, rest[1:], stdout, stderr)
		default:
			fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
			fmt.Fprintf(stderr, "Run 'favicons help' for usage.\n")
			return 1
		}
	}

	log := cli.NewLogger(stderr, opts.Verbose)

	cfg, err := opts.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	converters, err := convert.Lookup(cfg.Converters)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	g := &generate.Generator{
		Dir:        cfg.AssetDir,
		Sizes:      cfg.Sizes,
		Rasterizer: &convert.Rasterizer{Converters: converters, Log: log},
		Status:     status.New(stdout),
		Log:        log,
	}
	res, err := g.Run(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := res.Err(); err != nil {
		log.Debug().Err(err).Msg("fallback used")
	}

	recordRun(opts, res, log)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "favicons %s - Render the PNG favicon set for the frontend\n", version)
	fmt.Fprintln(w, `
Usage:
  favicons [options]             Render all sizes into the asset directory
  favicons [options] history [n] Show the last n recorded runs (needs --manifest)

Options:
  --dir, -d <path>       Asset directory (default: frontend/src)
  --config, -c <path>    JSON config (asset_dir, sizes, converters)
  --manifest, -m <path>  Record written files in a SQLite manifest
  --verbose              Debug logging on stderr (converter output)

Converters, tried in order for every size:
  rsvg-convert, convert (ImageMagick), inkscape

If none is installed, 1x1 placeholder PNGs are written for every missing
file and existing files are left untouched.`)
}
