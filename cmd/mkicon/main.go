// mkicon writes the hand-assembled 16×16 favicon.ico into the frontend
// asset directory.
//
// Usage: go run ./cmd/mkicon [--dir <asset-dir>] [check [file]]
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/favicons/internal/cli"
	"github.com/Mavwarf/favicons/internal/ico"
	"github.com/Mavwarf/favicons/internal/manifest"
	"github.com/Mavwarf/favicons/internal/paths"
	"github.com/Mavwarf/favicons/internal/status"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log := cli.NewLogger(stderr, opts.Verbose)

	cfg, err := opts.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	path := paths.IconPath(cfg.AssetDir)

	if len(rest) > 0 {
		switch rest[0] {
		case "help", "-h", "--help":
			printUsage(stdout)
			return 0
		case "version", "-V", "--version":
			fmt.Fprintf(stdout, "mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
			return 0
		case "check":
			if len(rest) > 1 {
				path = rest[1]
			}
			return check(path, stdout, stderr)
		default:
			fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
			fmt.Fprintf(stderr, "Run 'mkicon help' for usage.\n")
			return 1
		}
	}

	p := status.New(stdout)
	p.Line(status.Start, "Creating favicon.ico for AI Document Assistant...")

	data := ico.Produce()
	if err := paths.AtomicWrite(path, data); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	p.Line(status.Success, "Created favicon.ico (%d bytes)", len(data))
	p.Line(status.Location, "Location: %s", paths.Abs(path))

	store, err := opts.OpenManifest()
	if err != nil {
		log.Warn().Err(err).Msg("manifest unavailable")
		return 0
	}
	if store != nil {
		defer store.Close()
		a, err := manifest.Describe(path, manifest.Asset{
			File: paths.IconFileName, Width: ico.Size, Height: ico.Size, Source: manifest.SourceAssembled,
		})
		if err == nil {
			_, err = store.Record(manifest.Run{Command: "mkicon", AssetDir: cfg.AssetDir, Assets: []manifest.Asset{a}})
		}
		if err != nil {
			log.Warn().Err(err).Str("manifest", store.Path()).Msg("manifest not updated")
		}
	}
	return 0
}

// check prints the directory of an existing .ico file.
func check(path string, stdout, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	c, err := ico.Parse(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(stdout, "%s: %d image(s), %d bytes\n", path, len(c.Entries), len(data))
	for i, e := range c.Entries {
		fmt.Fprintf(stdout, "  #%d  %dx%d  %d bpp  %d bytes @ %d\n",
			i, ico.Dimension(e.Width), ico.Dimension(e.Height), e.BitCount, e.BytesInRes, e.ImageOffset)
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "mkicon %s - Write the 16x16 favicon.ico for the frontend\n", version)
	fmt.Fprintln(w, `
Usage:
  mkicon [options]              Write <asset-dir>/favicon.ico
  mkicon [options] check [file] Print the image directory of an .ico file

Options:
  --dir, -d <path>       Asset directory (default: frontend/src)
  --config, -c <path>    JSON config overriding asset_dir
  --manifest, -m <path>  Record the written file in a SQLite manifest
  --verbose              Debug logging on stderr

Commands:
  check                  Validate an .ico file (default: the one mkicon writes)
  version, -V            Show version and build date
  help, -h, --help       Show this help message`)
}
