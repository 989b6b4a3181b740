package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Mavwarf/favicons/internal/cli"
	"github.com/Mavwarf/favicons/internal/generate"
)

const defaultHistoryRuns = 10

// recordRun stores res in the manifest when --manifest was given.
// Manifest problems never fail the run.
func recordRun(opts cli.Options, res generate.Result, log zerolog.Logger) {
	store, err := opts.OpenManifest()
	if err != nil {
		log.Warn().Err(err).Msg("manifest unavailable")
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	run, err := generate.Record(res)
	if err != nil {
		log.Warn().Err(err).Msg("manifest not updated")
		return
	}
	if _, err := store.Record(run); err != nil {
		log.Warn().Err(err).Str("manifest", store.Path()).Msg("manifest not updated")
	}
}

func history(opts cli.Options, args []string, stdout, stderr io.Writer) int {
	if opts.Manifest == "" {
		fmt.Fprintf(stderr, "Error: history requires --manifest <path>\n")
		return 1
	}
	limit := defaultHistoryRuns
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fmt.Fprintf(stderr, "Error: invalid run count %q\n", args[0])
			return 1
		}
		limit = n
	}

	store, err := opts.OpenManifest()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer store.Close()

	runs, err := store.Runs(limit)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "No runs recorded.")
		return 0
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "#%d  %s  %s  %s  (%d files, %d failed)\n",
			r.ID, r.Started.Local().Format("2006-01-02 15:04:05"), r.Command, r.AssetDir, len(r.Assets), r.Failed)
		for _, a := range r.Assets {
			src := a.Source
			if a.Tool != "" {
				src += ":" + a.Tool
			}
			fmt.Fprintf(stdout, "  %-24s %4dx%-4d %-20s %6d bytes\n", a.File, a.Width, a.Height, src, a.Bytes)
		}
	}
	return 0
}
