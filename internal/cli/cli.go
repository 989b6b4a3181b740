// Package cli holds the flag handling and setup shared by mkicon and favicons.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Mavwarf/favicons/internal/config"
	"github.com/Mavwarf/favicons/internal/manifest"
)

// Options are the global flags accepted by both tools.
type Options struct {
	Dir      string
	Config   string
	Manifest string
	Verbose  bool
}

// Parse extracts global flags from args and returns the remaining
// positional arguments in order.
func Parse(args []string) (Options, []string, error) {
	var o Options
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--dir", "-d", "--config", "-c", "--manifest", "-m":
			if i+1 >= len(args) {
				return o, nil, fmt.Errorf("%s requires a path", args[i])
			}
			switch args[i] {
			case "--dir", "-d":
				o.Dir = args[i+1]
			case "--config", "-c":
				o.Config = args[i+1]
			default:
				o.Manifest = args[i+1]
			}
			i++
		case "--verbose":
			o.Verbose = true
		default:
			rest = append(rest, args[i])
		}
	}
	return o, rest, nil
}

// LoadConfig loads the configuration named by --config (or the defaults)
// and applies --dir on top.
func (o Options) LoadConfig() (config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return cfg, err
	}
	if o.Dir != "" {
		cfg.AssetDir = o.Dir
	}
	return cfg, nil
}

// OpenManifest opens the store named by --manifest. It returns nil, nil
// when no manifest was requested.
func (o Options) OpenManifest() (manifest.Store, error) {
	if o.Manifest == "" {
		return nil, nil
	}
	s, err := manifest.NewSQLiteStore(o.Manifest)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	return s, nil
}

// NewLogger returns the diagnostic logger: warnings and above by default,
// everything with verbose.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: os.Getenv("NO_COLOR") != "", TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
