package iconkit

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/esimov/iconkit/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Config holds the command line configuration. Every value can be preset
// through its environment variable and overridden by the matching flag.
type Config struct {
	Source      string
	Output      string `env:"ICONKIT_OUTPUT"`
	Shapes      bool   `env:"ICONKIT_CONVERT_SHAPES"`
	Merge       bool   `env:"ICONKIT_MERGE_PATHS"`
	Precision   int    `env:"ICONKIT_PRECISION" envDefault:"3"`
	SetAll      string `env:"ICONKIT_SET_ALL"`
	FillMissing string `env:"ICONKIT_FILL_MISSING"`
	Minify      bool   `env:"ICONKIT_MINIFY" envDefault:"true"`
	Workers     int    `env:"ICONKIT_WORKERS"`
	Debug       bool   `env:"ICONKIT_DEBUG"`
	KeepCase    bool   `env:"ICONKIT_KEEP_CASE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig reads the environment, then the flags and the single
// positional source directory from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	fs.StringVar(&cfg.Output, "out", cfg.Output, "Destination file (default <source>/"+DefaultArtifact+")")
	fs.BoolVar(&cfg.Shapes, "shapes", cfg.Shapes, "Convert basic shapes to paths")
	fs.BoolVar(&cfg.Merge, "merge", cfg.Merge, "Merge adjacent paths with identical attributes")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "Decimals kept in path data (negative disables rounding)")
	fs.StringVar(&cfg.SetAll, "set-all", cfg.SetAll, "Replace every color with this value (monotone sets only)")
	fs.StringVar(&cfg.FillMissing, "fill-missing", cfg.FillMissing, "Add this fill to shapes without one")
	fs.BoolVar(&cfg.Minify, "minify", cfg.Minify, "Write compact JSON")
	fs.IntVar(&cfg.Workers, "conc", cfg.Workers, "Number of icons to re-optimize concurrently")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log every build step")
	fs.BoolVar(&cfg.KeepCase, "keep-case", cfg.KeepCase, "Keep the letter case of file names in icon keys")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		return Config{}, errors.New("exactly one source directory is required")
	}
	cfg.Source = fs.Arg(0)
	if strings.TrimSpace(cfg.Source) == "" {
		return Config{}, errors.New("source directory is empty")
	}
	// Limit the concurrently running workers to maxWorkers.
	cfg.Workers = utils.Min(utils.Max(cfg.Workers, 1), maxWorkers)

	return cfg, nil
}

// BuildOptions converts the configuration into pipeline options.
func (c Config) BuildOptions() BuildOptions {
	opts := DefaultBuildOptions()
	opts.Import.KeepCase = c.KeepCase
	opts.Optimize.ConvertShapeToPath = c.Shapes
	opts.Optimize.MergePaths = c.Merge
	opts.Optimize.Precision = c.Precision
	opts.Palette = PaletteOptions{SetAll: c.SetAll, FillMissing: c.FillMissing}
	opts.Export.Optimize = c.Minify
	opts.Output = c.Output
	opts.Workers = c.Workers
	return opts
}
