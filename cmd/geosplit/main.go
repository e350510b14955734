package main

import (
	"os"

	"github.com/woozymasta/geosplit/internal/config"
	"github.com/woozymasta/geosplit/internal/geo"
	"github.com/woozymasta/geosplit/internal/logger"
	"github.com/woozymasta/geosplit/internal/splitter"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string   `short:"c" long:"config"     env:"CONFIG_FILE" description:"Path to optional YAML configuration file"`
	Input      string   `short:"i" long:"input"      env:"INPUT"       description:"Input GeoJSON file (default: data.geojson)"`
	OutputDir  string   `short:"o" long:"output-dir" env:"OUTPUT_DIR"  description:"Directory for group files (default: current directory)"`
	KeyField   string   `short:"k" long:"key"        env:"KEY_FIELD"   description:"Property to group features by (default: MNTN_NM)"`
	Fallback   string   `long:"fallback"             env:"FALLBACK"    description:"Group for features without the property (default: unknown)"`
	Extension  string   `short:"e" long:"extension"  env:"EXTENSION"   description:"Output file extension (default: same as input)"`
	Limit      []string `short:"l" long:"limit"      env:"LIMIT_KEYS"  description:"Limit output to specific group keys"`
	KeepGoing  bool     `short:"K" long:"keep-going" description:"Continue writing remaining groups after a failure"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := &config.Config{}
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
		}
	}
	opts.apply(cfg)
	cfg.ApplyDefaults()

	log.Debug().
		Str("input", cfg.Input).
		Str("output_dir", cfg.OutputDir).
		Str("key", cfg.KeyField).
		Str("extension", cfg.Extension).
		Msg("Starting split")

	fc, err := geo.Load(cfg.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Input).Msg("Failed to load input")
	}

	groups := splitter.GroupBy(fc, cfg.KeyField, cfg.Fallback)

	if len(cfg.Limit) > 0 {
		var missing []string
		groups, missing = splitter.Filter(groups, cfg.Limit)
		for _, key := range missing {
			log.Error().
				Str("key", key).
				Msg("Group specified in --limit not found in input")
		}
	}

	written, err := splitter.Export(groups, fc.CRS, splitter.ExportOptions{
		OutputDir: cfg.OutputDir,
		Extension: cfg.Extension,
		KeepGoing: cfg.KeepGoing,
	})
	if err != nil {
		log.Fatal().Err(err).Int("written", len(written)).Msg("Failed to export groups")
	}

	log.Debug().
		Int("features", len(fc.Features)).
		Int("groups", len(groups)).
		Int("files", len(written)).
		Msg("Split finished")
}

// apply overrides configuration file values with flags that were set.
func (o *Options) apply(cfg *config.Config) {
	if o.Input != "" {
		cfg.Input = o.Input
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if o.KeyField != "" {
		cfg.KeyField = o.KeyField
	}
	if o.Fallback != "" {
		cfg.Fallback = o.Fallback
	}
	if o.Extension != "" {
		cfg.Extension = o.Extension
	}
	if len(o.Limit) > 0 {
		cfg.Limit = o.Limit
	}
	if o.KeepGoing {
		cfg.KeepGoing = true
	}
}
