package main

import (
	"testing"

	"github.com/woozymasta/geosplit/internal/config"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsApply(t *testing.T) {
	var opts Options
	_, err := flags.NewParser(&opts, flags.Default).ParseArgs([]string{
		"-i", "trails.json",
		"-k", "PMNTN_SN",
		"-l", "Halla", "-l", "Jiri",
		"--keep-going",
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Input:     "data.geojson",
		OutputDir: "from-config",
		KeyField:  "MNTN_NM",
	}
	opts.apply(cfg)
	cfg.ApplyDefaults()

	assert.Equal(t, &config.Config{
		Input:     "trails.json",
		OutputDir: "from-config",
		KeyField:  "PMNTN_SN",
		Fallback:  config.DefaultFallback,
		Extension: ".json",
		Limit:     []string{"Halla", "Jiri"},
		KeepGoing: true,
	}, cfg)
}
