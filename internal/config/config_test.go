package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: trails/data.json
output_dir: out
key_field: PMNTN_SN
limit:
  - 북한산
  - 한라산
keep_going: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Input:     "trails/data.json",
		OutputDir: "out",
		KeyField:  "PMNTN_SN",
		Limit:     []string{"북한산", "한라산"},
		KeepGoing: true,
	}, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limit: [unclosed"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "empty",
			want: Config{
				Input:     DefaultInput,
				OutputDir: DefaultOutputDir,
				KeyField:  DefaultKeyField,
				Fallback:  DefaultFallback,
				Extension: ".geojson",
			},
		},
		{
			name: "extension follows input",
			cfg:  Config{Input: "trails.json"},
			want: Config{
				Input:     "trails.json",
				OutputDir: DefaultOutputDir,
				KeyField:  DefaultKeyField,
				Fallback:  DefaultFallback,
				Extension: ".json",
			},
		},
		{
			name: "input without extension",
			cfg:  Config{Input: "trails", Extension: ""},
			want: Config{
				Input:     "trails",
				OutputDir: DefaultOutputDir,
				KeyField:  DefaultKeyField,
				Fallback:  DefaultFallback,
				Extension: DefaultExtension,
			},
		},
		{
			name: "explicit values kept",
			cfg:  Config{Input: "a.json", OutputDir: "out", KeyField: "k", Fallback: "none", Extension: "geo"},
			want: Config{Input: "a.json", OutputDir: "out", KeyField: "k", Fallback: "none", Extension: ".geo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.ApplyDefaults()
			assert.Equal(t, tt.want, cfg)
		})
	}
}
