package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "regexp", cfg.Segmenter.Type)
	assert.Equal(t, 0.5, cfg.Summary.Ratio)
	assert.True(t, cfg.Weighting.Normalize)
	assert.False(t, cfg.Weighting.Stem)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
segmenter:
  type: punkt
weighting:
  sublinear_tf: true
  normalize: false
  stem: true
stopwords:
  path: /etc/textsum/stopwords.txt
summary:
  ratio: 0.25
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "punkt", cfg.Segmenter.Type)
	assert.True(t, cfg.Weighting.SublinearTF)
	assert.False(t, cfg.Weighting.Normalize)
	assert.True(t, cfg.Weighting.Stem)
	assert.Equal(t, "/etc/textsum/stopwords.txt", cfg.Stopwords.Path)
	assert.Equal(t, 0.25, cfg.Summary.Ratio)
	assert.Equal(t, "debug", cfg.Log.Level)
	// unset sections keep their defaults
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoadExplicitZeroRatioFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summary:\n  ratio: 0\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Summary.Ratio)
	assert.Error(t, cfg.Validate())

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Summary.Ratio)
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summary: [oops"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	cfg := config.Default()
	cfg.Summary.Ratio = 0.3
	cfg.Segmenter.Type = "punkt"

	require.NoError(t, config.Save(path, cfg))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.AppConfig)
		wantErr bool
	}{
		{"defaults", func(*config.AppConfig) {}, false},
		{"ratio one", func(c *config.AppConfig) { c.Summary.Ratio = 1 }, false},
		{"ratio zero", func(c *config.AppConfig) { c.Summary.Ratio = 0 }, true},
		{"ratio above one", func(c *config.AppConfig) { c.Summary.Ratio = 1.2 }, true},
		{"negative ratio", func(c *config.AppConfig) { c.Summary.Ratio = -0.5 }, true},
		{"unknown segmenter", func(c *config.AppConfig) { c.Segmenter.Type = "spacy" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
