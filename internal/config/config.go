package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"textsum/internal/segmenter"
)

// SegmenterConfig selects the sentence segmenter implementation.
type SegmenterConfig struct {
	Type string `yaml:"type"`
}

// WeightingConfig tunes the TF-IDF weighting.
type WeightingConfig struct {
	SublinearTF bool `yaml:"sublinear_tf"`
	Normalize   bool `yaml:"normalize"`
	Stem        bool `yaml:"stem"`
}

// StopwordsConfig points at an optional custom stopword list. The bundled
// English list is used when Path is empty.
type StopwordsConfig struct {
	Path string `yaml:"path"`
}

// SummaryConfig holds the default summary ratio.
type SummaryConfig struct {
	Ratio float64 `yaml:"ratio"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes string `yaml:"max_body"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Weighting WeightingConfig `yaml:"weighting"`
	Stopwords StopwordsConfig `yaml:"stopwords"`
	Summary   SummaryConfig   `yaml:"summary"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	// absent keys keep their defaults; explicit zero values are left for Validate
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings the summarizer cannot run with.
func (c *AppConfig) Validate() error {
	if !(c.Summary.Ratio > 0 && c.Summary.Ratio <= 1) {
		return errors.Errorf("summary.ratio must be in (0, 1], got %v", c.Summary.Ratio)
	}
	switch c.Segmenter.Type {
	case segmenter.TypeRegexp, segmenter.TypePunkt:
	default:
		return errors.Errorf("unknown segmenter: %s", c.Segmenter.Type)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Segmenter: SegmenterConfig{Type: segmenter.TypeRegexp},
		Weighting: WeightingConfig{Normalize: true},
		Summary:   SummaryConfig{Ratio: 0.5},
		Server:    ServerConfig{Addr: ":8080", MaxBodyBytes: "2M"},
		Log:       LogConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Segmenter.Type == "" {
		cfg.Segmenter.Type = segmenter.TypeRegexp
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxBodyBytes == "" {
		cfg.Server.MaxBodyBytes = "2M"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
