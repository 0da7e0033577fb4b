package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the service configuration. Credentials stay in the
// environment; the file only carries behavior.
type Config struct {
	Listen        string  `yaml:"listen"`
	Language      string  `yaml:"language"`
	Synthesizer   string  `yaml:"synthesizer"` // google | elevenlabs | openai
	Voice         string  `yaml:"voice"`       // engine voice ID, where supported
	SynthesisRate float64 `yaml:"synthesis_rate"`
	IndexTTL      string  `yaml:"index_ttl"` // "" or "0" rebuilds the index per request
	ScratchDir    string  `yaml:"scratch_dir"`

	indexTTL time.Duration
}

// Load reads the YAML config at path. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Listen:        ":8080",
		Language:      "en",
		Synthesizer:   "google",
		SynthesisRate: 1,
		ScratchDir:    filepath.Join(os.TempDir(), "stitcher"),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logrus.WithField("path", path).Infoln("no config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config; %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config; %w", err)
	}

	if cfg.IndexTTL != "" {
		ttl, err := time.ParseDuration(cfg.IndexTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid index_ttl %q; %w", cfg.IndexTTL, err)
		}
		if ttl < 0 {
			return nil, fmt.Errorf("invalid index_ttl %q; must not be negative", cfg.IndexTTL)
		}
		cfg.indexTTL = ttl
	}

	return cfg, nil
}

// IndexCacheTTL returns the parsed index_ttl; zero disables caching.
func (c *Config) IndexCacheTTL() time.Duration { return c.indexTTL }
