package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxIndex bounds the sequence buffer when no override is configured.
const DefaultMaxIndex = 1_000_000

// Config holds fixture configuration loaded from an optional YAML file and env.
type Config struct {
	MaxIndex int

	LogLevel  string
	LogFormat string // "plain" or "json"

	MetricsTextfile string
}

type fileConfig struct {
	Sequence struct {
		MaxIndex int `yaml:"max_index"`
	} `yaml:"sequence"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		MaxIndex:  DefaultMaxIndex,
		LogLevel:  "INFO",
		LogFormat: "plain",
	}
}

// Load reads the YAML file named by FIBSEQ_CONFIG, if set, then applies env overrides
// (FIBSEQ_MAX_INDEX, LOG_LEVEL, LOG_FORMAT, FIBSEQ_METRICS_TEXTFILE).
// With nothing set it returns Default().
func Load() (*Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("FIBSEQ_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		applyFile(cfg, &fc)
	}

	if s := strings.TrimSpace(os.Getenv("FIBSEQ_MAX_INDEX")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("FIBSEQ_MAX_INDEX: %w", err)
		}
		cfg.MaxIndex = n
	}
	if s := strings.TrimSpace(os.Getenv("LOG_LEVEL")); s != "" {
		cfg.LogLevel = s
	}
	if s := strings.TrimSpace(os.Getenv("LOG_FORMAT")); s != "" {
		cfg.LogFormat = s
	}
	if s := strings.TrimSpace(os.Getenv("FIBSEQ_METRICS_TEXTFILE")); s != "" {
		cfg.MetricsTextfile = s
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, fc *fileConfig) {
	if fc.Sequence.MaxIndex != 0 {
		cfg.MaxIndex = fc.Sequence.MaxIndex
	}
	if s := strings.TrimSpace(fc.Logging.Level); s != "" {
		cfg.LogLevel = s
	}
	if s := strings.TrimSpace(fc.Logging.Format); s != "" {
		cfg.LogFormat = s
	}
	if s := strings.TrimSpace(fc.Metrics.Textfile); s != "" {
		cfg.MetricsTextfile = s
	}
}

// validate performs post-load validation of configuration values.
func validate(cfg *Config) error {
	if cfg.MaxIndex <= 0 {
		return fmt.Errorf("sequence.max_index must be positive, got %d", cfg.MaxIndex)
	}
	switch cfg.LogFormat {
	case "plain", "json":
		// valid
	default:
		return fmt.Errorf("logging.format must be plain or json, got %q", cfg.LogFormat)
	}
	return nil
}
