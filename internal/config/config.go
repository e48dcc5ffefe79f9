// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Similarity Similarity `toml:"similarity"`
	Watch      Watch      `toml:"watch"`
	Exclude    Exclude    `toml:"exclude"`
	Output     Output     `toml:"output"`
	Metrics    Metrics    `toml:"metrics"`
}

type Similarity struct {
	// Threshold is the percentage at or above which two traces are
	// flagged as the same recurring failure.
	Threshold float64 `toml:"threshold"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RecomparePerSec caps how often file changes may trigger a
	// recomparison; RecompareBurst is the token-bucket burst size.
	RecomparePerSec float64 `toml:"recompare_per_sec"`
	RecompareBurst  int     `toml:"recompare_burst"`
}

type Exclude struct {
	Files []string `toml:"files"` // Glob patterns ignored by the watcher (e.g., *.swp)
}

type Output struct {
	TSV      string `toml:"tsv"`
	Markdown string `toml:"markdown"`
}

type Metrics struct {
	Addr string `toml:"addr"` // Empty disables the metrics server
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Similarity: Similarity{Threshold: 70.0},
		Watch: Watch{
			Debounce:        500 * time.Millisecond,
			RecomparePerSec: 2.0,
			RecompareBurst:  1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	// Defaults for anything the file left unset
	if cfg.Similarity.Threshold == 0 {
		cfg.Similarity.Threshold = 70.0
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RecomparePerSec == 0 {
		cfg.Watch.RecomparePerSec = 2.0
	}
	if cfg.Watch.RecompareBurst == 0 {
		cfg.Watch.RecompareBurst = 1
	}

	return &cfg, nil
}
