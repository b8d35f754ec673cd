//go:build !solution

package visits

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"gitlab.com/rogov-ks/library/library"
)

var ErrInvalidConfig = errors.New("visits: invalid config")

// Config describes a library simulation.
type Config struct {
	Capacity  int           `yaml:"capacity"`
	Readers   int           `yaml:"readers"`
	Writers   int           `yaml:"writers"`
	Visits    int           `yaml:"visits"` // 0 means until cancelled
	ReadTime  time.Duration `yaml:"read_time"`
	WriteTime time.Duration `yaml:"write_time"`
	RestTime  time.Duration `yaml:"rest_time"`

	Color       bool   `yaml:"color"`
	MetricsFile string `yaml:"metrics_file"`
}

func Default() Config {
	return Config{
		Capacity:  library.DefaultCapacity,
		Readers:   10,
		Writers:   3,
		Visits:    3,
		ReadTime:  500 * time.Millisecond,
		WriteTime: 300 * time.Millisecond,
		RestTime:  200 * time.Millisecond,
		Color:     true,
	}
}

// Load reads config from a YAML file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	// Пустой файл - просто значения по умолчанию
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// BindFlags registers flags that write into cfg.
// Current field values become the flag defaults, so call it after Load.
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&cfg.Capacity, "capacity", "c", cfg.Capacity, "number of seats in the library")
	fs.IntVarP(&cfg.Readers, "readers", "r", cfg.Readers, "number of readers")
	fs.IntVarP(&cfg.Writers, "writers", "w", cfg.Writers, "number of writers")
	fs.IntVarP(&cfg.Visits, "visits", "n", cfg.Visits, "visits per visitor, 0 to run until interrupted")
	fs.DurationVar(&cfg.ReadTime, "read-time", cfg.ReadTime, "how long a reader stays inside")
	fs.DurationVar(&cfg.WriteTime, "write-time", cfg.WriteTime, "how long a writer stays inside")
	fs.DurationVar(&cfg.RestTime, "rest-time", cfg.RestTime, "pause between visits")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colour console output")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write final metrics to this file in Prometheus text format")
}

func (cfg Config) Validate() error {
	switch {
	case cfg.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, cfg.Capacity)
	case cfg.Readers < 0 || cfg.Writers < 0:
		return fmt.Errorf("%w: negative number of visitors", ErrInvalidConfig)
	case cfg.Readers+cfg.Writers == 0:
		return fmt.Errorf("%w: no visitors", ErrInvalidConfig)
	case cfg.Visits < 0:
		return fmt.Errorf("%w: negative visits", ErrInvalidConfig)
	case cfg.ReadTime < 0 || cfg.WriteTime < 0 || cfg.RestTime < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	}
	return nil
}
