package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the parameters shared by the sandfall front-ends.
// Defaults are overridden by an optional YAML file, which is in turn
// overridden by command-line flags.
type Config struct {
	Scene  string `yaml:"scene"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"`
	Seed   int64  `yaml:"seed"`
	Brush  int    `yaml:"brush"`
	Debug  bool   `yaml:"debug"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:  "empty",
		Width:  256,
		Height: 256,
		Scale:  3,
		TPS:    60,
		Seed:   42,
		Brush:  4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting scene preset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the simulation's random source")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush radius in cells")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "verbose logging")
}

// LoadFile overlays values from a YAML file onto the config.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Brush < 0 {
		return fmt.Errorf("brush radius must not be negative, got %d", c.Brush)
	}
	return nil
}

// PathFromArgs scans raw arguments for -config/--config so the file can be
// loaded before flag parsing; flags then override its values.
func PathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
