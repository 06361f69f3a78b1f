package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries CLI wiring defaults: which transport to use and where the
// hub sits on it. Flags override file values; the file overrides Default.
type Config struct {
	Adapter string `yaml:"adapter"`
	Device  string `yaml:"device"`
	Bus     int    `yaml:"bus"`
	Address byte   `yaml:"address"`
}

func Default() *Config {
	return &Config{
		Adapter: "generic",
		Device:  "/dev/i2c-1",
		Bus:     1,
		Address: 0x17,
	}
}

// Load reads a yaml config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	err = yaml.Unmarshal(raw, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}
