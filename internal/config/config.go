// Package config loads settings of the lazyseg command from defaults,
// environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName      = ".lazyseg" // config file name without extension
	configType      = "yaml"
	envPrefix       = "LAZYSEG"
	envKeySeparator = "_"
)

// Defaults for the stress command.
const (
	DefaultStressSize   = 10000
	DefaultStressRounds = 10000
	DefaultStressSeed   = 1
)

// ErrInvalidConfig signals configuration values out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration of the lazyseg command.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Stress StressConfig `mapstructure:"stress"`
	Color  bool         `mapstructure:"color"`
}

// StressConfig holds the parameters of randomized tree checks.
type StressConfig struct {
	Size     int      `mapstructure:"size"`
	Rounds   int      `mapstructure:"rounds"`
	Seed     int64    `mapstructure:"seed"`
	Variants []string `mapstructure:"variants"`
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Stress.Size < 0 {
		return fmt.Errorf("%w: stress.size must not be negative", ErrInvalidConfig)
	}
	if c.Stress.Rounds < 0 {
		return fmt.Errorf("%w: stress.rounds must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("stress.size", DefaultStressSize)
	v.SetDefault("stress.rounds", DefaultStressRounds)
	v.SetDefault("stress.seed", DefaultStressSeed)
	v.SetDefault("stress.variants", []string{})
	v.SetDefault("color", true)
}
