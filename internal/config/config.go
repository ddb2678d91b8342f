// Package config provides configuration management for joinstart using Viper
// for loading from files, environment variables, and command-line flags.
//
// Settings can come from a YAML file (.joinstart.yml), from environment
// variables with the JOINSTART_ prefix, or from flags bound through pflag.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "JOINSTART"

// Keys used in the config file and for flag binding.
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyDepsManifest = "deps.manifest"
	KeyDepsFormat   = "deps.format"
)

type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Deps DepsConfig `mapstructure:"deps"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DepsConfig struct {
	// Manifest is a path to a YAML manifest; empty means the built-in one.
	Manifest string `mapstructure:"manifest"`
	Format   string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyDepsManifest, "")
	v.SetDefault(KeyDepsFormat, "text")
}

// BindEnv enables JOINSTART_<SECTION>_<OPTION> overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// BindFlag binds a single flag from fs to key, if the flag exists.
func BindFlag(v *viper.Viper, key string, fs *pflag.FlagSet, name string) error {
	flag := fs.Lookup(name)
	if flag == nil {
		return fmt.Errorf("flag %q not defined", name)
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind flag %q: %w", name, err)
	}
	return nil
}

// Load unmarshals the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v into a Config and validates it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))
	config.Log.Format = strings.ToLower(strings.TrimSpace(config.Log.Format))
	config.Deps.Format = strings.ToLower(strings.TrimSpace(config.Deps.Format))

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if err := validateDepsConfig(&config.Deps); err != nil {
		return fmt.Errorf("deps config: %w", err)
	}
	return nil
}

func validateLogConfig(config *LogConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported level %q", config.Level)
	}
	switch config.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q", config.Format)
	}
	return nil
}

func validateDepsConfig(config *DepsConfig) error {
	if strings.ContainsAny(config.Manifest, "\x00\n\r") {
		return fmt.Errorf("manifest path contains control characters")
	}
	switch config.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q", config.Format)
	}
	return nil
}
