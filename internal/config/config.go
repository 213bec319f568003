// Package config holds the CLI configuration. The library itself takes no
// configuration; everything here drives the navforge command: logger
// settings, default generation filters and output shape.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/navforge/internal/catalog"
)

var (
	instance *Config
	once     sync.Once
)

// Config is the root configuration for the navforge command.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// ColorConfig defines the console colors for each log level.
type ColorConfig struct {
	Debug string `mapstructure:"debug" json:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" json:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" json:"warn" yaml:"warn"`
	Error string `mapstructure:"error" json:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" json:"fatal" yaml:"fatal"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" json:"level" yaml:"level"`
	Format      string      `mapstructure:"format" json:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" json:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" json:"colors" yaml:"colors"`
}

// GenerateConfig holds the default filters and output shape used when the
// corresponding CLI flags are not given.
type GenerateConfig struct {
	OS         []string `mapstructure:"os"`
	Navigator  []string `mapstructure:"navigator"`
	DeviceType []string `mapstructure:"device_type"`
	Count      int      `mapstructure:"count"`
	Extended   bool     `mapstructure:"extended"`
}

// Validate checks the filter defaults against the known enumerations so a
// bad config file fails at startup rather than on the first generation.
func (c *Config) Validate() error {
	for _, v := range c.Generate.OS {
		if v != "all" && !catalog.ValidOS(v) {
			return fmt.Errorf("generate.os: unknown os %q", v)
		}
	}
	for _, v := range c.Generate.Navigator {
		if v != "all" && !catalog.ValidBrowser(v) {
			return fmt.Errorf("generate.navigator: unknown navigator %q", v)
		}
	}
	for _, v := range c.Generate.DeviceType {
		if v != "all" && !catalog.ValidDeviceType(v) {
			return fmt.Errorf("generate.device_type: unknown device type %q", v)
		}
	}
	if c.Generate.Count < 1 {
		return fmt.Errorf("generate.count must be at least 1, got %d", c.Generate.Count)
	}
	return nil
}

// SetDefaults installs the defaults so the command runs with no config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "navforge")
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")
	v.SetDefault("generate.count", 1)
}

// Load initializes the configuration singleton from Viper.
func Load(v *viper.Viper) error {
	var loadErr error
	once.Do(func() {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			loadErr = fmt.Errorf("error unmarshaling config: %w", err)
			return
		}
		instance = &cfg
	})
	return loadErr
}

// Get returns the loaded configuration instance.
func Get() *Config {
	if instance == nil {
		panic("Configuration not initialized. Call config.Load() in the root command.")
	}
	return instance
}
