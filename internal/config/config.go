package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/devskio/typo3/reflection"
)

// Config holds the framework configuration read from typo3.yml.
type Config struct {
	Conventions reflection.Conventions `mapstructure:"conventions"`
}

// Load reads typo3.yml (or typo3.yaml) from the working directory, with
// environment variable overrides. Missing files fall back to the built-in
// conventions.
func Load() (*Config, error) {
	v := viper.New()

	defaults := reflection.DefaultConventions()
	v.SetDefault("conventions.inject_method_prefix", defaults.InjectMethodPrefix)
	v.SetDefault("conventions.settings_injector_name", defaults.SettingsInjectorName)
	v.SetDefault("conventions.settings_property_name", defaults.SettingsPropertyName)
	v.SetDefault("conventions.action_method_suffix", defaults.ActionMethodSuffix)
	v.SetDefault("conventions.repository_suffix", defaults.RepositorySuffix)

	v.SetConfigName("typo3")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validateConfig(cfg *Config) error {
	c := cfg.Conventions
	if c.InjectMethodPrefix == "" {
		return fmt.Errorf("conventions.inject_method_prefix must not be empty")
	}
	if c.SettingsInjectorName == "" {
		return fmt.Errorf("conventions.settings_injector_name must not be empty")
	}
	if c.ActionMethodSuffix == "" {
		return fmt.Errorf("conventions.action_method_suffix must not be empty")
	}
	if c.RepositorySuffix == "" {
		return fmt.Errorf("conventions.repository_suffix must not be empty")
	}
	return nil
}
