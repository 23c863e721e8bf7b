// Package config loads runtime configuration from an optional file and
// BOATCLOSER_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config stores global configuration.
type Config struct {
	// Logging level.
	LogLevel string

	// Directory where the transaction snapshot is kept.
	DataDir string

	// Public address used when building invitation and document links.
	BaseURL string

	// Enables the payment/plan step in the workflow.
	ShowPaywall bool

	// Enables the escrow setup step in the workflow.
	ShowEscrowStep bool
}

func setDefaults() {
	viper.SetDefault("LogLevel", "INFO")
	viper.SetDefault("DataDir", ".")
	viper.SetDefault("BaseURL", "https://boatcloser.com/app")
	viper.SetDefault("ShowPaywall", false)
	viper.SetDefault("ShowEscrowStep", true)
}

// Load reads configuration, layering environment variables over the given
// file (if any) over the defaults.
func Load(filename string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix("BOATCLOSER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if filename != "" {
		viper.SetConfigFile(filename)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", filename, err)
		}
	}

	config := new(Config)
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	config, _ := Load("")
	return config
}
