// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"fjacquet/finance-cli/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by the config
const EnvPrefix = "FINANCE"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	API struct {
		BaseURL           string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		LookupConcurrency int    `mapstructure:"lookup_concurrency" yaml:"lookup_concurrency"`
	} `mapstructure:"api" yaml:"api"`

	Output struct {
		Format   string `mapstructure:"format" yaml:"format"`
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"output" yaml:"output"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

var outputFormats = []string{"text", "json", "yaml", "csv"}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFile("")
}

// InitializeConfigFile loads configuration like InitializeConfig but reads
// the given file instead of searching the default locations when path is set.
func InitializeConfigFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.finance-cli")
		v.AddConfigPath(".finance-cli")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// LOG_LEVEL and LOG_FORMAT are honoured without prefix as well
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config holding only default values
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.lookup_concurrency", 8)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.currency", "ARS")

	v.SetDefault("csv.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	u, err := url.Parse(config.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got: %s", config.API.BaseURL)
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 300, got: %d", config.API.TimeoutSeconds)
	}

	if config.API.LookupConcurrency < 1 || config.API.LookupConcurrency > 64 {
		return fmt.Errorf("api.lookup_concurrency must be between 1 and 64, got: %d", config.API.LookupConcurrency)
	}

	if !isOutputFormat(config.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of %s)", config.Output.Format, strings.Join(outputFormats, ", "))
	}

	if config.Output.Currency != "ARS" {
		return fmt.Errorf("unsupported currency: %s (only ARS is supported)", config.Output.Currency)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ConfigureLoggingFromConfig builds the logrus logger described by the
// log section, writing to stderr
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	return logging.NewLogrus(config.Log.Level, config.Log.Format, os.Stderr)
}
