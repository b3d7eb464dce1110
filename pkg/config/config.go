package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required: the resource store the board persists into.
	StoreURL    string `mapstructure:"store_url"`
	StoreAPIKey string `mapstructure:"store_api_key"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`
	LogJSON  bool   `mapstructure:"log_json"`
}

const (
	DefaultConfigPath = "/etc/bbs/config.yml"
	DefaultAPIHost    = "0.0.0.0"
	DefaultAPIPort    = 8080
	DefaultLogLevel   = "info"
)

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)
	viper.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BBS")
	viper.BindEnv("store_url")
	viper.BindEnv("store_api_key")

	// The config file is optional: everything required can come from the
	// environment.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the startup contract: without the store URL and API key
// no request can be served, so missing either is fatal here rather than a
// per-request surprise later.
func (c *Config) Validate() error {
	if c.StoreURL == "" {
		return fmt.Errorf("store_url is required")
	}

	if c.StoreAPIKey == "" {
		return fmt.Errorf("store_api_key is required")
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert file does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key file does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("BBS_DEV_MODE") == "1"
}
