package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	SessionLimit    int      `mapstructure:"SESSION_LIMIT"`
	AppName         string   `mapstructure:"APP_NAME"`
	DefaultLocation string   `mapstructure:"DEFAULT_LOCATION"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SESSION_LIMIT", 0)
	v.SetDefault("APP_NAME", AppName)
	v.SetDefault("DEFAULT_LOCATION", DefaultLocation)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SESSION_LIMIT")
	v.BindEnv("APP_NAME")
	v.BindEnv("DEFAULT_LOCATION")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. SESSION_LIMIT of
// zero means unlimited concurrent sessions.
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "production" && c.Env != "test" {
		return fmt.Errorf("ENV must be \"development\", \"production\", or \"test\", got %q", c.Env)
	}
	if c.SessionLimit < 0 {
		return fmt.Errorf("SESSION_LIMIT must be >= 0, got %d", c.SessionLimit)
	}
	return nil
}
