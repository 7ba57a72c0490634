package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Env            string   `mapstructure:"ENV"`
	Port           string   `mapstructure:"PORT"`
	LogLevel       string   `mapstructure:"LOG_LEVEL"`
	CORSOrigins    []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	HistoryLimit   int      `mapstructure:"HISTORY_LIMIT"`
	TriageNewTTLMS int      `mapstructure:"TRIAGE_NEW_TTL_MS"`
	RecoveryScorer string   `mapstructure:"RECOVERY_SCORER"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("HISTORY_LIMIT", 5)
	v.SetDefault("TRIAGE_NEW_TTL_MS", 3000)
	v.SetDefault("RECOVERY_SCORER", "rules")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("PORT")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("CORS_ALLOWED_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("HISTORY_LIMIT")
	v.BindEnv("TRIAGE_NEW_TTL_MS")
	v.BindEnv("RECOVERY_SCORER")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ALLOWED_ORIGINS")
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

// TriageNewTTL returns the new-admission decay delay as a duration.
func (c *Config) TriageNewTTL() time.Duration {
	return time.Duration(c.TriageNewTTLMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid zerolog level: %w", c.LogLevel, err)
	}
	if c.RecoveryScorer != "rules" && c.RecoveryScorer != "fallback" {
		return fmt.Errorf("RECOVERY_SCORER must be \"rules\" or \"fallback\", got %q", c.RecoveryScorer)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.TriageNewTTLMS <= 0 {
		return fmt.Errorf("TRIAGE_NEW_TTL_MS must be positive, got %d", c.TriageNewTTLMS)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}
