package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Optional Redis-backed token resolution cache
	RedisURL      string
	TokenCacheTTL time.Duration

	// Rate limiting for the public signup/init endpoints
	AuthRateLimit string

	// Product analytics
	PosthogAPIKey string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("TOKEN_CACHE_TTL", "5m")
	viper.SetDefault("AUTH_RATE_LIMIT", "20-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	ttlStr := viper.GetString("TOKEN_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: Invalid value for TOKEN_CACHE_TTL ('%s'). Defaulting to 5m.\n", ttlStr)
		ttl = 5 * time.Minute
	}
	cfg.TokenCacheTTL = ttl

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")

	return cfg, nil
}
