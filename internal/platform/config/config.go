package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort           = "8080"
	defaultScaleFactor    = "100"
	defaultMaxAmount      = "1000000"
	defaultMaxUnitsPerRow = 10
	defaultRateLimit      = "60-M"
	defaultLogLevel       = "info"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Conversion
	ScaleFactor    decimal.Decimal // raw amounts are divided by this before decomposition
	MaxAmount      decimal.Decimal // largest accepted amount after scaling
	MaxUnitsPerRow int             // blocks per row in the visual grid

	// HTTP
	RateLimit          limiter.Rate
	CORSAllowedOrigins []string

	// Analytics
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("SCALE_FACTOR", defaultScaleFactor)
	v.SetDefault("MAX_AMOUNT", defaultMaxAmount)
	v.SetDefault("MAX_UNITS_PER_ROW", defaultMaxUnitsPerRow)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	scaleStr := v.GetString("SCALE_FACTOR")
	scale, err := decimal.NewFromString(strings.TrimSpace(scaleStr))
	if err != nil || !scale.IsPositive() {
		scale = decimal.RequireFromString(defaultScaleFactor)
		log.Printf("Warning: Invalid value for SCALE_FACTOR ('%s'). Defaulting to %s.\n", scaleStr, scale)
	}
	cfg.ScaleFactor = scale

	maxStr := v.GetString("MAX_AMOUNT")
	maxAmount, err := decimal.NewFromString(strings.TrimSpace(maxStr))
	if err != nil || !maxAmount.IsPositive() {
		maxAmount = decimal.RequireFromString(defaultMaxAmount)
		log.Printf("Warning: Invalid value for MAX_AMOUNT ('%s'). Defaulting to %s.\n", maxStr, maxAmount)
	}
	cfg.MaxAmount = maxAmount

	cfg.MaxUnitsPerRow = v.GetInt("MAX_UNITS_PER_ROW")
	if cfg.MaxUnitsPerRow <= 0 {
		log.Printf("Warning: Invalid value for MAX_UNITS_PER_ROW ('%s'). Defaulting to %d.\n", v.GetString("MAX_UNITS_PER_ROW"), defaultMaxUnitsPerRow)
		cfg.MaxUnitsPerRow = defaultMaxUnitsPerRow
	}

	rateStr := v.GetString("RATE_LIMIT")
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", rateStr, defaultRateLimit)
		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit)
	}
	cfg.RateLimit = rate

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	return cfg
}
