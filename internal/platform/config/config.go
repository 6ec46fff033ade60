package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// PayoutFactor scales worked hours into certificates paid out to the
	// member; the remainder goes to the public sector fund.
	PayoutFactor decimal.Decimal

	// ActivationHour is the UTC hour of day at which the plan activation
	// pass runs.
	ActivationHour int

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("PAYOUT_FACTOR", "0.95")
	viper.SetDefault("ACTIVATION_HOUR", 0)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	payoutStr := viper.GetString("PAYOUT_FACTOR")
	payout, err := decimal.NewFromString(payoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid value for PAYOUT_FACTOR ('%s'): %w", payoutStr, err)
	}
	if payout.IsNegative() || payout.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("PAYOUT_FACTOR must be between 0 and 1, got %s", payout)
	}
	cfg.PayoutFactor = payout

	cfg.ActivationHour = viper.GetInt("ACTIVATION_HOUR")
	if cfg.ActivationHour < 0 || cfg.ActivationHour > 23 {
		return nil, fmt.Errorf("ACTIVATION_HOUR must be between 0 and 23, got %d", cfg.ActivationHour)
	}

	return cfg, nil
}
