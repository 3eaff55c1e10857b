package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisSlotDB   int    `mapstructure:"REDIS_SLOT_DB"`

	// Payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Invite tokens for off-platform load recipients.
	InviteSecret string        `mapstructure:"INVITE_SECRET"`
	InviteMaxAge time.Duration `mapstructure:"INVITE_MAX_AGE"`

	// Compliance thresholds.
	RiskThreshold     float64 `mapstructure:"RISK_THRESHOLD"`
	VelocityPerMinute int     `mapstructure:"VELOCITY_PER_MINUTE"`
	VelocityBurst     int     `mapstructure:"VELOCITY_BURST"`

	// Slot reservation.
	SlotReservationTTL time.Duration `mapstructure:"SLOT_RESERVATION_TTL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SLOT_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("INVITE_SECRET", "")
	viper.SetDefault("INVITE_MAX_AGE", 30*time.Minute)
	viper.SetDefault("RISK_THRESHOLD", 0.75)
	viper.SetDefault("VELOCITY_PER_MINUTE", 5)
	viper.SetDefault("VELOCITY_BURST", 5)
	viper.SetDefault("SLOT_RESERVATION_TTL", 10*time.Minute)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
