package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Stripe   StripeConfig
	OpenAI   OpenAIConfig
	CDN      CDNConfig
	Referral ReferralConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// StorageConfig carries the Wasabi (S3-compatible) credentials used
// to mint pre-signed upload URLs. All four values are required at
// request time; Validate surfaces which one is missing.
type StorageConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

// Validate reports whether the storage credentials are complete.
// A missing value is a server configuration fault, not a client error.
func (s StorageConfig) Validate() error {
	switch {
	case s.AccessKey == "":
		return fmt.Errorf("WASABI_ACCESS_KEY_ID is not set")
	case s.SecretKey == "":
		return fmt.Errorf("WASABI_SECRET_ACCESS_KEY is not set")
	case s.Region == "":
		return fmt.Errorf("WASABI_REGION is not set")
	case s.Bucket == "":
		return fmt.Errorf("WASABI_BUCKET_NAME is not set")
	}
	return nil
}

// Endpoint returns the regional Wasabi S3 endpoint host.
func (s StorageConfig) Endpoint() string {
	return fmt.Sprintf("s3.%s.wasabisys.com", s.Region)
}

type StripeConfig struct {
	SecretKey string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type CDNConfig struct {
	Hostname string // Bunny CDN pull-zone hostname, e.g. "cdn.dadadu.app"
}

// ReferralConfig lists the redirect destinations for the invite link.
type ReferralConfig struct {
	PlayStoreURL string
	AppStoreURL  string
	FallbackURL  string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Dadadu API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "dadadu"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		Storage: StorageConfig{
			AccessKey: getEnv("WASABI_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("WASABI_SECRET_ACCESS_KEY", ""),
			Region:    getEnv("WASABI_REGION", ""),
			Bucket:    getEnv("WASABI_BUCKET_NAME", ""),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		},
		CDN: CDNConfig{
			Hostname: getEnv("BUNNY_CDN_HOSTNAME", ""),
		},
		Referral: ReferralConfig{
			PlayStoreURL: getEnv("REFERRAL_PLAY_STORE_URL", "https://play.google.com/store/apps/details?id=com.dadadu.app"),
			AppStoreURL:  getEnv("REFERRAL_APP_STORE_URL", "https://apps.apple.com/app/your-app-id"),
			FallbackURL:  getEnv("REFERRAL_FALLBACK_URL", "https://brosisus.com"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that must never fall back silently in
// production. Storage/Stripe/OpenAI/CDN values are checked at request
// time instead, so a partially configured instance can still serve
// the endpoints that do not need them.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
