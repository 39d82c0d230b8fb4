package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool
	JWTSecret      string
	AllowedOrigins []string

	// Rate limiting; RedisURL empty keeps counters in memory.
	RedisURL  string
	RateLimit string

	// Object storage
	AWSRegion          string
	AWSBucketName      string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Endpoint         string

	// Transcription gateway
	GatewayURL     string
	GatewayAPIKey  string
	GatewayTimeout time.Duration

	// Local staging of audio before transcription
	StagingDir      string
	StagingMaxBytes int64
	StagingSweepAge time.Duration

	UploadMaxBytes int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_BUCKET_NAME", "")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("GATEWAY_URL", "http://localhost:8000/transcribe")
	v.SetDefault("GATEWAY_API_KEY", "")
	v.SetDefault("GATEWAY_TIMEOUT", "2m")
	v.SetDefault("STAGING_DIR", "")
	v.SetDefault("STAGING_MAX_BYTES", 100<<20)
	v.SetDefault("STAGING_SWEEP_AGE", "1h")
	v.SetDefault("UPLOAD_MAX_BYTES", 25<<20)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		AllowedOrigins:     splitList(v.GetString("ALLOWED_ORIGINS")),
		RedisURL:           v.GetString("REDIS_URL"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSBucketName:      v.GetString("AWS_BUCKET_NAME"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		S3Endpoint:         v.GetString("S3_ENDPOINT"),
		GatewayURL:         v.GetString("GATEWAY_URL"),
		GatewayAPIKey:      v.GetString("GATEWAY_API_KEY"),
		StagingDir:         v.GetString("STAGING_DIR"),
		StagingMaxBytes:    v.GetInt64("STAGING_MAX_BYTES"),
		UploadMaxBytes:     v.GetInt64("UPLOAD_MAX_BYTES"),
	}

	var err error
	if cfg.GatewayTimeout, err = parseDuration(v, "GATEWAY_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.StagingSweepAge, err = parseDuration(v, "STAGING_SWEEP_AGE"); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.AWSBucketName == "" {
		slog.Warn("AWS_BUCKET_NAME not set. Uploads and transcription will fail.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.StagingMaxBytes <= 0 || cfg.UploadMaxBytes <= 0 {
		return nil, fmt.Errorf("STAGING_MAX_BYTES and UPLOAD_MAX_BYTES must be positive")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid value for %s (%q): expected a positive duration", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
