package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GoogleAPIKey     string
	GoogleMapsAPIKey string
	GeminiModel      string

	GeocodeCacheTTL      time.Duration
	CacheCleanupInterval time.Duration

	// StrictModelOutput turns unparseable model output into a 502 instead
	// of the default degraded 200 response.
	StrictModelOutput bool

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "place-history-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("HTTP_TIMEOUT", 60)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash-latest")
	v.SetDefault("GEOCODE_CACHE_TTL", 10*time.Minute)
	v.SetDefault("CACHE_CLEANUP_INTERVAL", 60*time.Second)
	v.SetDefault("STRICT_MODEL_OUTPUT", false)
	v.SetDefault("DATABASE_PORT", "5432")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		GoogleAPIKey:         v.GetString("GOOGLE_API_KEY"),
		GoogleMapsAPIKey:     v.GetString("GOOGLE_MAPS_API_KEY"),
		GeminiModel:          v.GetString("GEMINI_MODEL"),
		GeocodeCacheTTL:      v.GetDuration("GEOCODE_CACHE_TTL"),
		CacheCleanupInterval: v.GetDuration("CACHE_CLEANUP_INTERVAL"),
		StrictModelOutput:    v.GetBool("STRICT_MODEL_OUTPUT"),
		DBName:               v.GetString("DATABASE_NAME"),
		DBPassword:           v.GetString("DATABASE_PASSWORD"),
		DBUser:               v.GetString("DATABASE_USER"),
		DBPort:               v.GetString("DATABASE_PORT"),
		DBHost:               v.GetString("DATABASE_HOST"),
	}

	return config, nil
}

// ValidateCredentials fails closed: the server must not serve traffic when
// either upstream credential is missing.
func (c *Config) ValidateCredentials() error {
	if c.GoogleAPIKey == "" {
		return errors.New("GOOGLE_API_KEY is not set")
	}
	if c.GoogleMapsAPIKey == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is not set")
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// AuditLogEnabled reports whether the optional query audit log should be
// wired up. The database is an enrichment, not a hard dependency.
func (c *Config) AuditLogEnabled() bool {
	return c.DBHost != ""
}
