// README: Config loader (viper): env vars with an optional config.yaml.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Firebase project for both auth verification and Firestore.
	FirebaseProjectID   string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentials string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	BookingsCollection  string `mapstructure:"BOOKINGS_COLLECTION"`

	// Postgres DSN for tariff rows. Empty means the built-in default
	// tariff applies.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	// Geocoding.
	MapsAPIKey       string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GeocodeRegion    string `mapstructure:"GEOCODE_REGION"`
	SearchMinChars   int    `mapstructure:"SEARCH_MIN_CHARS"`
	SearchMaxResults int    `mapstructure:"SEARCH_MAX_RESULTS"`
	SearchDebounceMs int    `mapstructure:"SEARCH_DEBOUNCE_MS"`
}

func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("BOOKINGS_COLLECTION", "bookings")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("GOOGLE_MAPS_API_KEY", "")
	viper.SetDefault("GEOCODE_REGION", "ke")
	viper.SetDefault("SEARCH_MIN_CHARS", 3)
	viper.SetDefault("SEARCH_MAX_RESULTS", 5)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 300)

	// Config file is optional; env vars alone are enough.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
