package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the service configuration, read from environment variables
// with a .env file overlay.
type Config struct {
	// WeatherAPIKey authenticates against the forecast provider.
	WeatherAPIKey string `validate:"required"`

	// DefaultLocation is the fallback query used when geolocation fails.
	DefaultLocation string `validate:"required"`

	Port string `validate:"required,numeric"`

	// GeoTimeout bounds the geolocation attempt before falling back.
	GeoTimeout time.Duration `validate:"gt=0"`

	// RefreshInterval is the background snapshot refresh cadence.
	RefreshInterval time.Duration `validate:"gt=0"`

	// NotifyTTL is the default notification display duration.
	NotifyTTL time.Duration `validate:"gt=0"`

	// NotifyWebhookURL, when set, enables native notification delivery.
	NotifyWebhookURL string `validate:"omitempty,url"`

	// DBPath locates the SQLite notification history database.
	DBPath string `validate:"required"`

	// UpstreamRPS caps outbound provider calls per second.
	UpstreamRPS float64 `validate:"gt=0"`
}

// Load reads configuration from the environment with defaults, then
// validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}

	cfg := &Config{
		WeatherAPIKey:    os.Getenv("WEATHER_API_KEY"),
		DefaultLocation:  getenvDefault("DEFAULT_LOCATION", "London"),
		Port:             getenvDefault("PORT", "8080"),
		NotifyWebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		DBPath:           getenvDefault("DB_PATH", "data/glasscast.db"),
		UpstreamRPS:      getenvFloat("UPSTREAM_RPS", 1),
	}

	var err error
	if cfg.GeoTimeout, err = getenvDuration("GEOLOCATE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.NotifyTTL, err = getenvDuration("NOTIFY_TTL", 5*time.Second); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
