// Package config loads service settings from configs/app.env and the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting of the service. Environment variables with the
// same names override the file.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	TileURL         string        `mapstructure:"TILE_URL"`
	TileAttribution string        `mapstructure:"TILE_ATTRIBUTION"`
	TileMaxZoom     int           `mapstructure:"TILE_MAX_ZOOM"`
	MapZoom         int           `mapstructure:"MAP_ZOOM"`
	HeatRadius      int           `mapstructure:"HEAT_RADIUS"`
	SessionTTL      time.Duration `mapstructure:"SESSION_TTL"`
	SweepInterval   time.Duration `mapstructure:"SWEEP_INTERVAL"`
	MaxSessions     int           `mapstructure:"MAX_SESSIONS"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":   ":8080",
	"DB_SOURCE":        "file:rockguard.db",
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "json",
	"GIN_MODE":         "release",
	"TILE_URL":         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	"TILE_ATTRIBUTION": "© OpenStreetMap contributors",
	"TILE_MAX_ZOOM":    19,
	"MAP_ZOOM":         13,
	"HEAT_RADIUS":      40,
	"SESSION_TTL":      "30m",
	"SWEEP_INTERVAL":   "1m",
	"MAX_SESSIONS":     10000,
	"SHUTDOWN_TIMEOUT": "10s",
}

// LoadConfig reads app.env from path. A missing file is not an error; the
// defaults and the environment still apply.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("config: SERVER_ADDRESS is required")
	}
	if c.TileURL == "" {
		return errors.New("config: TILE_URL is required")
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("config: MAX_SESSIONS must be positive, got %d", c.MaxSessions)
	}
	if c.MapZoom < 0 || c.MapZoom > c.TileMaxZoom {
		return fmt.Errorf("config: MAP_ZOOM %d outside [0,%d]", c.MapZoom, c.TileMaxZoom)
	}
	return nil
}
