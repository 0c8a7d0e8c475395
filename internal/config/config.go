// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // HOME_TERMINAL_TZ must resolve on hosts without a zoneinfo database

	"github.com/spf13/viper"

	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/hos"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `mapstructure:"PORT"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override the default.
	CORSOrigins []string `mapstructure:"-"`

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `mapstructure:"MAX_BODY_BYTES"`

	// RunMigrations applies pending goose migrations at startup.
	RunMigrations bool `mapstructure:"RUN_MIGRATIONS"`

	// GeocodeCachePath is the SQLite file used to cache geocoding results.
	// Empty disables the cache.
	GeocodeCachePath string `mapstructure:"GEOCODE_CACHE_PATH"`

	// ORSAPIKey enables OpenRouteService geocoding when set.
	ORSAPIKey  string `mapstructure:"ORS_API_KEY"`
	ORSBaseURL string `mapstructure:"ORS_BASE_URL"`

	// Log header defaults applied when a request leaves them blank.
	DefaultCarrierName   string `mapstructure:"DEFAULT_CARRIER_NAME"`
	DefaultVehicleNumber string `mapstructure:"DEFAULT_VEHICLE_NUMBER"`

	AverageSpeedMPH   float64       `mapstructure:"AVERAGE_SPEED_MPH"`
	CircuityFactor    float64       `mapstructure:"CIRCUITY_FACTOR"`
	FuelIntervalMiles float64       `mapstructure:"FUEL_INTERVAL_MILES"`
	FuelStopDuration  time.Duration `mapstructure:"FUEL_STOP_DURATION"`
	PickupDuration    time.Duration `mapstructure:"PICKUP_DURATION"`
	DropoffDuration   time.Duration `mapstructure:"DROPOFF_DURATION"`
	BreakAfterDriving time.Duration `mapstructure:"BREAK_AFTER_DRIVING"`
	BreakDuration     time.Duration `mapstructure:"BREAK_DURATION"`
	RestStatus        string        `mapstructure:"REST_STATUS"`
	HomeTerminalTZ    string        `mapstructure:"HOME_TERMINAL_TZ"`
}

var defaults = map[string]any{
	"PORT":                   "8080",
	"DATABASE_URL":           "",
	"LOG_LEVEL":              "info",
	"CORS_ORIGINS":           "http://localhost:5173",
	"MAX_BODY_BYTES":         int64(1 << 20),
	"RUN_MIGRATIONS":         true,
	"GEOCODE_CACHE_PATH":     "",
	"ORS_API_KEY":            "",
	"ORS_BASE_URL":           "",
	"DEFAULT_CARRIER_NAME":   "",
	"DEFAULT_VEHICLE_NUMBER": "",
	"AVERAGE_SPEED_MPH":      50.0,
	"CIRCUITY_FACTOR":        1.0,
	"FUEL_INTERVAL_MILES":    1000.0,
	"FUEL_STOP_DURATION":     "30m",
	"PICKUP_DURATION":        "1h",
	"DROPOFF_DURATION":       "1h",
	"BREAK_AFTER_DRIVING":    "8h",
	"BREAK_DURATION":         "30m",
	"REST_STATUS":            string(domain.StatusSleeperBerth),
	"HOME_TERMINAL_TZ":       "UTC",
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// naming the first value that cannot be parsed.
func Load() (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = splitCSV(v.GetString("CORS_ORIGINS"))

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if _, err := cfg.Rules(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Rules builds the planning rule set: the regulatory defaults with the
// operational values from cfg applied on top.
func (c Config) Rules() (hos.Rules, error) {
	loc, err := time.LoadLocation(c.HomeTerminalTZ)
	if err != nil {
		return hos.Rules{}, fmt.Errorf("HOME_TERMINAL_TZ: %w", err)
	}

	r := hos.DefaultRules()
	r.AverageSpeedMPH = c.AverageSpeedMPH
	r.CircuityFactor = c.CircuityFactor
	r.FuelIntervalMiles = c.FuelIntervalMiles
	r.FuelDuration = c.FuelStopDuration
	r.PickupDuration = c.PickupDuration
	r.DropoffDuration = c.DropoffDuration
	r.BreakAfterDriving = c.BreakAfterDriving
	r.BreakDuration = c.BreakDuration
	r.RestStatus = domain.DutyStatus(c.RestStatus)
	r.Location = loc

	if err := r.Validate(); err != nil {
		return hos.Rules{}, err
	}
	return r, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
