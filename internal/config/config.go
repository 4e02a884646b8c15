package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the engine daemon.
type Config struct {
	DatabaseURL string
	GenerateAt  string // HH:MM, daily instance-generation time
	Timezone    string
}

// Load reads configuration from FOCUSDAY_* environment variables with sane
// defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("focusday")
	v.AutomaticEnv()

	v.SetDefault("database_url", "focusday.db")
	v.SetDefault("generate_at", "00:05")
	v.SetDefault("timezone", "Local")

	cfg := Config{
		DatabaseURL: strings.TrimSpace(v.GetString("database_url")),
		GenerateAt:  strings.TrimSpace(v.GetString("generate_at")),
		Timezone:    strings.TrimSpace(v.GetString("timezone")),
	}

	if _, err := cfg.Location(); err != nil {
		return cfg, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
