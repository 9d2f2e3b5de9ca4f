package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Geolocation Geolocation   `yaml:"geolocation"`
	Forecast    Forecast      `yaml:"forecast"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
}

type Geolocation struct {
	URL       string `yaml:"url" env:"WEATHER_GEOLOCATION_URL" validate:"required,url"`
	Continent bool   `yaml:"continent" env:"WEATHER_CONTINENT"`
}

type Forecast struct {
	URL string `yaml:"url" env:"WEATHER_FORECAST_URL" validate:"required,url"`
}

// Load decodes the embedded defaults, then an optional CONFIG_FILE, then
// environment overrides (a .env file in the working directory is honoured).
func Load(defaults []byte) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := yaml.Unmarshal(defaults, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse default config: %w", err)
	}

	if configFile := os.Getenv("CONFIG_FILE"); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	}

	if err := cfg.fromEnv(); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("WEATHER_GEOLOCATION_URL"); v != "" {
		c.Geolocation.URL = v
	}
	if v := os.Getenv("WEATHER_FORECAST_URL"); v != "" {
		c.Forecast.URL = v
	}
	if v := os.Getenv("WEATHER_CONTINENT"); v != "" {
		continent, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WEATHER_CONTINENT: %w", err)
		}
		c.Geolocation.Continent = continent
	}
	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid WEATHER_TIMEOUT: %w", err)
		}
		c.Timeout = timeout
	}

	return nil
}
