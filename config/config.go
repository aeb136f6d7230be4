package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"business-simulator/domain"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	OpenAIAPIKey string
	OpenAIModel  string

	ProjectionMonths int
}

// Load reads configuration from the environment, after loading envFile
// when it exists. Missing keys take their defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		CacheTTL:          v.GetDuration("CACHE_TTL"),
		RateLimitCapacity: v.GetInt("RATE_LIMIT_CAPACITY"),
		RateLimitWindow:   v.GetDuration("RATE_LIMIT_WINDOW"),
		OpenAIAPIKey:      v.GetString("OPENAI_API_KEY"),
		OpenAIModel:       v.GetString("OPENAI_MODEL"),
		ProjectionMonths:  v.GetInt("PROJECTION_MONTHS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("RATE_LIMIT_CAPACITY", 5)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("PROJECTION_MONTHS", 24)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("http address must not be empty")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative")
	}
	if c.RateLimitCapacity <= 0 {
		return fmt.Errorf("rate limit capacity must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}
	if c.ProjectionMonths <= 0 || c.ProjectionMonths > domain.MaxProjectionMonths {
		return fmt.Errorf("projection months must be between 1 and %d", domain.MaxProjectionMonths)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("redis db cannot be negative")
	}
	return nil
}
