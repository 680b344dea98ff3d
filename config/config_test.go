package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("MEALCRAFT_SERVER_PORT")
		os.Unsetenv("MEALCRAFT_SERVER_ENVIRONMENT")
		os.Unsetenv("MEALCRAFT_SCALING_MAX_INGREDIENTS")
		os.Unsetenv("MEALCRAFT_SCALING_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("MEALCRAFT_CACHE_TYPE")
		os.Unsetenv("MEALCRAFT_CACHE_TTL")
		os.Unsetenv("MEALCRAFT_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Scaling.MaxIngredients != 200 {
			t.Errorf("Scaling.MaxIngredients = %d, want 200", cfg.Scaling.MaxIngredients)
		}
		if cfg.Scaling.EnableDebugLogging {
			t.Error("Scaling.EnableDebugLogging = true, want false")
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if len(cfg.Server.AllowedOrigins) == 0 {
			t.Error("Server.AllowedOrigins is empty, want localhost defaults")
		}
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MEALCRAFT_SERVER_PORT", "9090")
		os.Setenv("MEALCRAFT_SERVER_ENVIRONMENT", "production")
		os.Setenv("MEALCRAFT_CACHE_TTL", "1h")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
	})

	t.Run("rejects unsupported cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MEALCRAFT_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for unsupported cache type")
		}
	})

	t.Run("rejects non-positive max ingredients", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MEALCRAFT_SCALING_MAX_INGREDIENTS", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for zero max_ingredients")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MEALCRAFT_RATELIMIT_PER_IP", "-1")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for negative per_ip")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080", Environment: "development"},
			Scaling:   ScalingConfig{MaxIngredients: 200},
			Cache:     CacheConfig{Type: "memory", TTL: time.Hour},
			RateLimit: RateLimitConfig{PerIP: 120},
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects zero cache TTL", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.TTL = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero TTL")
		}
	})

	t.Run("rejects unknown cache type", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "memcached"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for unknown cache type")
		}
	})
}
