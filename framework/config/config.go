package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Container ContainerConfig
	Log       LogConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	Port  string
}

// ContainerConfig controls how the application builds its beans.
type ContainerConfig struct {
	// Eager builds every candidate at boot instead of on first use.
	Eager bool
	// Strict makes a failed eager build abort boot; otherwise it is logged
	// and beans are built lazily.
	Strict bool
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "GoBeans"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			Port:  env("APP_PORT", "8000"),
		},
		Container: ContainerConfig{
			Eager:  envBool("CONTAINER_EAGER", true),
			Strict: envBool("CONTAINER_STRICT", true),
		},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "text"),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
