package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config carries process configuration resolved from the environment.
type Config struct {
	Environment string
	HTTPAddr    string
	DatabaseDSN string
	Bootstrap   BootstrapConfig
}

// BootstrapConfig controls startup seeding behavior.
type BootstrapConfig struct {
	EnsureDefaultAssociation bool
	SeedReportData           bool
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool { return c.Environment == "production" }

// Load resolves Config from the environment, reading a local .env first
// when present. Missing keys fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Environment: getEnv("COVENANT_ENV", "development"),
		HTTPAddr:    getEnv("COVENANT_HTTP_ADDR", ":8080"),
		DatabaseDSN: getEnv("COVENANT_DATABASE_DSN", "file:covenant.db?_fk=1"),
		Bootstrap: BootstrapConfig{
			EnsureDefaultAssociation: getEnvBool("COVENANT_BOOTSTRAP_ASSOCIATION", true),
			SeedReportData:           getEnvBool("COVENANT_BOOTSTRAP_REPORTS", true),
		},
	}
}

// Module provides Config to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
