package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port string
	Env  string

	// DBPath is the sqlite file backing the kv store. Empty means run on
	// the in-memory store (demo mode: state dies with the process).
	DBPath string

	CORSOrigins []string

	// AllowAdminRegistration opens the POST /admin/register route.
	// Keep this off in production.
	AllowAdminRegistration bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		DBPath:                 getEnv("DB_PATH", "pos.db"),
		CORSOrigins:            strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		AllowAdminRegistration: getEnv("ALLOW_ADMIN_REGISTRATION", "") == "true",
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
