package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the environment if one exists.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns fallback when key is unset and an error when it is set to
// something that is not an integer.
func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

// Server captures process level configuration.
type Server struct {
	Port         string
	Driver       string
	DBPath       string
	DatabaseURL  string
	SeedPath     string
	NearestLimit int
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	limit, err := GetInt("NEAREST_LIMIT", 10)
	if err != nil {
		return Server{}, err
	}
	if limit < 1 || limit > 100 {
		return Server{}, fmt.Errorf("config: NEAREST_LIMIT must be between 1 and 100, got %d", limit)
	}

	cfg := Server{
		Port:         Get("PORT", "8080"),
		Driver:       strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		SeedPath:     Get("SEED_PATH", "data/seeds/photos.json"),
		NearestLimit: limit,
	}

	switch cfg.Driver {
	case "sqlite", "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Server{}, fmt.Errorf("config: DATABASE_URL is required for DB_DRIVER=postgres")
		}
	default:
		return Server{}, fmt.Errorf("config: unknown DB_DRIVER %q", cfg.Driver)
	}

	return cfg, nil
}
