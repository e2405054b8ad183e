// File: internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything the service needs at startup. Load fails fast on
// anything missing or malformed; nothing is re-read later.
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionSecret string
	ListenAddr    string
	BaseURL       string

	GoogleClientID     string
	GoogleClientSecret string
}

// clientSecretFile matches the provider's credential download:
// {"web":{"client_id":"...","client_secret":"..."}}
type clientSecretFile struct {
	Web struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"web"`
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("environment variable %s not set", key)
	}
	return v, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment (plus an optional .env file) and the
// provider credential file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: getEnvOrDefault("LISTEN_ADDR", ":8080"),
		BaseURL:    getEnvOrDefault("BASE_URL", "http://localhost:8080"),
	}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisAddr, err = requireEnv("REDIS_ADDR"); err != nil {
		return nil, err
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvOrDefault("REDIS_DB", "0")
	if cfg.RedisDB, err = strconv.Atoi(redisDB); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
	}
	if cfg.SessionSecret, err = requireEnv("SESSION_SECRET"); err != nil {
		return nil, err
	}

	secretPath := getEnvOrDefault("GOOGLE_CLIENT_SECRET_FILE", "client_secret.json")
	if err := cfg.readClientSecret(secretPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readClientSecret(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading client secret file: %w", err)
	}
	var f clientSecretFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parsing client secret file: %w", err)
	}
	if f.Web.ClientID == "" || f.Web.ClientSecret == "" {
		return fmt.Errorf("client secret file %s is missing client_id or client_secret", path)
	}
	c.GoogleClientID = f.Web.ClientID
	c.GoogleClientSecret = f.Web.ClientSecret
	return nil
}

// RedirectURL is where the provider sends the browser back.
func (c *Config) RedirectURL() string {
	return c.BaseURL + "/google/callback"
}
