// Package config holds server configuration for the campus front-end.
//
// Precedence, lowest to highest: built-in defaults, YAML config file,
// environment variables, command-line flags (applied by cmd/server).
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the campus web server.
type ServerConfig struct {
	Addr          string `yaml:"addr"`           // Listen address (default ":8080")
	APIBaseURL    string `yaml:"api_base_url"`   // Backend REST API base URL
	LogLevel      string `yaml:"log_level"`      // debug, info, warn, error
	LogFormat     string `yaml:"log_format"`     // text, json
	DBPath        string `yaml:"db_path"`        // SQLite session DB path (":memory:" for tests)
	SecureCookies bool   `yaml:"secure_cookies"` // Set Secure on session cookies (HTTPS deployments)
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:       ":8080",
		APIBaseURL: "http://localhost:5208",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds a ServerConfig from defaults, an optional YAML file, and
// environment variables. A .env file in the working directory is loaded
// first when present (local development convenience).
func Load(path string) (ServerConfig, error) {
	_ = godotenv.Load()

	cfg := DefaultServerConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *ServerConfig) {
	if v := os.Getenv("CAMPUS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CAMPUS_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("CAMPUS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CAMPUS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CAMPUS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CAMPUS_SECURE_COOKIES"); v == "1" || v == "true" {
		cfg.SecureCookies = true
	}
}
