package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// GitHub
	GitHubAPIBaseURL string
	GitHubToken      string // optional, raises the unauthenticated rate limit

	// Neo4j (memory store)
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	// HTTP client
	HTTPTimeoutSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		GitHubAPIBaseURL:   getEnv("GITHUB_API_BASE_URL", "https://api.github.com"),
		GitHubToken:        getEnv("GITHUB_TOKEN", ""),
		Neo4jURI:           getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:          getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:      getEnv("NEO4J_PASSWORD", "password"),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.GitHubAPIBaseURL == "" {
		return fmt.Errorf("GITHUB_API_BASE_URL is required")
	}
	if c.Neo4jURI == "" {
		return fmt.Errorf("NEO4J_URI is required")
	}
	if c.Neo4jUser == "" {
		return fmt.Errorf("NEO4J_USER is required")
	}
	if c.Neo4jPassword == "" {
		return fmt.Errorf("NEO4J_PASSWORD is required")
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	// GitHub token is optional for development
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
