package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port               string        // Service port
	BaseURL            string        // Externally visible base URL, used to build the OAuth redirect URI
	GoogleClientID     string        // OAuth client ID registered with Google
	GoogleClientSecret string        // OAuth client secret
	KratosURL          string        // Kratos frontend API URL (session provider)
	CacheTTL           time.Duration // Session cache TTL
	UpstreamTimeout    time.Duration // Timeout for Google/YouTube calls
	BackendTokenSecret string        // Secret for signing backend JWT tokens
	BackendTokenIssuer string        // JWT issuer claim
	BackendTokenAud    string        // JWT audience claim
	BackendTokenTTL    time.Duration // JWT token TTL
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:               getEnv("PORT", "8889"),
		BaseURL:            getEnv("BASE_URL", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		KratosURL:          getEnv("KRATOS_URL", "http://kratos:4433"),
		CacheTTL:           5 * time.Minute,
		UpstreamTimeout:    10 * time.Second,
		BackendTokenSecret: getEnv("BACKEND_TOKEN_SECRET", ""),
		BackendTokenIssuer: getEnv("BACKEND_TOKEN_ISSUER", "channel-hub"),
		BackendTokenAud:    getEnv("BACKEND_TOKEN_AUDIENCE", "dashboard"),
		BackendTokenTTL:    5 * time.Minute,
	}

	// Parse CACHE_TTL if provided
	if cacheTTLStr := os.Getenv("CACHE_TTL"); cacheTTLStr != "" {
		duration, err := time.ParseDuration(cacheTTLStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL format: %w", err)
		}
		config.CacheTTL = duration
	}

	// Parse UPSTREAM_TIMEOUT if provided
	if timeoutStr := os.Getenv("UPSTREAM_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT format: %w", err)
		}
		config.UpstreamTimeout = duration
	}

	// Parse BACKEND_TOKEN_TTL if provided
	if ttlStr := os.Getenv("BACKEND_TOKEN_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BACKEND_TOKEN_TTL format: %w", err)
		}
		config.BackendTokenTTL = duration
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid. The OAuth credentials and
// base URL are hard requirements: without them the authorization URL would
// interpolate empty strings and fail only at the provider.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL cannot be empty")
	}

	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("BASE_URL must not end with a slash")
	}

	if c.GoogleClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID cannot be empty")
	}

	if c.GoogleClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET cannot be empty")
	}

	if c.KratosURL == "" {
		return fmt.Errorf("KRATOS_URL cannot be empty")
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	return nil
}

// RedirectURI is the OAuth redirect URI. Both the authorization request and
// the token exchange must send this exact value, so it has a single source.
func (c *Config) RedirectURI() string {
	return c.BaseURL + "/api/youtube/auth"
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
