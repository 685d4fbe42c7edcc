package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	Port          string
	DatabaseURL   string
	DatabaseName  string
}

// Load loads the configuration from environment variables.
// A missing YOUTUBE_API_KEY is not an error: the stats endpoint reports
// an unconfigured status instead of failing at startup.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	return &Config{
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DatabaseName:  os.Getenv("DATABASE_NAME"),
	}, nil
}

// APIKeyConfigured reports whether a YouTube API key is available.
func (c *Config) APIKeyConfigured() bool {
	return c.YouTubeAPIKey != ""
}
