package config

import "os"

// Config holds every external credential and setting the service needs.
// It is built once at startup and handed to each client explicitly, so no
// component reads the environment on its own.
type Config struct {
	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string

	TavilyAPIKey  string
	TavilyBaseURL string

	Port        string
	GinMode     string
	DatabaseURL string
	FrontendURL string
}

// Load reads the process environment into a Config. Call godotenv.Load
// beforehand if a .env file should be honored.
func Load() *Config {
	amadeusBase := "https://api.amadeus.com" // production
	if env := os.Getenv("AMADEUS_ENV"); env == "" || env == "test" {
		amadeusBase = "https://test.api.amadeus.com" // free test environment
	}

	return &Config{
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		AmadeusBaseURL:      amadeusBase,
		TavilyAPIKey:        os.Getenv("TAVILY_API_KEY"),
		TavilyBaseURL:       getEnv("TAVILY_BASE_URL", "https://api.tavily.com"),
		Port:                getEnv("PORT", "8080"),
		GinMode:             os.Getenv("GIN_MODE"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		FrontendURL:         os.Getenv("FRONTEND_URL"),
	}
}

// HasAmadeus reports whether flight search credentials are configured.
func (c *Config) HasAmadeus() bool {
	return c.AmadeusClientID != "" && c.AmadeusClientSecret != ""
}

// HasTavily reports whether the web-search key is configured. Without it
// both IATA resolution and POI search are disabled.
func (c *Config) HasTavily() bool {
	return c.TavilyAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
