package config

import (
	"os"
)

// Config holds all runtime settings, read from environment variables.
type Config struct {
	ListenAddr string
	// Base URL of the external café API, e.g. http://localhost:8000/api
	APIBaseURL string
	// Origin used to resolve origin-relative image references ("/uploads/x.jpg")
	// into absolute URLs before rendering.
	MediaOrigin string
	// SQLite file holding the persisted admin token.
	SessionPath string
	// Secret for signing the admin browser session cookie.
	CookieSecret string
	GinMode      string
}

func Load() Config {
	cfg := Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		APIBaseURL:   getEnv("CAFE_API_URL", "http://localhost:8000/api"),
		MediaOrigin:  getEnv("CAFE_MEDIA_ORIGIN", "http://localhost:8000"),
		SessionPath:  getEnv("SESSION_DB_PATH", "data/session.db"),
		CookieSecret: getEnv("COOKIE_SECRET", "KwenAdminCookieSecret"),
		GinMode:      os.Getenv("GIN_MODE"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
