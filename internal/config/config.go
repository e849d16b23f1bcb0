package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Weather  WeatherConfig
	AI       AIConfig
	Auth     AuthConfig
	Sheets   SheetsConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// WeatherConfig contains credentials and options for the OpenWeather lookup.
// An empty APIKey is allowed; failed lookups fall back to the mock snapshot.
type WeatherConfig struct {
	APIKey      string
	BaseURL     string
	DefaultCity string
}

// AIConfig holds settings for the generative-text provider. An empty key
// disables live generation and every advisory takes the deterministic fallback.
type AIConfig struct {
	GeminiKey string
	Model     string
}

// AuthConfig carries the admin allow-list used for role resolution.
type AuthConfig struct {
	AdminEmails []string
}

// SheetsConfig contains configuration for the optional admin card export.
// Leaving either field empty disables the export endpoint.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// SnapshotConfig holds the daily advisory snapshot scheduler settings.
type SnapshotConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "soilcard"),
		},
		Weather: WeatherConfig{
			APIKey:      os.Getenv("OPENWEATHER_API_KEY"),
			BaseURL:     getenvWithDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
			DefaultCity: getenvWithDefault("WEATHER_DEFAULT_CITY", "Delhi"),
		},
		AI: AIConfig{
			GeminiKey: os.Getenv("GEMINI_API_KEY"),
			Model:     getenvWithDefault("GEMINI_MODEL", "gemini-pro"),
		},
		Auth: AuthConfig{
			AdminEmails: splitList(getenvWithDefault("ADMIN_EMAILS", "admin@greencoders.com")),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 6 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Weather.BaseURL == "" {
		return errors.New("OPENWEATHER_BASE_URL must not be empty")
	}

	if c.Weather.DefaultCity == "" {
		return errors.New("WEATHER_DEFAULT_CITY must not be empty")
	}

	if c.AI.Model == "" {
		return errors.New("GEMINI_MODEL must not be empty")
	}

	if len(c.Auth.AdminEmails) == 0 {
		return errors.New("ADMIN_EMAILS must list at least one address")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	if c.Snapshot.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
