package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Discord  DiscordConfig
	Admin    AdminConfig
	Scrape   ScrapeConfig
	Identity IdentityConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	SessionSecret   string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// DiscordConfig holds identity-provider settings
type DiscordConfig struct {
	ClientID     string
	ClientSecret string
	APIBaseURL   string
	TokenURL     string
	CDNBaseURL   string
	Timeout      time.Duration
}

// AdminConfig holds the static admin allowlists
type AdminConfig struct {
	DiscordIDs []string
	Emails     []string
}

// ScrapeConfig holds preview-media extraction settings
type ScrapeConfig struct {
	Timeout          time.Duration
	UserAgent        string
	PlaceholderImage string
}

// IdentityConfig holds author-resolution settings
type IdentityConfig struct {
	ProfileStaleness time.Duration
	CacheSize        int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			SessionSecret:   getEnv("SESSION_SECRET", ""),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "content_archive"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Discord: DiscordConfig{
			ClientID:     getEnv("DISCORD_CLIENT_ID", ""),
			ClientSecret: getEnv("DISCORD_CLIENT_SECRET", ""),
			APIBaseURL:   getEnv("DISCORD_API_BASE_URL", "https://discord.com/api"),
			TokenURL:     getEnv("DISCORD_TOKEN_URL", "https://discord.com/api/oauth2/token"),
			CDNBaseURL:   getEnv("DISCORD_CDN_BASE_URL", "https://cdn.discordapp.com"),
			Timeout:      getDurationEnv("DISCORD_TIMEOUT", 8*time.Second),
		},
		Admin: AdminConfig{
			DiscordIDs: getListEnv("ADMIN_DISCORD_IDS"),
			Emails:     getListEnv("ADMIN_EMAILS"),
		},
		Scrape: ScrapeConfig{
			Timeout:          getDurationEnv("SCRAPE_TIMEOUT", 8*time.Second),
			UserAgent:        getEnv("SCRAPE_USER_AGENT", defaultUserAgent),
			PlaceholderImage: getEnv("PLACEHOLDER_IMAGE_URL", "/images/article-placeholder.svg"),
		},
		Identity: IdentityConfig{
			ProfileStaleness: getDurationEnv("PROFILE_STALENESS", 24*time.Hour),
			CacheSize:        getIntEnv("AUTHOR_CACHE_SIZE", 512),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Many platforms serve stripped markup to clients they do not recognize
// as browsers, so the scraper identifies as one.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Identity.CacheSize <= 0 {
		return fmt.Errorf("AUTHOR_CACHE_SIZE must be positive")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
