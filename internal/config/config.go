package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime settings, sourced from the environment.
type Config struct {
	Port string

	// Auth for the web shell. Empty disables bearer auth.
	APIKey string

	// Cloud rendering.
	CredentialsFile string
	SlidesAPIURL    string

	// Upload limits.
	MaxUploadBytes int64

	// Mapping defaults.
	MaxBullets      int
	MaxBulletLength int
	DefaultTheme    string
	DefaultTemplate string

	// Extra theme/template definitions.
	ThemesDir string

	// Local artifacts.
	OutputDir string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("SLIDEGEN_API_KEY"),

		CredentialsFile: envOr("GOOGLE_CREDENTIALS_FILE", "token.json"),
		SlidesAPIURL:    os.Getenv("SLIDES_API_URL"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		MaxBullets:      envInt("MAX_BULLETS", 7),
		MaxBulletLength: envInt("MAX_BULLET_LENGTH", 120),
		DefaultTheme:    envOr("DEFAULT_THEME", "black"),
		DefaultTemplate: envOr("DEFAULT_TEMPLATE", "simple"),

		ThemesDir: envOr("THEMES_DIR", "themes"),

		OutputDir: envOr("OUTPUT_DIR", "output"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.MaxBullets <= 0 {
		cfg.MaxBullets = 7
	}
	if cfg.MaxBulletLength <= 0 {
		cfg.MaxBulletLength = 120
	}

	return cfg
}

// Validate checks settings that have no workable fallback.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.DefaultTheme == "" {
		return fmt.Errorf("DEFAULT_THEME must not be empty")
	}
	if c.DefaultTemplate == "" {
		return fmt.Errorf("DEFAULT_TEMPLATE must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
