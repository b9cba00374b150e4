package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port     string
	DBPath   string
	LogLevel string

	AuthSecret string
	// EphemeralSecret is set when AUTH_SECRET was empty and a random one was generated.
	EphemeralSecret bool
	SessionTTL      time.Duration
	SecureCookies   bool

	OpenWeatherKey      string
	OpenWeatherEndpoint string

	GeminiAPIKey string
	GeminiModel  string
	LLMEndpoint  string
	LLMAPIKey    string
	LLMModel     string

	KBAllowedDomains  []string
	KBMaxBytesPerPage int

	CORSOrigins []string
	StaticDir   string
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", "agro_smart.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("OPENWEATHER_ENDPOINT", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("KB_MAX_BYTES_PER_PAGE", 1500000)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

// Load reads an optional .env file, then the process environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	cfg := AppConfig{
		Port:                v.GetString("PORT"),
		DBPath:              v.GetString("DB_PATH"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		AuthSecret:          v.GetString("AUTH_SECRET"),
		SessionTTL:          v.GetDuration("SESSION_TTL"),
		SecureCookies:       v.GetBool("SECURE_COOKIES"),
		OpenWeatherKey:      v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherEndpoint: v.GetString("OPENWEATHER_ENDPOINT"),
		GeminiAPIKey:        v.GetString("GEMINI_API_KEY"),
		GeminiModel:         v.GetString("GEMINI_MODEL"),
		LLMEndpoint:         v.GetString("LLM_ENDPOINT"),
		LLMAPIKey:           v.GetString("LLM_API_KEY"),
		LLMModel:            v.GetString("LLM_MODEL"),
		KBAllowedDomains:    splitList(v.GetString("KB_ALLOWED_DOMAINS")),
		KBMaxBytesPerPage:   v.GetInt("KB_MAX_BYTES_PER_PAGE"),
		CORSOrigins:         splitList(v.GetString("CORS_ORIGINS")),
		StaticDir:           v.GetString("STATIC_DIR"),
	}

	if cfg.SessionTTL <= 0 {
		return AppConfig{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.KBMaxBytesPerPage <= 0 {
		return AppConfig{}, fmt.Errorf("KB_MAX_BYTES_PER_PAGE must be positive, got %d", cfg.KBMaxBytesPerPage)
	}
	if cfg.AuthSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return AppConfig{}, err
		}
		cfg.AuthSecret = secret
		cfg.EphemeralSecret = true
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate auth secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
