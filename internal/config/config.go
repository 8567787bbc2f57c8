package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderFirebase = "firebase"
	ProviderSupabase = "supabase"

	// Google publishes the signing keys for Firebase ID tokens here.
	DefaultFirebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	MongoDBURI             string
	DBUser                 string
	DBPass                 string
	DatabaseName           string
	EventsCollection       string
	JoinedEventsCollection string

	IdentityProvider  string
	FirebaseProjectID string
	FirebaseJWKSURL   string
	SupabaseURL       string
	SupabaseAnonKey   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AllowedOrigins        []string
	StrictDeleteOwnership bool
	RequestTimeout        time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "3000"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),

		MongoDBURI:             os.Getenv("MONGODB_URI"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPass:                 os.Getenv("DB_PASS"),
		DatabaseName:           getEnvWithDefault("MONGODB_DATABASE", "Social-development"),
		EventsCollection:       getEnvWithDefault("EVENTS_COLLECTION", "new-events"),
		JoinedEventsCollection: getEnvWithDefault("JOINED_EVENTS_COLLECTION", "joined-events"),

		IdentityProvider:  strings.ToLower(getEnvWithDefault("IDENTITY_PROVIDER", ProviderFirebase)),
		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseJWKSURL:   getEnvWithDefault("FIREBASE_JWKS_URL", DefaultFirebaseJWKSURL),
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:   os.Getenv("SUPABASE_URL_ANON_KEY"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		AllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	strict, err := strconv.ParseBool(getEnvWithDefault("STRICT_DELETE_OWNERSHIP", "false"))
	if err != nil {
		return nil, fmt.Errorf("STRICT_DELETE_OWNERSHIP must be a boolean: %w", err)
	}
	cfg.StrictDeleteOwnership = strict

	timeout, err := time.ParseDuration(getEnvWithDefault("REQUEST_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be a positive duration")
	}
	cfg.RequestTimeout = timeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MongoDBURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if strings.Contains(c.MongoDBURI, "<username>") && c.DBUser == "" {
		return fmt.Errorf("DB_USER is required by MONGODB_URI")
	}
	if strings.Contains(c.MongoDBURI, "<password>") && c.DBPass == "" {
		return fmt.Errorf("DB_PASS is required by MONGODB_URI")
	}

	switch c.IdentityProvider {
	case ProviderFirebase:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firebase identity provider")
		}
	case ProviderSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for the supabase identity provider")
		}
		if c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL_ANON_KEY is required for the supabase identity provider")
		}
	default:
		return fmt.Errorf("unsupported IDENTITY_PROVIDER: %s (expected firebase or supabase)", c.IdentityProvider)
	}

	set := 0
	for _, v := range []string{c.CloudinaryCloudName, c.CloudinaryAPIKey, c.CloudinaryAPISecret} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET must be set together")
	}

	return nil
}

// MongoURI fills the <username> and <password> placeholders of MONGODB_URI.
func (c *Config) MongoURI() string {
	uri := strings.Replace(c.MongoDBURI, "<username>", c.DBUser, 1)
	return strings.Replace(uri, "<password>", c.DBPass, 1)
}

func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != ""
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
