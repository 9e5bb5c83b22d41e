package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog sources selectable through CATALOG_SOURCE.
const (
	CatalogMemory      = "memory"
	CatalogFile        = "file"
	CatalogObjectStore = "objectstore"
	CatalogPostgres    = "postgres"
)

var ErrMissingEnv = errors.New("missing env var")

type Config struct {
	Port        string
	AppEnv      string
	CORSOrigins []string

	CatalogSource    string
	CatalogFile      string
	CatalogObjectKey string
	DatabaseURL      string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	R2 R2Config

	RatesFile string
}

// R2Config holds the S3-compatible bucket settings.
type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Enabled reports whether enough is set to build a client.
func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// Load reads .env outside production, then the process environment.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function and checks the keys the
// selected catalog source needs. Server-only secrets are checked by
// RequireServerSecrets.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:             get("PORT", "8000"),
		AppEnv:           get("APP_ENV", "development"),
		CORSOrigins:      splitList(get("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		CatalogSource:    strings.ToLower(get("CATALOG_SOURCE", CatalogMemory)),
		CatalogFile:      get("CATALOG_FILE", ""),
		CatalogObjectKey: get("CATALOG_OBJECT_KEY", "catalog/destinations.json"),
		DatabaseURL:      get("DATABASE_URL", ""),

		JWTSecret:         get("JWT_SECRET", ""),
		AdminEmail:        get("ADMIN_EMAIL", ""),
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH", ""),

		R2: R2Config{
			Endpoint:      get("R2_ENDPOINT", ""),
			AccessKey:     get("R2_ACCESS_KEY", ""),
			SecretKey:     get("R2_SECRET_KEY", ""),
			Bucket:        get("R2_BUCKET_NAME", ""),
			PublicBaseURL: get("R2_PUBLIC_BASE_URL", ""),
		},

		RatesFile: get("RATES_FILE", ""),
	}

	var required []string

	switch cfg.CatalogSource {
	case CatalogMemory:
	case CatalogFile:
		required = append(required, "CATALOG_FILE")
	case CatalogObjectStore:
		required = append(required, "R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME")
	case CatalogPostgres:
		required = append(required, "DATABASE_URL")
	default:
		return cfg, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	for _, k := range required {
		if strings.TrimSpace(getenv(k)) == "" {
			return cfg, fmt.Errorf("%w: %s", ErrMissingEnv, k)
		}
	}

	return cfg, nil
}

// RequireServerSecrets checks the keys only the API server needs.
func (c Config) RequireServerSecrets() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET", ErrMissingEnv)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
