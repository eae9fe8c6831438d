package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	// LoginRateLimit uses the limiter format, e.g. "5-M" for five per minute.
	LoginRateLimit string
	MigrationsPath string

	// TracingEndpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	TracingEndpoint string
	ServiceName     string

	// PolicyDefaults seed the library_config row the first time the service starts.
	// Later changes go through the library-config endpoint.
	PolicyDefaults domain.LibraryPolicy
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "library-management-app")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_SERVICE_NAME", "library-backend")
	v.SetDefault("LIBRARY_MAX_BORROW_DAYS", 14)
	v.SetDefault("LIBRARY_FINE_PER_DAY", "1.00")
	v.SetDefault("LIBRARY_MAX_BOOKS_PER_MEMBER", 3)

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),

		TracingEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:     v.GetString("OTEL_SERVICE_NAME"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "library-management-app"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "library-backend"
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	finePerDay, err := decimal.NewFromString(v.GetString("LIBRARY_FINE_PER_DAY"))
	if err != nil {
		return nil, fmt.Errorf("invalid LIBRARY_FINE_PER_DAY: %w", err)
	}
	cfg.PolicyDefaults = domain.LibraryPolicy{
		MaxBorrowDaysWithoutFine: v.GetInt("LIBRARY_MAX_BORROW_DAYS"),
		FinePerDay:               finePerDay,
		MaxBooksPerMember:        v.GetInt("LIBRARY_MAX_BOOKS_PER_MEMBER"),
	}
	if err := cfg.PolicyDefaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid library policy defaults: %w", err)
	}

	return cfg, nil
}
