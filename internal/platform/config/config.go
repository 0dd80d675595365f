package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	RateLimit          string // limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
	MigrationsPath     string

	// SinglesGenericEntry names the catalog entry that buckets loose single cards.
	SinglesGenericEntry string
	// RuleTestLimit is the default number of matches returned by a rule dry run.
	RuleTestLimit int
	// AutoRulePriority is the priority given to rules created by save-product-COGS.
	AutoRulePriority int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SINGLES_GENERIC_ENTRY", "Single Cards")
	v.SetDefault("RULE_TEST_LIMIT", 20)
	v.SetDefault("AUTO_RULE_PRIORITY", 50)

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		SinglesGenericEntry: strings.TrimSpace(v.GetString("SINGLES_GENERIC_ENTRY")),
		RuleTestLimit:       v.GetInt("RULE_TEST_LIMIT"),
		AutoRulePriority:    v.GetInt("AUTO_RULE_PRIORITY"),
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
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.SinglesGenericEntry == "" {
		return nil, fmt.Errorf("SINGLES_GENERIC_ENTRY must not be empty")
	}
	if cfg.RuleTestLimit <= 0 {
		return nil, fmt.Errorf("RULE_TEST_LIMIT must be positive, got %d", cfg.RuleTestLimit)
	}

	return cfg, nil
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
