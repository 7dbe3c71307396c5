package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://jobquest-73ad6.web.app",
	"https://jobquest-73ad6.firebaseapp.com",
}

type Config struct {
	Port        string
	Environment string
	// Session tokens
	TokenSecret string
	TokenTTL    time.Duration
	// Document store
	StoreDriver   string
	DBUrl         string
	MongoURI      string
	MongoDatabase string
	// CORS
	AllowedOrigins []string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitGlobalThreshold  int
	RateLimitSessionThreshold int
}

// IsProduction reports whether cookies must be issued cross-site (Secure + SameSite=None).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("NODE_ENV", getEnv("APP_ENV", "development")),
		TokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBUrl:         getEnv("DATABASE_URL", ""),
		MongoURI:      getEnv("MONGO_URI", mongoURIFromCredentials()),
		MongoDatabase: getEnv("MONGO_DATABASE", "jobquest"),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", defaultOrigins),

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitSessionThreshold: getEnvInt("RATE_LIMIT_SESSION_THRESHOLD", 20),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("config: ACCESS_TOKEN_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL_MINUTES must be positive")
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBUrl == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres store")
		}
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("config: MONGO_URI (or DB_USER/DB_PASS/DB_HOST) is required for the mongo store")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// mongoURIFromCredentials builds an Atlas SRV URI from split credentials.
func mongoURIFromCredentials() string {
	user, pass, host := os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_HOST")
	if user == "" || pass == "" || host == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, trimming blanks and trailing slashes.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
