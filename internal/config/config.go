package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int
	AppPort        string
	AppEnv         string
	JWTSecret      string
	RedisAddr      string
	RedisPassword  string
	CORSOrigins    []string
	IdempotencyTTL time.Duration
	InternalKey    string
}

const (
	defaultAppPort        = "8080"
	defaultIdempotencyTTL = 10 * time.Minute
	defaultDBSSLMode      = "disable"
	defaultDBMaxOpenConns = 25
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		DBSSLMode:      os.Getenv("DB_SSLMODE"),
		DBMaxOpenConns: parseInt(os.Getenv("DB_MAX_OPEN_CONNS"), defaultDBMaxOpenConns),
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
		IdempotencyTTL: parseDuration(os.Getenv("IDEMPOTENCY_TTL"), defaultIdempotencyTTL),
		InternalKey:    os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = defaultDBSSLMode
	}
	if cfg.AppPort == "" {
		cfg.AppPort = defaultAppPort
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	return cfg
}

// IsProduction reports whether the app runs with production logging and gin release mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
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

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
