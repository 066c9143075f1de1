// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// It is loaded once at startup and must not be mutated afterwards.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// DBDriver is the database driver to use ("postgres" or "mysql").
	DBDriver string
	// DBHost is the database server host.
	DBHost string
	// DBPort is the database server port.
	DBPort int
	// DBDatabase is the database name.
	DBDatabase string
	// DBUsername is the database user.
	DBUsername string
	// DBPassword is the database password.
	DBPassword string
	// DBConnectionString overrides the connection string built from the DB* fields when set.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// JWTSecret is the shared HMAC key used to sign access tokens.
	JWTSecret string
	// JWTAlgorithm is the HMAC signing algorithm name (HS256, HS384 or HS512).
	JWTAlgorithm string
	// AccessTokenExpiration is the lifetime of an issued access token.
	AccessTokenExpiration time.Duration
	// SecretHashPolicy selects the Argon2id cost profile ("interactive" or "moderate").
	SecretHashPolicy string

	// HealthCheckTimeout bounds the database probe performed by the health endpoint.
	HealthCheckTimeout time.Duration

	// RateLimitEnabled indicates whether per-client rate limiting is enabled on item routes.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for per-client rate limiting.
	RateLimitBurst int

	// RateLimitTokenEnabled indicates whether rate limiting for the token endpoint is enabled.
	RateLimitTokenEnabled bool
	// RateLimitTokenRequestsPerSec is the number of requests allowed per second for the token endpoint.
	RateLimitTokenRequestsPerSec float64
	// RateLimitTokenBurst is the burst size for the token endpoint rate limiting.
	RateLimitTokenBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// AdminClientID and AdminClientSecret seed the bootstrap admin client.
	AdminClientID     string
	AdminClientSecret string
	// ExternalClientID and ExternalClientSecret seed the bootstrap non-admin client.
	ExternalClientID     string
	ExternalClientSecret string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Database configuration
		DBDriver:             env.GetString("DB_DRIVER", "postgres"),
		DBHost:               env.GetString("DB_HOST", "localhost"),
		DBPort:               env.GetInt("DB_PORT", 5432),
		DBDatabase:           env.GetString("DB_DATABASE", "items"),
		DBUsername:           env.GetString("DB_USERNAME", "user"),
		DBPassword:           env.GetString("DB_PASSWORD", "password"),
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", ""),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Auth
		JWTSecret:             env.GetString("JWT_SECRET", ""),
		JWTAlgorithm:          strings.ToUpper(env.GetString("JWT_ALGORITHM", "HS256")),
		AccessTokenExpiration: env.GetDuration("ACCESS_TOKEN_EXPIRE_MINUTES", 30, time.Minute),
		SecretHashPolicy:      env.GetString("SECRET_HASH_POLICY", "moderate"),

		// Health
		HealthCheckTimeout: env.GetDuration("HEALTH_CHECK_TIMEOUT_SECONDS", 2, time.Second),

		// Rate Limiting for authenticated clients
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Rate Limiting for Token Endpoint (IP-based, unauthenticated)
		RateLimitTokenEnabled:        env.GetBool("RATE_LIMIT_TOKEN_ENABLED", true),
		RateLimitTokenRequestsPerSec: env.GetFloat64("RATE_LIMIT_TOKEN_REQUESTS_PER_SEC", 5.0),
		RateLimitTokenBurst:          env.GetInt("RATE_LIMIT_TOKEN_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "itemsapi"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Bootstrap clients
		AdminClientID:        env.GetString("ADMIN_CLIENT_ID", ""),
		AdminClientSecret:    env.GetString("ADMIN_CLIENT_SECRET", ""),
		ExternalClientID:     env.GetString("EXTERNAL_CLIENT_ID", ""),
		ExternalClientSecret: env.GetString("EXTERNAL_CLIENT_SECRET", ""),
	}
}

// Validate reports configuration that would make the server unsafe to start.
// JWTAlgorithm is normalized to upper case.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	c.JWTAlgorithm = strings.ToUpper(strings.TrimSpace(c.JWTAlgorithm))
	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported JWT_ALGORITHM %q (valid options: HS256, HS384, HS512)", c.JWTAlgorithm)
	}

	if c.AccessTokenExpiration <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be greater than zero")
	}

	switch c.DBDriver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (valid options: postgres, mysql)", c.DBDriver)
	}

	return nil
}

// DSN returns the driver specific connection string.
// DBConnectionString wins when it is set.
func (c *Config) DSN() string {
	if c.DBConnectionString != "" {
		return c.DBConnectionString
	}

	hostPort := net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))

	if c.DBDriver == "mysql" {
		return fmt.Sprintf(
			"%s:%s@tcp(%s)/%s?parseTime=true&multiStatements=true",
			c.DBUsername,
			c.DBPassword,
			hostPort,
			c.DBDatabase,
		)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUsername, c.DBPassword),
		Host:     hostPort,
		Path:     c.DBDatabase,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// MigrationURL returns the database URL in the form expected by golang-migrate.
func (c *Config) MigrationURL() string {
	if c.DBDriver == "mysql" {
		return "mysql://" + c.DSN()
	}
	return c.DSN()
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
