// Package config provides configuration management for the taskflow application.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, and collective error reporting.
// Everything here is read once at startup; the resulting AppConfig is treated as immutable
// and handed to the components that need it (token service, pool, router).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// PoolConfig represents configuration for the PostgreSQL connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxSize  int
	// MigrationsPath points at a directory of golang-migrate files. Empty means the
	// migrations embedded in the `db` package are used.
	MigrationsPath string
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret  string        // Secret key for signing identity tokens
	TokenTTL   time.Duration // Lifetime of an identity token
	BcryptCost int           // Cost factor for password hashing
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port            string // Port for the HTTP server
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// ListConfig controls how list endpoints behave.
type ListConfig struct {
	// EmptyAsNotFound makes list endpoints answer 404 when nothing matches instead of 200 with [].
	EmptyAsNotFound bool
	// MaxTake caps the `take` query parameter.
	MaxTake int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
	List   *ListConfig
	Log    *LogConfig
}

// Helper function to get a required environment variable.
// Appends an error to the errors slice if the variable is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// parseOptionalEnv reads key with parse, falling back to defaultValue when the variable is
// unset. A value that does not parse is recorded in errors and also yields defaultValue.
func parseOptionalEnv[T any](key string, defaultValue T, kind string, parse func(string) (T, error), errors *[]string) T {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := parse(raw)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected %s, got '%s': %v", key, kind, raw, err))
		return defaultValue
	}
	return value
}

func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	return parseOptionalEnv(key, defaultValue, "integer", strconv.Atoi, errors)
}

func getOptionalEnvBool(key string, defaultValue bool, errors *[]string) bool {
	return parseOptionalEnv(key, defaultValue, "boolean", strconv.ParseBool, errors)
}

// getOptionalEnvDuration accepts `time.ParseDuration` strings such as "15s" or "24h".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	return parseOptionalEnv(key, defaultValue, "duration string", time.ParseDuration, errors)
}

// clampPoolSize keeps the pool size between 5 and 100, recording an error when it had to clamp.
func clampPoolSize(size int, varName string, errors *[]string) int {
	if size < 5 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 5", varName, size))
		return 5
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100", varName, size))
		return 100
	}
	return size
}

// splitList turns "a, b,c" into []string{"a", "b", "c"}, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database Configuration
	dbPool := &PoolConfig{
		User:           getRequiredEnv("DB_USER", &errors),
		Password:       getRequiredEnv("DB_PASSWORD", &errors),
		DBName:         getRequiredEnv("DB_NAME", &errors),
		Host:           getOptionalEnv("DB_HOST", "localhost"),
		Port:           getOptionalEnvInt("DB_PORT", 5432, &errors),
		SSLMode:        getOptionalEnv("DB_SSLMODE", "disable"),
		MaxSize:        clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), "DB_POOL_SIZE", &errors),
		MigrationsPath: getOptionalEnv("MIGRATIONS_PATH", ""),
	}

	// Auth Configuration
	// An empty secret would make every token forgeable, so it is rejected rather than accepted silently.
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	if _, set := os.LookupEnv("JWT_SECRET"); set && strings.TrimSpace(jwtSecret) == "" {
		errors = append(errors, "JWT_SECRET must not be empty")
	}
	tokenTTL := getOptionalEnvDuration("JWT_TOKEN_TTL", 24*time.Hour, &errors)
	if tokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("JWT_TOKEN_TTL must be positive, got %s", tokenTTL))
	}
	bcryptCost := getOptionalEnvInt("BCRYPT_COST", 10, &errors)
	if bcryptCost < 4 || bcryptCost > 31 {
		errors = append(errors, fmt.Sprintf("BCRYPT_COST must be between 4 and 31, got %d", bcryptCost))
	}
	authConfig := &AuthConfig{
		JWTSecret:  jwtSecret,
		TokenTTL:   tokenTTL,
		BcryptCost: bcryptCost,
	}

	// Server Configuration
	serverConfig := &ServerConfig{
		Port:            getOptionalEnv("PORT", "3000"),
		ReadTimeout:     getOptionalEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second, &errors),
		WriteTimeout:    getOptionalEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second, &errors),
		IdleTimeout:     getOptionalEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second, &errors),
		ShutdownTimeout: getOptionalEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second, &errors),
		AllowedOrigins:  splitList(getOptionalEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	listConfig := &ListConfig{
		EmptyAsNotFound: getOptionalEnvBool("EMPTY_LIST_NOT_FOUND", true, &errors),
		MaxTake:         getOptionalEnvInt("LIST_MAX_TAKE", 100, &errors),
	}
	if listConfig.MaxTake < 1 {
		errors = append(errors, fmt.Sprintf("LIST_MAX_TAKE must be at least 1, got %d", listConfig.MaxTake))
	}

	logConfig := &LogConfig{
		Level:  strings.ToLower(getOptionalEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(getOptionalEnv("LOG_FORMAT", "text")),
	}
	switch logConfig.Level {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got '%s'", logConfig.Level))
	}
	if logConfig.Format != "text" && logConfig.Format != "json" {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be text or json, got '%s'", logConfig.Format))
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbPool,
		Auth:   authConfig,
		Server: serverConfig,
		List:   listConfig,
		Log:    logConfig,
	}, nil
}
