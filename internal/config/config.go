package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Proxy     ProxyConfig
	Injection InjectionConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// RedisConfig holds Redis connection settings for rate limiting
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Enabled bool
	Brokers string
	Topic   string
}

// ProxyConfig holds upstream proxy-rotation service settings and
// pool management policy.
type ProxyConfig struct {
	ProviderBaseURL     string
	ProviderUsername    string
	ProviderPassword    string
	TTL                 time.Duration // lifetime of a provisioned proxy
	HealthCheckInterval time.Duration
	CleanupInterval     time.Duration
	MaxFailedChecks     int
	MaxConnections      int // connections per proxy; 1 = strict one-lead-per-proxy
}

// InjectionConfig holds automation worker invocation settings
type InjectionConfig struct {
	WorkerCommand  string // interpreter for the worker script, e.g. python3
	WorkerScript   string // path to the browser-automation worker
	TargetURL      string // landing page the worker submits against
	InterLeadDelay time.Duration
	WorkerTimeout  time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Redis configuration (optional, rate limiting degrades without it)
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		if cfg.Redis.Port, err = intEnvWithDefault("REDIS_PORT", 6379); err != nil {
			return nil, err
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		if cfg.Redis.DB, err = intEnvWithDefault("REDIS_DB", 0); err != nil {
			return nil, err
		}
	}

	// Kafka configuration (optional, lifecycle events are best-effort)
	cfg.Kafka.Enabled = getEnvWithDefault("KAFKA_ENABLED", "false") == "true"
	if cfg.Kafka.Enabled {
		if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
			return nil, err
		}
		cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "lead-lifecycle-events")
	}

	// Proxy provider configuration
	if cfg.Proxy.ProviderBaseURL, err = requireEnv("PROXY_PROVIDER_BASE_URL"); err != nil {
		return nil, err
	}
	if cfg.Proxy.ProviderUsername, err = requireEnv("PROXY_PROVIDER_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Proxy.ProviderPassword, err = requireEnv("PROXY_PROVIDER_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Proxy.TTL, err = durationEnvWithDefault("PROXY_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Proxy.HealthCheckInterval, err = durationEnvWithDefault("PROXY_HEALTH_CHECK_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Proxy.CleanupInterval, err = durationEnvWithDefault("PROXY_CLEANUP_INTERVAL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Proxy.MaxFailedChecks, err = intEnvWithDefault("PROXY_MAX_FAILED_CHECKS", 3); err != nil {
		return nil, err
	}
	if cfg.Proxy.MaxConnections, err = intEnvWithDefault("PROXY_MAX_CONNECTIONS", 1); err != nil {
		return nil, err
	}

	// Injection worker configuration
	cfg.Injection.WorkerCommand = getEnvWithDefault("INJECTION_WORKER_COMMAND", "python3")
	if cfg.Injection.WorkerScript, err = requireEnv("INJECTION_WORKER_SCRIPT"); err != nil {
		return nil, err
	}
	if cfg.Injection.TargetURL, err = requireEnv("INJECTION_TARGET_URL"); err != nil {
		return nil, err
	}
	if cfg.Injection.InterLeadDelay, err = durationEnvWithDefault("INJECTION_INTER_LEAD_DELAY", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Injection.WorkerTimeout, err = durationEnvWithDefault("INJECTION_WORKER_TIMEOUT", 10*time.Minute); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.RateLimitPerMinute, err = intEnvWithDefault("RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// intEnvWithDefault parses an integer environment variable with a fallback
func intEnvWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

// durationEnvWithDefault parses a duration environment variable with a fallback
func durationEnvWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
