package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// secretsDir is where Docker mounts secret files.
var secretsDir = "/run/secrets"

// Config holds the application configuration.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:""` // пусто: console в development, json иначе
	LogOutputs  string `envconfig:"LOG_OUTPUT_PATHS" default:"stdout"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"3000"`

	ServerReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	ServerWriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ServerIdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// Database
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBName        string        `envconfig:"DB_NAME" default:"car_rental"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_IDLE_TIMEOUT" default:"5m"`
	// Секретное поле БЕЗ envconfig тега
	DBPassword string `ignored:"true"`

	// JWT: secret is mandatory, ttl 0 means tokens never expire.
	JWTSecret   string        `ignored:"true"`
	JWTTokenTTL time.Duration `envconfig:"JWT_TOKEN_TTL" default:"0"`
	BcryptCost  int           `envconfig:"BCRYPT_COST" default:"10"`

	// Upper bound for every store, hash and token call made while serving a request.
	OperationTimeout time.Duration `envconfig:"OPERATION_TIMEOUT" default:"5s"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Empty URL disables booking event publishing.
	RabbitMQURL           string `envconfig:"RABBITMQ_URL" default:""`
	BookingEventsExchange string `envconfig:"BOOKING_EVENTS_EXCHANGE" default:"booking_events"`
}

// IsDevelopment reports whether ENV selects the local development profile.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// PostgresDSN builds the connection URL used by pgx and golang-migrate.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Validate reports configuration that would make the service unusable.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT secret is not configured (set JWT_SECRET or provide the jwt_secret secret file)")
	}
	if c.JWTTokenTTL < 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must not be negative, got %s", c.JWTTokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("OPERATION_TIMEOUT must be positive, got %s", c.OperationTimeout)
	}
	return nil
}

// LoadConfig loads configuration from an optional .env file, environment
// variables and secrets. A missing JWT secret is an error.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err = godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	var err error
	cfg.JWTSecret, err = ReadSecret("jwt_secret")
	if err != nil {
		return nil, err
	}

	// Пароль БД необязателен (trust/peer аутентификация в dev)
	if cfg.DBPassword, err = ReadSecret("db_password"); err != nil {
		cfg.DBPassword = ""
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ReadSecret returns the secret from the upper-cased environment variable
// (jwt_secret -> JWT_SECRET) or, failing that, from the Docker secret file.
func ReadSecret(secretName string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(strings.ToUpper(secretName))); v != "" {
		return v, nil
	}

	filePath := filepath.Join(secretsDir, secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("secret %s is not set and secret file %s is unreadable: %w", strings.ToUpper(secretName), filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", filePath)
	}
	return secret, nil
}
