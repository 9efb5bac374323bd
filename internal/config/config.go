package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	BotToken      string `env:"BOT_TOKEN"`
	AdminPasscode string `env:"ADMIN_PASSCODE" env-default:"0000"`
	HTTPAddr      string `env:"HTTP_ADDR" env-default:":8080"`
	Storage       StorageConfig
	Database      DatabaseConfig
	AI            AIConfig
}

// StorageConfig selects where the vocabulary record is kept
type StorageConfig struct {
	Driver     string `env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"flashvocab.db"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"flashvocab"`
	User     string `env:"DB_USER" env-default:"flashvocab"`
	Password string `env:"DB_PASSWORD"`
}

// AIConfig holds the chat-completions endpoint settings.
// An empty APIKey disables generation and explanations.
type AIConfig struct {
	APIKey  string `env:"AI_API_KEY"`
	BaseURL string `env:"AI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	Model   string `env:"AI_MODEL" env-default:"gemini-3-flash-preview"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks business rules that env tags cannot express
func (c *Config) Validate() error {
	var errs []error

	if c.BotToken == "" {
		errs = append(errs, errors.New("BOT_TOKEN is required"))
	}
	if len([]rune(c.AdminPasscode)) != 4 {
		errs = append(errs, errors.New("ADMIN_PASSCODE must be exactly 4 characters"))
	}
	if !slices.Contains([]string{DriverSQLite, DriverPostgres, DriverMemory}, c.Storage.Driver) {
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not supported", c.Storage.Driver))
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
	}
	if c.Storage.Driver == DriverPostgres && c.Database.Password == "" {
		errs = append(errs, errors.New("DB_PASSWORD is required for the postgres driver"))
	}

	return errors.Join(errs...)
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
