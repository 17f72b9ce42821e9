package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type JWTConfig struct {
	Secret string
}

// PayrollConfig holds the engine knobs. Defaults mirror the values
// the aggregation rules were tuned against.
type PayrollConfig struct {
	MinDailyHours float64 // daily rendered-hours floor for reward eligibility
	LoanGraceDays int     // lookahead for late-posted loan journal entries
	Cadence       string  // "semi_monthly" or "monthly"
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "central_juan_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	minDailyHours, err := strconv.ParseFloat(getEnv("PAYROLL_MIN_DAILY_HOURS", "8.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MIN_DAILY_HOURS: %w", err)
	}

	graceDays, err := strconv.Atoi(getEnv("PAYROLL_LOAN_GRACE_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LOAN_GRACE_DAYS: %w", err)
	}

	config.Payroll = PayrollConfig{
		MinDailyHours: minDailyHours,
		LoanGraceDays: graceDays,
		Cadence:       getEnv("PAYROLL_CADENCE", "semi_monthly"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.MinDailyHours <= 0 {
		return fmt.Errorf("PAYROLL_MIN_DAILY_HOURS must be positive")
	}
	if c.Payroll.LoanGraceDays < 0 {
		return fmt.Errorf("PAYROLL_LOAN_GRACE_DAYS must not be negative")
	}
	if c.Payroll.Cadence != "semi_monthly" && c.Payroll.Cadence != "monthly" {
		return fmt.Errorf("PAYROLL_CADENCE must be 'semi_monthly' or 'monthly'")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
