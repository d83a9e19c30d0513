package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Payment     PaymentConfig     `mapstructure:"payment"`
	Events      EventsConfig      `mapstructure:"events"`
	Admin       AdminConfig       `mapstructure:"admin"`
	Seed        SeedConfig        `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains ledger store settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	LogLevel        string        `mapstructure:"logLevel"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"` // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// TransactionConfig contains transaction engine settings
type TransactionConfig struct {
	QueueSize           int           `mapstructure:"queueSize"`
	SummaryRecentLimit  int           `mapstructure:"summaryRecentLimit"`
	PaymentLockTTL      time.Duration `mapstructure:"paymentLockTTL"`      // seconds
	LockCleanupInterval time.Duration `mapstructure:"lockCleanupInterval"` // seconds
	QueueIdleTimeout    time.Duration `mapstructure:"queueIdleTimeout"`    // seconds
}

// PaymentConfig contains payment gateway settings
type PaymentConfig struct {
	Currency string        `mapstructure:"currency"`
	Instant  InstantConfig `mapstructure:"instant"`
	PayPal   PayPalConfig  `mapstructure:"paypal"`
}

// InstantConfig configures the simulated synchronous processor
type InstantConfig struct {
	// DeclineAbove is the largest amount approved; empty approves everything
	DeclineAbove string `mapstructure:"declineAbove"`
}

// PayPalConfig configures the PayPal REST client
type PayPalConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Mode         string        `mapstructure:"mode"`
	BaseURL      string        `mapstructure:"baseURL"`
	ClientID     string        `mapstructure:"clientID"`
	ClientSecret string        `mapstructure:"clientSecret"`
	ReturnURL    string        `mapstructure:"returnURL"`
	CancelURL    string        `mapstructure:"cancelURL"`
	Timeout      time.Duration `mapstructure:"timeout"` // seconds
}

// EventsConfig selects where transaction events go
type EventsConfig struct {
	Driver string    `mapstructure:"driver"`
	SQS    SQSConfig `mapstructure:"sqs"`
}

// SQSConfig contains the SQS publisher settings
type SQSConfig struct {
	QueueURL string `mapstructure:"queueURL"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

// AdminConfig protects the operator endpoints
type AdminConfig struct {
	APIKey string `mapstructure:"apiKey"`
}

// SeedConfig controls demo accounts created at startup
type SeedConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Accounts []SeedAccount `mapstructure:"accounts"`
}

// SeedAccount is one demo account
type SeedAccount struct {
	ID      uint64 `mapstructure:"id"`
	Balance string `mapstructure:"balance"`
}

// Validate checks the settings the application cannot start without
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}

	switch c.Database.Driver {
	case "memory":
	case "postgres", "mysql":
		if c.Database.Host == "" {
			problems = append(problems, "database.host is required")
		}
		if c.Database.Database == "" {
			problems = append(problems, "database.database is required")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported database.driver %q", c.Database.Driver))
	}

	if len(c.Payment.Currency) != 3 {
		problems = append(problems, fmt.Sprintf("payment.currency %q is not an ISO 4217 code", c.Payment.Currency))
	}
	if c.Payment.PayPal.Enabled {
		if c.Payment.PayPal.ClientID == "" || c.Payment.PayPal.ClientSecret == "" {
			problems = append(problems, "payment.paypal credentials are required when paypal is enabled")
		}
		if c.Payment.PayPal.ReturnURL == "" || c.Payment.PayPal.CancelURL == "" {
			problems = append(problems, "payment.paypal returnURL and cancelURL are required when paypal is enabled")
		}
	}

	switch c.Events.Driver {
	case "log", "noop":
	case "sqs":
		if c.Events.SQS.QueueURL == "" {
			problems = append(problems, "events.sqs.queueURL is required for the sqs driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported events.driver %q", c.Events.Driver))
	}

	if c.Environment == Production && c.Admin.APIKey == "" {
		problems = append(problems, "admin.apiKey is required in production")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
