package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. WL_SERVER_PORT
const EnvPrefix = "WL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

var errNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration from the file named after the environment,
// then applies .env and WL_ environment overrides
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Variables already set in the
// process environment win.
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errNoDotEnv
}

// setDefaults sets default values for every non-secret setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.isolationLevel", "read committed")
	v.SetDefault("database.slowThreshold", 200) // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.queueSize", 100)
	v.SetDefault("transaction.summaryRecentLimit", 5)
	v.SetDefault("transaction.paymentLockTTL", 30)      // seconds
	v.SetDefault("transaction.lockCleanupInterval", 60) // seconds
	v.SetDefault("transaction.queueIdleTimeout", 60)    // seconds

	v.SetDefault("payment.currency", "PHP")
	v.SetDefault("payment.paypal.mode", "sandbox")
	v.SetDefault("payment.paypal.timeout", 10) // seconds

	v.SetDefault("events.driver", "log")
	v.SetDefault("seed.enabled", false)
}

// getEnvironment reads the environment name from WL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the environment win over the config file for
// secrets and deployment specific values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"WL_DB_DRIVER":             "database.driver",
		"WL_DB_HOST":               "database.host",
		"WL_DB_PORT":               "database.port",
		"WL_DB_USERNAME":           "database.username",
		"WL_DB_PASSWORD":           "database.password",
		"WL_DB_NAME":               "database.database",
		"WL_DB_SSL_MODE":           "database.sslMode",
		"WL_DB_ISOLATION_LEVEL":    "database.isolationLevel",
		"WL_SERVER_HOST":           "server.host",
		"WL_LOGGER_LEVEL":          "logger.level",
		"WL_PAYMENT_CURRENCY":      "payment.currency",
		"WL_PAYPAL_MODE":           "payment.paypal.mode",
		"WL_PAYPAL_CLIENT_ID":      "payment.paypal.clientID",
		"WL_PAYPAL_CLIENT_SECRET":  "payment.paypal.clientSecret",
		"WL_PAYPAL_RETURN_URL":     "payment.paypal.returnURL",
		"WL_PAYPAL_CANCEL_URL":     "payment.paypal.cancelURL",
		"WL_EVENTS_DRIVER":         "events.driver",
		"WL_SQS_QUEUE_URL":         "events.sqs.queueURL",
		"WL_SQS_REGION":            "events.sqs.region",
		"WL_SQS_ENDPOINT":          "events.sqs.endpoint",
		"WL_ADMIN_API_KEY":         "admin.apiKey",
		"WL_INSTANT_DECLINE_ABOVE": "payment.instant.declineAbove",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if port := getEnvInt("WL_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("WL_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("WL_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("WL_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("WL_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if queueSize := getEnvInt("WL_TRANSACTION_QUEUE_SIZE", 0); queueSize > 0 {
		v.Set("transaction.queueSize", queueSize)
	}
	if enabled, err := strconv.ParseBool(os.Getenv("WL_PAYPAL_ENABLED")); err == nil {
		v.Set("payment.paypal.enabled", enabled)
	}
	if enabled, err := strconv.ParseBool(os.Getenv("WL_SEED_ENABLED")); err == nil {
		v.Set("seed.enabled", enabled)
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the unitless numbers from the config file into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Transaction.PaymentLockTTL = time.Duration(config.Transaction.PaymentLockTTL) * time.Second
	config.Transaction.LockCleanupInterval = time.Duration(config.Transaction.LockCleanupInterval) * time.Second
	config.Transaction.QueueIdleTimeout = time.Duration(config.Transaction.QueueIdleTimeout) * time.Second

	config.Payment.PayPal.Timeout = time.Duration(config.Payment.PayPal.Timeout) * time.Second
}
