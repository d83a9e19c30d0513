package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// CreateConfigFromViperConfig builds the store configuration from the loaded
// application configuration. Credentials already present in the WL_DB_*
// environment win over the file; everything else the file sets overrides the
// defaults. The result is validated.
func CreateConfigFromViperConfig(conf *config.Config) (*Config, error) {
	dbConf := DefaultConfig()
	src := conf.Database

	// credentials: environment first
	fillEmpty(&dbConf.Host, src.Host)
	fillEmpty(&dbConf.Username, src.Username)
	fillEmpty(&dbConf.Password, src.Password)
	fillEmpty(&dbConf.Database, src.Database)

	override(&dbConf.Driver, src.Driver)
	override(&dbConf.SSLMode, src.SSLMode)
	override(&dbConf.IsolationLevel, strings.ToLower(src.IsolationLevel))

	if dbConf.Port == 0 && src.Port != "" {
		port, err := ParsePort(src.Port)
		if err != nil {
			return nil, err
		}
		dbConf.Port = port
	}
	if dbConf.Port == 0 {
		dbConf.Port = defaultPort(dbConf.Driver)
	}

	overridePositive(&dbConf.MaxOpenConns, src.MaxOpenConns)
	overridePositive(&dbConf.MaxIdleConns, src.MaxIdleConns)
	overridePositive(&dbConf.ConnMaxLifetime, src.ConnMaxLifetime)
	overridePositive(&dbConf.ConnMaxIdleTime, src.ConnMaxIdleTime)
	overridePositive(&dbConf.QueryTimeout, src.QueryTimeout)
	overridePositive(&dbConf.SlowThreshold, src.SlowThreshold)
	if src.RetryAttempts >= 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = int(src.RetryDelay / time.Second)
	}

	switch {
	case src.LogLevel != "":
		dbConf.LogLevel = src.LogLevel
	case conf.Logger.Level != "":
		dbConf.LogLevel = conf.Logger.Level
	}

	if err := dbConf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	return dbConf, nil
}

// ParsePort parses a TCP port number
func ParsePort(port string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || p <= 0 || p > 65535 {
		return 0, fmt.Errorf("invalid database port %q", port)
	}
	return p, nil
}

func fillEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func overridePositive[T int | time.Duration](dst *T, value T) {
	if value > 0 {
		*dst = value
	}
}
