package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

func appConfig() *config.Config {
	return &config.Config{
		Logger: config.LoggerConfig{Level: "warn"},
		Database: config.DatabaseConfig{
			Driver:         "mysql",
			Host:           "db.internal",
			Username:       "ledger",
			Password:       "secret",
			Database:       "wallet",
			IsolationLevel: "READ COMMITTED",
			MaxOpenConns:   40,
			QueryTimeout:   3 * time.Second,
			SlowThreshold:  150 * time.Millisecond,
			RetryAttempts:  -1,
			RetryDelay:     2 * time.Second,
		},
	}
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	for _, key := range []string{"WL_DB_DRIVER", "WL_DB_HOST", "WL_DB_PORT", "WL_DB_USERNAME", "WL_DB_PASSWORD", "WL_DB_NAME"} {
		t.Setenv(key, "")
	}

	t.Run("file values over defaults", func(t *testing.T) {
		dbConf, err := CreateConfigFromViperConfig(appConfig())
		require.NoError(t, err)

		assert.Equal(t, DriverMySQL, dbConf.Driver)
		assert.Equal(t, 3306, dbConf.Port)
		assert.Equal(t, "read committed", dbConf.IsolationLevel)
		assert.Equal(t, 40, dbConf.MaxOpenConns)
		assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
		assert.Equal(t, 150*time.Millisecond, dbConf.SlowThreshold)
		assert.Equal(t, 3, dbConf.RetryAttempts)
		assert.Equal(t, 2, dbConf.RetryDelay)
		assert.Equal(t, "warn", dbConf.LogLevel)
	})

	t.Run("environment credentials win", func(t *testing.T) {
		t.Setenv("WL_DB_HOST", "from-env")
		t.Setenv("WL_DB_PASSWORD", "env-secret")

		dbConf, err := CreateConfigFromViperConfig(appConfig())
		require.NoError(t, err)
		assert.Equal(t, "from-env", dbConf.Host)
		assert.Equal(t, "env-secret", dbConf.Password)
		assert.Equal(t, "ledger", dbConf.Username)
	})

	t.Run("explicit port", func(t *testing.T) {
		conf := appConfig()
		conf.Database.Port = "13306"
		dbConf, err := CreateConfigFromViperConfig(conf)
		require.NoError(t, err)
		assert.Equal(t, 13306, dbConf.Port)

		conf.Database.Port = "70000"
		_, err = CreateConfigFromViperConfig(conf)
		assert.ErrorContains(t, err, "invalid database port")
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		conf := appConfig()
		conf.Database.IsolationLevel = "read uncommitted"
		_, err := CreateConfigFromViperConfig(conf)
		assert.ErrorContains(t, err, "invalid isolation level")

		conf = appConfig()
		conf.Database.Password = ""
		_, err = CreateConfigFromViperConfig(conf)
		assert.ErrorContains(t, err, "password is required")
	})
}
