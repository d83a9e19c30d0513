package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestExtractQueryMetadata(t *testing.T) {
	tests := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "accounts" WHERE "accounts"."id" = 1 FOR UPDATE`, "SELECT", "accounts"},
		{`INSERT INTO "transactions" ("account_id","type") VALUES (1,'cashin')`, "INSERT", "transactions"},
		{"UPDATE `accounts` SET `balance`=100.00 WHERE id = 1", "UPDATE", "accounts"},
		{`DELETE FROM "payment_locks" WHERE expires_at <= now()`, "DELETE", "payment_locks"},
		{`ALTER TABLE accounts SET (fillfactor = 80)`, "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.queryType, extractQueryType(tt.sql), tt.sql)
		assert.Equal(t, tt.table, extractTableName(tt.sql), tt.sql)
	}
}

type stepClock struct {
	core.TimeProvider
	elapsed time.Duration
}

func (c stepClock) Since(time.Time) core.Duration { return core.Duration(c.elapsed) }

func TestDatabaseLoggerTrace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "accounts"`, 1 }

	t.Run("slow queries are warnings", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["table"] == "accounts" && fields["request_id"] == "req-42"
		})).Once()

		l := NewDatabaseLogger(mockLogger, stepClock{elapsed: time.Second}, "warn", 200*time.Millisecond)
		ctx := applogger.WithRequestID(context.Background(), "req-42")
		l.Trace(ctx, time.Now(), query, nil)
	})

	t.Run("errors are logged with the error", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "boom"
		})).Once()

		l := NewDatabaseLogger(mockLogger, stepClock{}, "error", 0)
		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(mockLogger, stepClock{}, "info", 0)
		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)

		l := NewDatabaseLogger(mockLogger, stepClock{elapsed: time.Hour}, "silent", time.Millisecond)
		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	})
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseGormLogLevel("SILENT"))
	assert.Equal(t, logger.Warn, ParseGormLogLevel("warn"))
	assert.Equal(t, logger.Info, ParseGormLogLevel("debug"))
}
