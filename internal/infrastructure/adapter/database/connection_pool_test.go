package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

type fakePool struct {
	stats   sql.DBStats
	pingErr error
}

func (f *fakePool) Stats() sql.DBStats                 { return f.stats }
func (f *fakePool) PingContext(context.Context) error { return f.pingErr }

func TestConnectionPoolMonitorCollect(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("healthy pool", func(t *testing.T) {
		pool := &fakePool{stats: sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 2, Idle: 2}}
		monitor := newConnectionPoolMonitor(func() (statsSource, error) { return pool, nil }, mockcore.NewMockLogger(t), mockTime)

		require.NoError(t, monitor.collectMetrics())
		metrics := monitor.GetMetrics()
		assert.True(t, metrics.Healthy)
		assert.Equal(t, 2, metrics.InUse)
		assert.Equal(t, now, metrics.CollectedAt)
	})

	t.Run("nearly exhausted pool and failed ping", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Error("Database ping failed", mock.Anything).Once()
		mockLogger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

		pool := &fakePool{
			stats:   sql.DBStats{MaxOpenConnections: 10, OpenConnections: 10, InUse: 9, WaitCount: 3},
			pingErr: errors.New("connection refused"),
		}
		monitor := newConnectionPoolMonitor(func() (statsSource, error) { return pool, nil }, mockLogger, mockTime)

		require.NoError(t, monitor.collectMetrics())
		assert.False(t, monitor.GetMetrics().Healthy)
	})

	t.Run("source unavailable", func(t *testing.T) {
		monitor := newConnectionPoolMonitor(func() (statsSource, error) {
			return nil, errors.New("sql: database is closed")
		}, mockcore.NewMockLogger(t), mockTime)

		assert.Error(t, monitor.Start(time.Minute))
		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
		monitor.Stop()
		monitor.Stop()
	})
}

func TestMetricsCollectorMeasure(t *testing.T) {
	start := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(start)
	mockTime.EXPECT().Since(start).Return(core.Duration(250 * time.Millisecond)).Once()
	mockTime.EXPECT().Since(start).Return(core.Millisecond).Once()

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn("Slow unit of work detected", mock.Anything).Once()

	collector := NewMetricsCollector(mockLogger, mockTime, 0)

	metrics, err := collector.Measure(context.Background(), "unit_of_work", func() (int, error) { return 3, errors.New("deadlock") })
	assert.Error(t, err)
	assert.True(t, metrics.Failed)
	assert.Equal(t, 3, metrics.Attempts)

	_, err = collector.Measure(context.Background(), "unit_of_work", func() (int, error) { return 1, nil })
	assert.NoError(t, err)

	assert.Equal(t, MetricsSnapshot{Units: 2, Failures: 1, Retries: 2, SlowUnits: 1}, collector.Snapshot())
}
