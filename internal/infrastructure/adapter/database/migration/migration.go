package migration

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.2.0"

	postgresDialect = "postgres"
)

// legacyLockTable held per-account application locks before row locks replaced them
const legacyLockTable = "account_locks"

// indexSpec names an index declared on a model
type indexSpec struct {
	model any
	name  string
}

// requiredIndexes are declared through model tags and verified after AutoMigrate
var requiredIndexes = []indexSpec{
	{&model.Transaction{}, "idx_transactions_account_created"},
	{&model.Transaction{}, "idx_transactions_status_type"},
	{&model.Transaction{}, "idx_transactions_method_reference"},
	{&model.Transaction{}, "idx_transactions_account_key"},
	{&model.PaymentLock{}, "idx_payment_locks_expires_at"},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        db.Dialector.Name(),
	})

	if err := db.AutoMigrate(&model.SchemaVersion{}); err != nil {
		m.logger.Error("Failed to create schema version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"auto-migrate models", m.autoMigrateModels},
		{"versioned migrations", func(ctx context.Context) error { return m.runVersionedMigrations(ctx, currentVersion) }},
		{"verify indexes", m.createIndexes},
		{"advanced indexes", m.createAdvancedIndexes},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":            step.name,
				"error":           err.Error(),
				"current_version": currentVersion,
				"target_version":  CurrentSchemaVersion,
			})
			return err
		}
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Ledger schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version, "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.SchemaVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion appends a schema version row
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.SchemaVersion{
		Version:   version,
		Dialect:   m.db.Dialector.Name(),
		Details:   details,
		AppliedAt: m.timeProvider.Now(),
	}).Error
}

// autoMigrateModels auto-migrates database models; accounts first for the foreign key
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.Account{},
		&model.Transaction{},
		&model.PaymentLock{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return nil
	case "1.0.0":
		if err := m.migrateFrom1_0_0To1_1_0(ctx); err != nil {
			return err
		}
		return m.migrateFrom1_1_0To1_2_0(ctx)
	case "1.1.0":
		return m.migrateFrom1_1_0To1_2_0(ctx)
	}
	return nil
}

// migrateFrom1_0_0To1_1_0 drops the per-account lock table; account rows are
// locked with SELECT ... FOR UPDATE and callbacks lease payment ids instead
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	migrator := m.db.WithContext(ctx).Migrator()
	if !migrator.HasTable(legacyLockTable) {
		return nil
	}
	return migrator.DropTable(legacyLockTable)
}

// migrateFrom1_1_0To1_2_0 clears leases taken before they carried an owner;
// nobody could release them
func (m *MigrationManager) migrateFrom1_1_0To1_2_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.1.0 to v1.2.0", nil)

	result := m.db.WithContext(ctx).Where("owner = ?", "").Delete(&model.PaymentLock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		m.logger.Info("Removed ownerless payment locks", map[string]any{"count": result.RowsAffected})
	}
	return nil
}

// createIndexes makes sure every index declared on the models exists
func (m *MigrationManager) createIndexes(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()
	for _, idx := range requiredIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		m.logger.Info("Creating missing index", map[string]any{"index": idx.name})
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return err
		}
	}
	return nil
}

// createAdvancedIndexes adds PostgreSQL-only indexes and storage settings
func (m *MigrationManager) createAdvancedIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != postgresDialect {
		m.logger.Debug("Skipping PostgreSQL specific indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}
	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		return err
	}
	return m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
}
