package model

import "time"

// SchemaVersion is one applied ledger schema version. Rows are only ever
// appended; the newest row is the version the database is at.
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	Dialect   string    `gorm:"type:varchar(16);not null"`
	Details   string    `gorm:"type:text"`
	AppliedAt time.Time `gorm:"not null;index"`
}

func (SchemaVersion) TableName() string {
	return "schema_versions"
}
