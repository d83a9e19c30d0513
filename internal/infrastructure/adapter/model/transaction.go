package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID                uint64          `gorm:"primaryKey;autoIncrement"`
	AccountID         uint64          `gorm:"not null;index:idx_transactions_account_created,priority:1;uniqueIndex:idx_transactions_account_key,priority:1"`
	Type              string          `gorm:"not null;size:20;index:idx_transactions_status_type,priority:2"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_transactions_amount_positive,amount > 0"`
	Method            string          `gorm:"not null;size:20;uniqueIndex:idx_transactions_method_reference,priority:1"`
	ExternalReference *string         `gorm:"size:255;uniqueIndex:idx_transactions_method_reference,priority:2"`
	IdempotencyKey    *string         `gorm:"size:255;uniqueIndex:idx_transactions_account_key,priority:2"`
	Status            string          `gorm:"not null;size:20;index:idx_transactions_status_type,priority:1"`
	FailureReason     string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null;index:idx_transactions_account_created,priority:2"`
	ProcessedAt       *time.Time

	Account Account `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
