package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents the database model for wallet accounts
type Account struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement:false"`
	Balance          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0;check:chk_accounts_balance_non_negative,balance >= 0"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	TransactionCount uint64          `gorm:"not null;default:0"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
