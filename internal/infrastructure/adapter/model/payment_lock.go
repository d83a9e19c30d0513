package model

import (
	"time"
)

// PaymentLock is a lease on a provider payment id held while its callback is processed
type PaymentLock struct {
	Reference string    `gorm:"primaryKey;size:255"`
	Owner     string    `gorm:"size:64;not null;default:''"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_payment_locks_expires_at"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentLock
func (PaymentLock) TableName() string {
	return "payment_locks"
}
