package db

import (
	"time"

	"gorm.io/gorm"
)

// Payment represents a payment row in the ledger table. The id is assigned by
// the autoincrement column at insert time.
type Payment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentIntentID string    `gorm:"type:varchar(255);not null" json:"payment_intent_id"`
	Amount          int64     `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"type:varchar(8);not null" json:"currency"`
	Status          string    `gorm:"type:varchar(32);not null" json:"status"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate is a GORM hook that runs before creating a record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}
