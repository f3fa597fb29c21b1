package database

import (
	"gorm.io/gorm"

	"github.com/paystream/payments-api/internal/constant/model/db"
	"github.com/paystream/payments-api/internal/core"
	"github.com/paystream/payments-api/internal/port/output"
)

// GormPaymentLedger is a secondary adapter that implements the PaymentLedger
// output port on top of the SQLite ledger table.
type GormPaymentLedger struct {
	gormDB *gorm.DB
}

// NewGormPaymentLedger creates a new GORM payment ledger.
func NewGormPaymentLedger(gormDB *gorm.DB) output.PaymentLedger {
	return &GormPaymentLedger{gormDB: gormDB}
}

// toCore converts db.Payment to core.PaymentRecord.
func toCore(p *db.Payment) core.PaymentRecord {
	return core.PaymentRecord{
		ID:              p.ID,
		PaymentIntentID: p.PaymentIntentID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          core.PaymentStatus(p.Status),
		CreatedAt:       p.CreatedAt,
	}
}

// fromCore converts core.PaymentRecord to db.Payment.
func fromCore(r *core.PaymentRecord) *db.Payment {
	return &db.Payment{
		ID:              r.ID,
		PaymentIntentID: r.PaymentIntentID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

// Append inserts a new payment record. The id and created_at assigned by the
// store are copied back onto the record.
func (l *GormPaymentLedger) Append(record *core.PaymentRecord) error {
	dbPayment := fromCore(record)
	if err := l.gormDB.Create(dbPayment).Error; err != nil {
		return &core.PersistenceError{Op: "append payment", Err: err}
	}
	record.ID = dbPayment.ID
	record.CreatedAt = dbPayment.CreatedAt
	return nil
}

// ListSucceeded returns all succeeded records in insertion order.
func (l *GormPaymentLedger) ListSucceeded() ([]core.PaymentRecord, error) {
	var dbPayments []db.Payment
	if err := l.gormDB.
		Where("status = ?", string(core.StatusSucceeded)).
		Order("id").
		Find(&dbPayments).Error; err != nil {
		return nil, &core.PersistenceError{Op: "list payments", Err: err}
	}

	records := make([]core.PaymentRecord, 0, len(dbPayments))
	for i := range dbPayments {
		records = append(records, toCore(&dbPayments[i]))
	}
	return records, nil
}
