package output

import (
	"github.com/paystream/payments-api/internal/core"
)

// PaymentLedger is an output port (secondary port) for the durable payment
// ledger. The ledger is append-only by contract: no update or delete
// operations are exposed.
type PaymentLedger interface {
	// Append inserts a new record, assigning its id and created_at.
	Append(record *core.PaymentRecord) error

	// ListSucceeded returns all records with status "succeeded" in
	// insertion order, fully materialized.
	ListSucceeded() ([]core.PaymentRecord, error)
}
