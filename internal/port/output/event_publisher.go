package output

import (
	"github.com/paystream/payments-api/internal/core"
)

// EventPublisher is an output port (secondary port) for broadcasting payment
// events to subscribers. Publishing is fire-and-forget: no acknowledgment is
// awaited and no retry is attempted.
type EventPublisher interface {
	// Publish sends the event to the broadcast exchange.
	Publish(event core.PaymentEvent) error
	// Close closes the messaging connection.
	Close() error
}
