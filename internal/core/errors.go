package core

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks a request rejected before any gateway call is made.
// Wrap it with field detail: fmt.Errorf("%w: amount must be positive", ErrInvalidRequest).
var ErrInvalidRequest = errors.New("invalid request")

// GatewayError carries the upstream payment processor's error message. The
// message is surfaced verbatim to the caller.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// PersistenceError reports a storage-layer fault from the ledger. When it
// follows a successful gateway charge the charge is not rolled back; the
// ledger and the gateway are left unreconciled.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
