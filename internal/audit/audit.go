// Package audit records every dispatched ASCOM transaction — successful or
// not — through a pluggable Recorder. Recording happens after the response
// envelope has been built and never blocks the HTTP response.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one completed dispatch: a single Alpaca action invocation
// against one device.
type Record struct {
	TransactionID       string
	ClientID             int32
	ClientTransactionID  uint32
	ServerTransactionID  uint32
	DeviceType           string
	DeviceNumber         int
	Action               string
	Verb                 string
	StartedAt            time.Time
	FinishedAt           time.Time
	ErrorNumber          int32
	ErrorMessage         string
}

// Recorder persists Records. Implementations must not block the caller for
// long; Record is called synchronously from the request path.
type Recorder interface {
	Record(ctx context.Context, rec Record)
}

// NewID generates a unique transaction identifier for a Record.
func NewID() string {
	return uuid.New().String()
}
