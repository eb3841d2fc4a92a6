package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditMessage is a human-readable reconciliation note emitted by the
// liquidation engine when diagnostics are enabled. Messages are returned
// data, never logged, and never affect computed results.
type AuditMessage struct {
	Date    time.Time
	Amount  *decimal.Decimal
	Message string
}

// NewAuditMessage creates a dated message with an optional amount.
func NewAuditMessage(date time.Time, amount *decimal.Decimal, message string) AuditMessage {
	return AuditMessage{Date: date, Amount: amount, Message: message}
}
