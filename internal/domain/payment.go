package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentProvider string

const (
	ProviderLiqPay PaymentProvider = "liqpay"
	ProviderCOD    PaymentProvider = "cod"
)

type Payment struct {
	ID            string
	OrderID       string
	Provider      PaymentProvider
	Amount        int64
	Currency      string
	Status        PaymentStatus
	TransactionID string
	Metadata      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransitionTo reports whether a status change is allowed:
// pending -> completed | failed, completed -> refunded.
// failed and refunded are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusCompleted || next == PaymentStatusFailed
	case PaymentStatusCompleted:
		return next == PaymentStatusRefunded
	}
	return false
}
