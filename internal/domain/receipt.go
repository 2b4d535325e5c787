package domain

import "time"

type ReceiptStatus string

const (
	ReceiptStatusCreated   ReceiptStatus = "created"
	ReceiptStatusSent      ReceiptStatus = "sent"
	ReceiptStatusError     ReceiptStatus = "error"
	ReceiptStatusCancelled ReceiptStatus = "cancelled"
)

// FiscalReceipt - one fiscalization attempt for an order. Rows are append-only:
// a retry after an error attempt inserts a new row, the error row stays for audit.
type FiscalReceipt struct {
	ID             string
	OrderID        string
	PaymentID      string
	ReceiptID      string
	FiscalCode     string
	ReceiptURL     string
	Status         ReceiptStatus
	ErrorMessage   string
	ProviderData   string
	ShiftID        string
	CashRegisterID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
