package domain

type ReceiptRepository interface {
	CreateReceipt(receipt *FiscalReceipt) error
	// GetActiveReceiptByOrderID returns the non-error receipt for an order,
	// or ErrReceiptNotFound when only error attempts (or nothing) exist.
	GetActiveReceiptByOrderID(orderID string) (*FiscalReceipt, error)
	GetReceiptsByOrderID(orderID string) ([]*FiscalReceipt, error)
}
