package domain

// PaymentTransition - one atomic status change applied to a payment and its
// order together. OrderStatus is optional: empty means the order status
// stays as it is, only payment_status is synced.
type PaymentTransition struct {
	PaymentID     string
	OrderID       string
	Status        PaymentStatus
	TransactionID string
	Metadata      string
	OrderStatus   OrderStatus
}

type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	GetPaymentByOrderID(orderID string) (*Payment, error)
	ApplyTransition(t *PaymentTransition) error
}
