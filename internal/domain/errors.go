package domain

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrReceiptNotFound     = errors.New("fiscal receipt not found")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrPaymentNotCompleted = errors.New("payment is not completed")
	ErrNotGatewayPayment   = errors.New("payment was not made through the gateway")
	ErrRefundRejected      = errors.New("refund rejected by provider")
	ErrShiftAlreadyOpen    = errors.New("shift already open")
	ErrNoOpenShift         = errors.New("no open shift")
)
