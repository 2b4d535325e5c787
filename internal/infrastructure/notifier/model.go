package notifier

type CallbackPayload struct {
	OrderNumber   string `json:"order_number"`
	OrderStatus   string `json:"order_status"`
	PaymentStatus string `json:"payment_status"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}
