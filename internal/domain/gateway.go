package domain

type CheckoutRequest struct {
	OrderNumber string
	Amount      int64
	Description string
	Email       string
	Phone       string
}

type Checkout struct {
	RedirectURL string
	Data        string
	Signature   string
}

// GatewayStatus - decoded provider callback or status response. Status is the
// provider's raw status string; the workflow maps it to PaymentStatus at the
// boundary and the raw string goes no further.
type GatewayStatus struct {
	OrderNumber    string
	Status         string
	PaymentID      int64
	Amount         int64
	Currency       string
	ErrCode        string
	ErrDescription string
	Raw            string
}

type RefundResult struct {
	Ok             bool
	Status         string
	ErrCode        string
	ErrDescription string
	Raw            string
}

type PaymentGateway interface {
	CreateCheckout(req *CheckoutRequest) (*Checkout, error)
	// ParseWebhook verifies the signature and decodes the payload.
	// Returns nil when verification fails.
	ParseWebhook(data, signature string) *GatewayStatus
	QueryStatus(orderNumber string) (*GatewayStatus, error)
	Refund(orderNumber string, amount int64) (*RefundResult, error)
}
