package payment

import "github.com/yaovidiy/e-commerce-cms/internal/domain"

// mapProviderStatus closes the provider's open status vocabulary into the
// internal taxonomy right at the boundary. Everything LiqPay reports that
// is not a definite outcome (wait_accept, processing, 3ds_verify, ...)
// stays pending.
func mapProviderStatus(providerStatus string) domain.PaymentStatus {
	switch providerStatus {
	case "success":
		return domain.PaymentStatusCompleted
	case "failure", "error":
		return domain.PaymentStatusFailed
	case "reversed":
		return domain.PaymentStatusRefunded
	default:
		return domain.PaymentStatusPending
	}
}
