package paymentdto

import "github.com/yaovidiy/e-commerce-cms/internal/domain"

type PaymentOutput struct {
	Payment     *domain.Payment
	CheckoutURL string
}

type WebhookOutput struct {
	PaymentStatus domain.PaymentStatus
	OrderStatus   domain.OrderStatus
	Receipt       *domain.FiscalReceipt
}

type StatusOutput struct {
	Status   domain.PaymentStatus
	Provider domain.PaymentProvider
	Applied  bool
}

type RefundOutput struct {
	Status   domain.PaymentStatus
	Provider domain.PaymentProvider
	Message  string
}
