package paymentdto

import "github.com/yaovidiy/e-commerce-cms/internal/domain"

type CreateOrderInput struct {
	Items         []domain.OrderItem
	Currency      string
	CustomerEmail string
	CustomerPhone string
}

type CreatePaymentInput struct {
	OrderID string
	Method  domain.PaymentProvider
}
