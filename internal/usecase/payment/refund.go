package payment

import (
	"fmt"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

// Refund reverses a completed payment. Cash on delivery is pure
// bookkeeping; a gateway payment goes through LiqPay first and the local
// transition is applied only when the provider reports success.
func (uc *DefaultPaymentUsecase) Refund(orderID string) (*paymentdto.RefundOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	payment, err := uc.PaymentRepo.GetPaymentByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentStatusCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	transition := &domain.PaymentTransition{
		PaymentID:   payment.ID,
		OrderID:     order.ID,
		Status:      domain.PaymentStatusRefunded,
		OrderStatus: domain.OrderStatusRefunded,
	}

	if payment.Provider == domain.ProviderCOD {
		if err := uc.PaymentRepo.ApplyTransition(transition); err != nil {
			return nil, err
		}
		uc.Metrics.RecordTransition(string(payment.Provider), string(domain.PaymentStatusRefunded))
		uc.notifyTransition(order, payment, domain.PaymentStatusRefunded, domain.OrderStatusRefunded)

		return &paymentdto.RefundOutput{
			Status:   domain.PaymentStatusRefunded,
			Provider: payment.Provider,
			Message:  "manual refund recorded",
		}, nil
	}

	result, err := uc.Gateway.Refund(order.OrderNumber, payment.Amount)
	if err != nil {
		return nil, err
	}
	if !result.Ok {
		reason := result.ErrDescription
		if reason == "" {
			reason = result.Status
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrRefundRejected, reason)
	}

	transition.Metadata = result.Raw
	if err := uc.PaymentRepo.ApplyTransition(transition); err != nil {
		return nil, err
	}
	uc.Metrics.RecordTransition(string(payment.Provider), string(domain.PaymentStatusRefunded))
	uc.notifyTransition(order, payment, domain.PaymentStatusRefunded, domain.OrderStatusRefunded)

	return &paymentdto.RefundOutput{
		Status:   domain.PaymentStatusRefunded,
		Provider: payment.Provider,
		Message:  "refund processed",
	}, nil
}
