package payment

import (
	"log/slog"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

// HandleWebhook processes a LiqPay server callback. Signature verification
// happens before any store access; an order that exists without a payment
// row is an inconsistency and fails loudly. Fiscalization failure never
// fails the webhook - the error receipt row is the recovery state.
func (uc *DefaultPaymentUsecase) HandleWebhook(data, signature string) (*paymentdto.WebhookOutput, error) {
	gatewayStatus := uc.Gateway.ParseWebhook(data, signature)
	if gatewayStatus == nil {
		uc.Metrics.RecordWebhook("invalid_signature")
		return nil, domain.ErrInvalidSignature
	}

	order, err := uc.OrderRepo.GetOrderByNumber(gatewayStatus.OrderNumber)
	if err != nil {
		uc.Metrics.RecordWebhook("order_not_found")
		return nil, err
	}

	payment, err := uc.PaymentRepo.GetPaymentByOrderID(order.ID)
	if err != nil {
		uc.Metrics.RecordWebhook("payment_not_found")
		return nil, err
	}

	paymentStatus, orderStatus, _, err := uc.applyGatewayStatus(order, payment, gatewayStatus)
	if err != nil {
		uc.Metrics.RecordWebhook("store_error")
		return nil, err
	}

	output := &paymentdto.WebhookOutput{
		PaymentStatus: paymentStatus,
		OrderStatus:   orderStatus,
	}

	if paymentStatus == domain.PaymentStatusCompleted && payment.Provider == domain.ProviderLiqPay {
		receipt, fiscalErr := uc.fiscalizeOrder(order, payment)
		if fiscalErr != nil {
			// store failure while writing the receipt row; the payment
			// update already landed, so the webhook still acks
			slog.Error("failed to persist fiscal receipt",
				"order_number", order.OrderNumber, "error", fiscalErr.Error())
		} else {
			output.Receipt = receipt
		}
	}

	uc.Metrics.RecordWebhook("processed")
	return output, nil
}
