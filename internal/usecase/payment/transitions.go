package payment

import (
	"log/slog"
	"strconv"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	publisher "github.com/yaovidiy/e-commerce-cms/internal/infrastructure/kafka"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/notifier"
)

// applyGatewayStatus converges the webhook and status-check entry points on
// one transition rule. Re-delivery of an already-applied status and any
// transition the state machine forbids are no-ops: the caller still acks,
// the payment keeps its state.
func (uc *DefaultPaymentUsecase) applyGatewayStatus(
	order *domain.Order,
	payment *domain.Payment,
	gatewayStatus *domain.GatewayStatus,
) (domain.PaymentStatus, domain.OrderStatus, bool, error) {

	mapped := mapProviderStatus(gatewayStatus.Status)
	if mapped == payment.Status {
		return payment.Status, order.Status, false, nil
	}
	if !payment.Status.CanTransitionTo(mapped) {
		slog.Warn("ignoring gateway status for terminal payment",
			"order_number", order.OrderNumber,
			"payment_status", payment.Status,
			"provider_status", gatewayStatus.Status)
		return payment.Status, order.Status, false, nil
	}

	orderStatus := order.Status
	var transitionOrderStatus domain.OrderStatus
	switch mapped {
	case domain.PaymentStatusCompleted:
		// advance only a pending order; an admin may have moved it further
		if order.Status == domain.OrderStatusPending {
			transitionOrderStatus = domain.OrderStatusProcessing
			orderStatus = domain.OrderStatusProcessing
		}
	case domain.PaymentStatusRefunded:
		transitionOrderStatus = domain.OrderStatusRefunded
		orderStatus = domain.OrderStatusRefunded
	}

	var transactionID string
	if gatewayStatus.PaymentID != 0 {
		transactionID = strconv.FormatInt(gatewayStatus.PaymentID, 10)
	}

	transition := &domain.PaymentTransition{
		PaymentID:     payment.ID,
		OrderID:       order.ID,
		Status:        mapped,
		TransactionID: transactionID,
		Metadata:      gatewayStatus.Raw,
		OrderStatus:   transitionOrderStatus,
	}
	if err := uc.PaymentRepo.ApplyTransition(transition); err != nil {
		return payment.Status, order.Status, false, err
	}

	uc.Metrics.RecordTransition(string(payment.Provider), string(mapped))
	uc.notifyTransition(order, payment, mapped, orderStatus)

	return mapped, orderStatus, true, nil
}

func (uc *DefaultPaymentUsecase) notifyTransition(
	order *domain.Order,
	payment *domain.Payment,
	paymentStatus domain.PaymentStatus,
	orderStatus domain.OrderStatus,
) {
	if uc.Publisher != nil {
		go func(event publisher.PaymentEvent) {
			if err := uc.Publisher.PublishPaymentEvent(uc.eventTopic, event); err != nil {
				slog.Error("failed to publish kafka PaymentEvent", "order_number", order.OrderNumber, "error", err.Error())
			}
		}(publisher.PaymentEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Provider:    string(payment.Provider),
			Status:      string(paymentStatus),
			Amount:      payment.Amount,
			Currency:    payment.Currency,
		})
	}

	if uc.callbackURL != "" {
		notifier.SendCallback(uc.callbackURL, notifier.CallbackPayload{
			OrderNumber:   order.OrderNumber,
			OrderStatus:   string(orderStatus),
			PaymentStatus: string(paymentStatus),
			Amount:        payment.Amount,
			Currency:      payment.Currency,
		})
	}
}
