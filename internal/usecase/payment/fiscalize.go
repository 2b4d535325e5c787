package payment

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	publisher "github.com/yaovidiy/e-commerce-cms/internal/infrastructure/kafka"
)

const paymentTypeCashless = "CASHLESS"

// Fiscalize issues a fiscal receipt for a completed gateway payment.
// Idempotent: an existing non-error receipt is returned as-is, with no
// external request. A provider failure is recorded as an error receipt row
// and returned as a value - the row is the retryable recovery state.
func (uc *DefaultPaymentUsecase) Fiscalize(orderID string) (*domain.FiscalReceipt, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	payment, err := uc.PaymentRepo.GetPaymentByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	if payment.Provider != domain.ProviderLiqPay {
		return nil, domain.ErrNotGatewayPayment
	}
	if payment.Status != domain.PaymentStatusCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	return uc.fiscalizeOrder(order, payment)
}

func (uc *DefaultPaymentUsecase) GetReceiptByOrderID(orderID string) (*domain.FiscalReceipt, error) {
	return uc.ReceiptRepo.GetActiveReceiptByOrderID(orderID)
}

func (uc *DefaultPaymentUsecase) GetReceiptHistory(orderID string) ([]*domain.FiscalReceipt, error) {
	return uc.ReceiptRepo.GetReceiptsByOrderID(orderID)
}

func (uc *DefaultPaymentUsecase) fiscalizeOrder(order *domain.Order, payment *domain.Payment) (*domain.FiscalReceipt, error) {
	existing, err := uc.ReceiptRepo.GetActiveReceiptByOrderID(order.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrReceiptNotFound) {
		return nil, err
	}

	goods := make([]domain.ReceiptGood, len(order.Items))
	for i, item := range order.Items {
		goods[i] = domain.ReceiptGood{
			Code:     item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Cost:     item.Price * item.Quantity,
			Tax:      []int{uc.vatRate},
		}
	}

	request := &domain.SaleReceiptRequest{
		Goods: goods,
		Payments: []domain.ReceiptPayment{
			{Type: paymentTypeCashless, Value: order.Total},
		},
		Delivery: &domain.ReceiptDelivery{
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		},
		OrderID: order.OrderNumber,
	}

	now := time.Now()
	receipt := &domain.FiscalReceipt{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		PaymentID: payment.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	providerReceipt, err := uc.Fiscal.CreateSaleReceipt(request)
	if err != nil {
		receipt.Status = domain.ReceiptStatusError
		receipt.ErrorMessage = err.Error()
		if createErr := uc.ReceiptRepo.CreateReceipt(receipt); createErr != nil {
			return nil, createErr
		}
		uc.Metrics.RecordReceipt(string(domain.ReceiptStatusError))
		slog.Error("fiscalization failed, error receipt recorded",
			"order_number", order.OrderNumber, "error", err.Error())
		return receipt, nil
	}

	receipt.ReceiptID = providerReceipt.ID
	receipt.FiscalCode = providerReceipt.FiscalCode
	receipt.ReceiptURL = providerReceipt.ReceiptURL
	receipt.ProviderData = providerReceipt.Raw
	if order.CustomerEmail != "" || order.CustomerPhone != "" {
		receipt.Status = domain.ReceiptStatusSent
	} else {
		receipt.Status = domain.ReceiptStatusCreated
	}

	if shift, shiftErr := uc.Fiscal.CurrentShift(); shiftErr == nil && shift != nil {
		receipt.ShiftID = shift.ID
		receipt.CashRegisterID = shift.CashRegisterID
	}

	if err := uc.ReceiptRepo.CreateReceipt(receipt); err != nil {
		return nil, err
	}
	uc.Metrics.RecordReceipt(string(receipt.Status))

	if uc.Publisher != nil {
		go func(event publisher.PaymentEvent) {
			if err := uc.Publisher.PublishPaymentEvent(uc.eventTopic, event); err != nil {
				slog.Error("failed to publish kafka PaymentEvent", "order_number", order.OrderNumber, "error", err.Error())
			}
		}(publisher.PaymentEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Provider:    string(payment.Provider),
			Status:      "fiscalized",
			Amount:      payment.Amount,
			Currency:    payment.Currency,
			FiscalCode:  receipt.FiscalCode,
		})
	}

	return receipt, nil
}
