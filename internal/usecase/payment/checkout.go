package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (uc *DefaultPaymentUsecase) CreateOrder(input *paymentdto.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var total int64
	for _, item := range input.Items {
		total += item.Price * item.Quantity
	}

	numberGenerator, err := nanoid.CustomASCII(orderNumberAlphabet, 10)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "UAH"
	}

	now := time.Now()
	order := &domain.Order{
		ID:            uuid.NewString(),
		OrderNumber:   "ORD-" + numberGenerator(),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		Total:         total,
		Currency:      currency,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Items:         input.Items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	return order, nil
}

// CreatePayment starts checkout for an order. Idempotent: an existing
// payment row is returned untouched, no second gateway request is built.
func (uc *DefaultPaymentUsecase) CreatePayment(input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.PaymentRepo.GetPaymentByOrderID(input.OrderID)
	if err == nil {
		output := &paymentdto.PaymentOutput{Payment: existing}
		if existing.Provider == domain.ProviderLiqPay {
			output.CheckoutURL = checkoutURLFromMetadata(existing.Metadata)
		}
		return output, nil
	}
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, err
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Provider:  input.Method,
		Amount:    order.Total,
		Currency:  order.Currency,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.Method == domain.ProviderCOD {
		if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
			return nil, err
		}
		return &paymentdto.PaymentOutput{Payment: payment}, nil
	}

	checkout, err := uc.Gateway.CreateCheckout(&domain.CheckoutRequest{
		OrderNumber: order.OrderNumber,
		Amount:      order.Total,
		Description: "Order " + order.OrderNumber,
		Email:       order.CustomerEmail,
		Phone:       order.CustomerPhone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gateway checkout: %w", err)
	}

	metadata, _ := json.Marshal(map[string]string{
		"data":         checkout.Data,
		"signature":    checkout.Signature,
		"checkout_url": checkout.RedirectURL,
	})
	payment.Metadata = string(metadata)

	if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}

	return &paymentdto.PaymentOutput{
		Payment:     payment,
		CheckoutURL: checkout.RedirectURL,
	}, nil
}

func checkoutURLFromMetadata(metadata string) string {
	var stored struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.Unmarshal([]byte(metadata), &stored); err != nil {
		return ""
	}
	return stored.CheckoutURL
}
