package payment

import (
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	publisher "github.com/yaovidiy/e-commerce-cms/internal/infrastructure/kafka"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/metrics"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	CreateOrder(input *paymentdto.CreateOrderInput) (*domain.Order, error)
	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrderByNumber(orderNumber string) (*domain.Order, error)

	CreatePayment(input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error)
	GetPaymentByOrderID(orderID string) (*domain.Payment, error)

	HandleWebhook(data, signature string) (*paymentdto.WebhookOutput, error)
	CheckPaymentStatus(orderID string) (*paymentdto.StatusOutput, error)
	Refund(orderID string) (*paymentdto.RefundOutput, error)

	Fiscalize(orderID string) (*domain.FiscalReceipt, error)
	GetReceiptByOrderID(orderID string) (*domain.FiscalReceipt, error)
	GetReceiptHistory(orderID string) ([]*domain.FiscalReceipt, error)

	OpenShift() (*domain.Shift, error)
	CloseShift() (*domain.Shift, error)
	CurrentShift() (*domain.Shift, error)
}

type EventPublisher interface {
	PublishPaymentEvent(topic string, event publisher.PaymentEvent) error
}

type Options struct {
	EventTopic  string
	CallbackURL string
	VatRate     int
}

type DefaultPaymentUsecase struct {
	OrderRepo   domain.OrderRepository
	PaymentRepo domain.PaymentRepository
	ReceiptRepo domain.ReceiptRepository
	Gateway     domain.PaymentGateway
	Fiscal      domain.FiscalProvider
	Publisher   EventPublisher
	Metrics     *metrics.PaymentMetrics

	eventTopic  string
	callbackURL string
	vatRate     int
}

func NewDefaultPaymentUsecase(
	orderRepo domain.OrderRepository,
	paymentRepo domain.PaymentRepository,
	receiptRepo domain.ReceiptRepository,
	gateway domain.PaymentGateway,
	fiscal domain.FiscalProvider,
	eventPublisher EventPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	opts Options) *DefaultPaymentUsecase {

	if opts.EventTopic == "" {
		opts.EventTopic = "payment-events"
	}
	if opts.VatRate == 0 {
		opts.VatRate = 20
	}

	return &DefaultPaymentUsecase{
		OrderRepo:   orderRepo,
		PaymentRepo: paymentRepo,
		ReceiptRepo: receiptRepo,
		Gateway:     gateway,
		Fiscal:      fiscal,
		Publisher:   eventPublisher,
		Metrics:     paymentMetrics,
		eventTopic:  opts.EventTopic,
		callbackURL: opts.CallbackURL,
		vatRate:     opts.VatRate,
	}
}

func (uc *DefaultPaymentUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultPaymentUsecase) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByNumber(orderNumber)
}

func (uc *DefaultPaymentUsecase) GetPaymentByOrderID(orderID string) (*domain.Payment, error) {
	return uc.PaymentRepo.GetPaymentByOrderID(orderID)
}
