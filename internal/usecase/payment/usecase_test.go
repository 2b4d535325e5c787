package payment

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

// memStore implements the order, payment and receipt repositories in memory,
// recording every applied transition for assertions.
type memStore struct {
	orders      map[string]*domain.Order
	payments    map[string]*domain.Payment
	receipts    []*domain.FiscalReceipt
	transitions []*domain.PaymentTransition
}

func newMemStore() *memStore {
	return &memStore{
		orders:   make(map[string]*domain.Order),
		payments: make(map[string]*domain.Payment),
	}
}

func (s *memStore) CreateOrder(order *domain.Order) error {
	s.orders[order.ID] = order
	return nil
}

func (s *memStore) GetOrderByID(orderID string) (*domain.Order, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *memStore) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	for _, order := range s.orders {
		if order.OrderNumber == orderNumber {
			return order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *memStore) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = newStatus
	return nil
}

func (s *memStore) CreatePayment(payment *domain.Payment) error {
	s.payments[payment.OrderID] = payment
	return nil
}

func (s *memStore) GetPaymentByOrderID(orderID string) (*domain.Payment, error) {
	payment, ok := s.payments[orderID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *memStore) ApplyTransition(t *domain.PaymentTransition) error {
	payment, ok := s.payments[t.OrderID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	order, ok := s.orders[t.OrderID]
	if !ok {
		return domain.ErrOrderNotFound
	}

	payment.Status = t.Status
	if t.TransactionID != "" {
		payment.TransactionID = t.TransactionID
	}
	if t.Metadata != "" {
		payment.Metadata = t.Metadata
	}
	order.PaymentStatus = t.Status
	if t.OrderStatus != "" {
		order.Status = t.OrderStatus
	}

	s.transitions = append(s.transitions, t)
	return nil
}

func (s *memStore) CreateReceipt(receipt *domain.FiscalReceipt) error {
	s.receipts = append(s.receipts, receipt)
	return nil
}

func (s *memStore) GetActiveReceiptByOrderID(orderID string) (*domain.FiscalReceipt, error) {
	for i := len(s.receipts) - 1; i >= 0; i-- {
		receipt := s.receipts[i]
		if receipt.OrderID == orderID && receipt.Status != domain.ReceiptStatusError {
			return receipt, nil
		}
	}
	return nil, domain.ErrReceiptNotFound
}

func (s *memStore) GetReceiptsByOrderID(orderID string) ([]*domain.FiscalReceipt, error) {
	var out []*domain.FiscalReceipt
	for _, receipt := range s.receipts {
		if receipt.OrderID == orderID {
			out = append(out, receipt)
		}
	}
	return out, nil
}

type fakeGateway struct {
	status       *domain.GatewayStatus
	refundResult *domain.RefundResult

	checkoutCalls int
	queryCalls    int
	refundCalls   int
}

func (g *fakeGateway) CreateCheckout(req *domain.CheckoutRequest) (*domain.Checkout, error) {
	g.checkoutCalls++
	return &domain.Checkout{
		RedirectURL: "https://www.liqpay.ua/api/3/checkout?data=d&signature=s",
		Data:        "d",
		Signature:   "s",
	}, nil
}

func (g *fakeGateway) ParseWebhook(data, signature string) *domain.GatewayStatus {
	if signature != "valid" {
		return nil
	}
	return g.status
}

func (g *fakeGateway) QueryStatus(orderNumber string) (*domain.GatewayStatus, error) {
	g.queryCalls++
	return g.status, nil
}

func (g *fakeGateway) Refund(orderNumber string, amount int64) (*domain.RefundResult, error) {
	g.refundCalls++
	return g.refundResult, nil
}

type fakeFiscal struct {
	err   error
	shift *domain.Shift

	saleCalls   int
	returnCalls int
	lastRequest *domain.SaleReceiptRequest
}

func (f *fakeFiscal) CurrentShift() (*domain.Shift, error) { return f.shift, nil }

func (f *fakeFiscal) OpenShift() (*domain.Shift, error) {
	f.shift = &domain.Shift{ID: "shift-1", Status: "OPENED", CashRegisterID: "register-1"}
	return f.shift, nil
}

func (f *fakeFiscal) CloseShift() (*domain.Shift, error) {
	closed := *f.shift
	closed.Status = "CLOSED"
	f.shift = nil
	return &closed, nil
}

func (f *fakeFiscal) CreateSaleReceipt(req *domain.SaleReceiptRequest) (*domain.ProviderReceipt, error) {
	f.saleCalls++
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ProviderReceipt{
		ID:         fmt.Sprintf("receipt-%d", f.saleCalls),
		Status:     "DONE",
		FiscalCode: fmt.Sprintf("FC%08d", f.saleCalls),
		ReceiptURL: "https://check.checkbox.ua/receipt-1",
	}, nil
}

func (f *fakeFiscal) CreateReturnReceipt(req *domain.SaleReceiptRequest) (*domain.ProviderReceipt, error) {
	f.returnCalls++
	return &domain.ProviderReceipt{ID: "return-1", Status: "DONE"}, nil
}

type fixture struct {
	store   *memStore
	gateway *fakeGateway
	fiscal  *fakeFiscal
	uc      *DefaultPaymentUsecase
}

func newFixture() *fixture {
	store := newMemStore()
	gateway := &fakeGateway{}
	fiscal := &fakeFiscal{}

	uc := NewDefaultPaymentUsecase(store, store, store, gateway, fiscal, nil, nil, Options{})

	return &fixture{store: store, gateway: gateway, fiscal: fiscal, uc: uc}
}

func (f *fixture) seedOrder(t *testing.T, provider domain.PaymentProvider, paymentStatus domain.PaymentStatus) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ID:            uuid.NewString(),
		OrderNumber:   "ORD-TEST123456",
		Status:        domain.OrderStatusPending,
		PaymentStatus: paymentStatus,
		Total:         50000,
		Currency:      "UAH",
		CustomerEmail: "buyer@example.com",
		Items: []domain.OrderItem{
			{ProductID: "sku-1", Name: "Ceramic mug", Price: 25000, Quantity: 2},
		},
	}
	require.NoError(t, f.store.CreateOrder(order))
	require.NoError(t, f.store.CreatePayment(&domain.Payment{
		ID:       uuid.NewString(),
		OrderID:  order.ID,
		Provider: provider,
		Amount:   order.Total,
		Currency: order.Currency,
		Status:   paymentStatus,
	}))
	return order
}

func TestMapProviderStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		provider string
		want     domain.PaymentStatus
	}{
		{"success", domain.PaymentStatusCompleted},
		{"failure", domain.PaymentStatusFailed},
		{"error", domain.PaymentStatusFailed},
		{"reversed", domain.PaymentStatusRefunded},
		{"wait_accept", domain.PaymentStatusPending},
		{"processing", domain.PaymentStatusPending},
		{"3ds_verify", domain.PaymentStatusPending},
		{"sandbox", domain.PaymentStatusPending},
		{"", domain.PaymentStatusPending},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, mapProviderStatus(tc.provider), "provider=%q", tc.provider)
	}
}

func TestHandleWebhook_Success(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "success",
		PaymentID:   987654321,
		Amount:      50000,
		Currency:    "UAH",
		Raw:         `{"status":"success"}`,
	}

	output, err := f.uc.HandleWebhook("payload", "valid")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusCompleted, output.PaymentStatus)
	require.Equal(t, domain.OrderStatusProcessing, output.OrderStatus)
	require.NotNil(t, output.Receipt)
	require.NotEqual(t, domain.ReceiptStatusError, output.Receipt.Status)

	payment := f.store.payments[order.ID]
	require.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	require.Equal(t, "987654321", payment.TransactionID)
	require.Equal(t, domain.OrderStatusProcessing, order.Status)
	require.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)

	require.Equal(t, 1, f.fiscal.saleCalls)
	request := f.fiscal.lastRequest
	require.Equal(t, order.OrderNumber, request.OrderID)
	require.Len(t, request.Goods, 1)
	require.Equal(t, int64(25000), request.Goods[0].Price)
	require.Equal(t, int64(50000), request.Goods[0].Cost)
	require.Equal(t, []int{20}, request.Goods[0].Tax)
	require.Equal(t, []domain.ReceiptPayment{{Type: "CASHLESS", Value: 50000}}, request.Payments)
}

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	_, err := f.uc.HandleWebhook("payload", "forged")
	require.ErrorIs(t, err, domain.ErrInvalidSignature)

	require.Empty(t, f.store.transitions)
	require.Empty(t, f.store.receipts)
	require.Equal(t, domain.PaymentStatusPending, f.store.payments[order.ID].Status)
	require.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestHandleWebhook_Replay(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "success",
		PaymentID:   42,
	}

	first, err := f.uc.HandleWebhook("payload", "valid")
	require.NoError(t, err)
	second, err := f.uc.HandleWebhook("payload", "valid")
	require.NoError(t, err)

	require.Equal(t, first.PaymentStatus, second.PaymentStatus)
	require.Equal(t, first.OrderStatus, second.OrderStatus)

	require.Len(t, f.store.transitions, 1)
	require.Len(t, f.store.receipts, 1)
	require.Equal(t, 1, f.fiscal.saleCalls)
}

func TestHandleWebhook_Failure(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber:    order.OrderNumber,
		Status:         "failure",
		ErrCode:        "limit",
		ErrDescription: "Превышен лимит",
	}

	output, err := f.uc.HandleWebhook("payload", "valid")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusFailed, output.PaymentStatus)
	require.Equal(t, domain.OrderStatusPending, output.OrderStatus)
	require.Nil(t, output.Receipt)

	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Equal(t, 0, f.fiscal.saleCalls)
}

func TestHandleWebhook_ReversedAfterCompleted(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "reversed",
	}

	output, err := f.uc.HandleWebhook("payload", "valid")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusRefunded, output.PaymentStatus)
	require.Equal(t, domain.OrderStatusRefunded, output.OrderStatus)
	require.Equal(t, domain.OrderStatusRefunded, order.Status)
}

func TestHandleWebhook_LateSuccessAfterFailed(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusFailed)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "success",
	}

	// failed is terminal, the late delivery is acked but not applied
	output, err := f.uc.HandleWebhook("payload", "valid")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusFailed, output.PaymentStatus)
	require.Empty(t, f.store.transitions)
	require.Equal(t, 0, f.fiscal.saleCalls)
}

func TestHandleWebhook_UnknownOrder(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.gateway.status = &domain.GatewayStatus{OrderNumber: "ORD-UNKNOWN", Status: "success"}

	_, err := f.uc.HandleWebhook("payload", "valid")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCheckPaymentStatus_COD(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderCOD, domain.PaymentStatusPending)

	output, err := f.uc.CheckPaymentStatus(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusPending, output.Status)
	require.Equal(t, domain.ProviderCOD, output.Provider)
	require.False(t, output.Applied)
	require.Equal(t, 0, f.gateway.queryCalls)
}

func TestCheckPaymentStatus_AppliesGatewayStatus(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "success",
		PaymentID:   7,
	}

	output, err := f.uc.CheckPaymentStatus(order.ID)
	require.NoError(t, err)
	require.True(t, output.Applied)
	require.Equal(t, domain.PaymentStatusCompleted, output.Status)
	require.Equal(t, 1, f.gateway.queryCalls)
	require.Equal(t, domain.OrderStatusProcessing, order.Status)

	// fiscalization stays an explicit action on this path
	require.Equal(t, 0, f.fiscal.saleCalls)
	require.Empty(t, f.store.receipts)
}

func TestCheckPaymentStatus_PendingNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	f.gateway.status = &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "wait_accept",
	}

	output, err := f.uc.CheckPaymentStatus(order.ID)
	require.NoError(t, err)
	require.False(t, output.Applied)
	require.Equal(t, domain.PaymentStatusPending, output.Status)
	require.Empty(t, f.store.transitions)
}

func TestFiscalize_Idempotent(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)

	first, err := f.uc.Fiscalize(order.ID)
	require.NoError(t, err)
	second, err := f.uc.Fiscalize(order.ID)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, f.fiscal.saleCalls)
	require.Len(t, f.store.receipts, 1)
}

func TestFiscalize_Preconditions(t *testing.T) {
	t.Parallel()

	f := newFixture()
	cod := f.seedOrder(t, domain.ProviderCOD, domain.PaymentStatusCompleted)
	_, err := f.uc.Fiscalize(cod.ID)
	require.ErrorIs(t, err, domain.ErrNotGatewayPayment)

	f = newFixture()
	pending := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)
	_, err = f.uc.Fiscalize(pending.ID)
	require.ErrorIs(t, err, domain.ErrPaymentNotCompleted)

	require.Equal(t, 0, f.fiscal.saleCalls)
}

func TestFiscalize_ProviderErrorRecorded(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)
	f.fiscal.err = errors.New("checkbox api error: no open shift")

	receipt, err := f.uc.Fiscalize(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReceiptStatusError, receipt.Status)
	require.Contains(t, receipt.ErrorMessage, "no open shift")

	// the error row does not satisfy the active-receipt lookup
	_, err = f.uc.GetReceiptByOrderID(order.ID)
	require.ErrorIs(t, err, domain.ErrReceiptNotFound)

	// retry after the provider recovers issues a new receipt
	f.fiscal.err = nil
	retried, err := f.uc.Fiscalize(order.ID)
	require.NoError(t, err)
	require.NotEqual(t, receipt.ID, retried.ID)
	require.NotEqual(t, domain.ReceiptStatusError, retried.Status)

	history, err := f.uc.GetReceiptHistory(order.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	active, err := f.uc.GetReceiptByOrderID(order.ID)
	require.NoError(t, err)
	require.Equal(t, retried.ID, active.ID)
}

func TestFiscalize_ReceiptStatusByContact(t *testing.T) {
	t.Parallel()

	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)
	receipt, err := f.uc.Fiscalize(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReceiptStatusSent, receipt.Status)

	f = newFixture()
	order = f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)
	order.CustomerEmail = ""
	order.CustomerPhone = ""
	receipt, err = f.uc.Fiscalize(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReceiptStatusCreated, receipt.Status)
}

func TestFiscalize_CarriesShiftInfo(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)
	f.fiscal.shift = &domain.Shift{ID: "shift-7", Status: "OPENED", CashRegisterID: "register-1"}

	receipt, err := f.uc.Fiscalize(order.ID)
	require.NoError(t, err)
	require.Equal(t, "shift-7", receipt.ShiftID)
	require.Equal(t, "register-1", receipt.CashRegisterID)
}

func TestRefund_COD(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderCOD, domain.PaymentStatusCompleted)

	output, err := f.uc.Refund(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusRefunded, output.Status)
	require.Equal(t, "manual refund recorded", output.Message)

	require.Equal(t, 0, f.gateway.refundCalls)
	require.Equal(t, domain.PaymentStatusRefunded, f.store.payments[order.ID].Status)
	require.Equal(t, domain.OrderStatusRefunded, order.Status)
}

func TestRefund_Gateway(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)
	f.gateway.refundResult = &domain.RefundResult{Ok: true, Status: "reversed", Raw: `{"status":"reversed"}`}

	output, err := f.uc.Refund(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusRefunded, output.Status)
	require.Equal(t, 1, f.gateway.refundCalls)
	require.Equal(t, domain.PaymentStatusRefunded, f.store.payments[order.ID].Status)
	require.Equal(t, domain.OrderStatusRefunded, order.Status)
	require.Equal(t, `{"status":"reversed"}`, f.store.payments[order.ID].Metadata)
}

func TestRefund_GatewayRejected(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)
	f.gateway.refundResult = &domain.RefundResult{
		Ok:             false,
		Status:         "error",
		ErrDescription: "refund window expired",
	}

	_, err := f.uc.Refund(order.ID)
	require.ErrorIs(t, err, domain.ErrRefundRejected)
	require.Contains(t, err.Error(), "refund window expired")

	// rejection leaves the local state untouched
	require.Equal(t, domain.PaymentStatusCompleted, f.store.payments[order.ID].Status)
	require.Empty(t, f.store.transitions)
}

func TestRefund_RequiresCompleted(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusPending)

	_, err := f.uc.Refund(order.ID)
	require.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
	require.Equal(t, 0, f.gateway.refundCalls)
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()
	f := newFixture()

	order, err := f.uc.CreateOrder(&paymentdto.CreateOrderInput{
		Items: []domain.OrderItem{
			{ProductID: "sku-1", Name: "Ceramic mug", Price: 25000, Quantity: 2},
			{ProductID: "sku-2", Name: "Tea towel", Price: 9900, Quantity: 1},
		},
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, int64(59900), order.Total)
	require.Equal(t, "UAH", order.Currency)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	require.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	require.Len(t, order.OrderNumber, 14)
}

func TestCreateOrder_RequiresItems(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.uc.CreateOrder(&paymentdto.CreateOrderInput{})
	require.Error(t, err)
}

func TestCreatePayment_Idempotent(t *testing.T) {
	t.Parallel()
	f := newFixture()

	order, err := f.uc.CreateOrder(&paymentdto.CreateOrderInput{
		Items: []domain.OrderItem{{ProductID: "sku-1", Name: "Mug", Price: 25000, Quantity: 2}},
	})
	require.NoError(t, err)

	first, err := f.uc.CreatePayment(&paymentdto.CreatePaymentInput{OrderID: order.ID, Method: domain.ProviderLiqPay})
	require.NoError(t, err)
	require.NotEmpty(t, first.CheckoutURL)
	require.Equal(t, int64(50000), first.Payment.Amount)

	second, err := f.uc.CreatePayment(&paymentdto.CreatePaymentInput{OrderID: order.ID, Method: domain.ProviderLiqPay})
	require.NoError(t, err)
	require.Equal(t, first.Payment.ID, second.Payment.ID)
	require.Equal(t, first.CheckoutURL, second.CheckoutURL)
	require.Equal(t, 1, f.gateway.checkoutCalls)
}

func TestCreatePayment_COD(t *testing.T) {
	t.Parallel()
	f := newFixture()

	order, err := f.uc.CreateOrder(&paymentdto.CreateOrderInput{
		Items: []domain.OrderItem{{ProductID: "sku-1", Name: "Mug", Price: 100, Quantity: 1}},
	})
	require.NoError(t, err)

	output, err := f.uc.CreatePayment(&paymentdto.CreatePaymentInput{OrderID: order.ID, Method: domain.ProviderCOD})
	require.NoError(t, err)
	require.Empty(t, output.CheckoutURL)
	require.Equal(t, domain.ProviderCOD, output.Payment.Provider)
	require.Equal(t, 0, f.gateway.checkoutCalls)
}

func TestOpenShift_AlreadyOpen(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.fiscal.shift = &domain.Shift{ID: "shift-1", Status: "OPENED"}

	_, err := f.uc.OpenShift()
	require.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
}

func TestCloseShift_NoneOpen(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.uc.CloseShift()
	require.ErrorIs(t, err, domain.ErrNoOpenShift)
}

func TestShiftLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture()

	opened, err := f.uc.OpenShift()
	require.NoError(t, err)
	require.Equal(t, "OPENED", opened.Status)

	current, err := f.uc.CurrentShift()
	require.NoError(t, err)
	require.Equal(t, opened.ID, current.ID)

	closed, err := f.uc.CloseShift()
	require.NoError(t, err)
	require.Equal(t, "CLOSED", closed.Status)
}

// a status check racing the webhook sees the already-updated payment row
// and must not apply the same status twice
func TestApplyGatewayStatus_SameStatusNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture()
	order := f.seedOrder(t, domain.ProviderLiqPay, domain.PaymentStatusCompleted)

	_, _, applied, err := f.uc.applyGatewayStatus(order, f.store.payments[order.ID], &domain.GatewayStatus{
		OrderNumber: order.OrderNumber,
		Status:      "success",
	})
	require.NoError(t, err)
	require.False(t, applied)
	require.Empty(t, f.store.transitions)
}
