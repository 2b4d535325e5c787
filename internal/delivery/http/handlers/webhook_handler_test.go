package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

// stubUsecase satisfies the payment usecase interface with canned responses;
// tests override only what they exercise.
type stubUsecase struct {
	webhookOutput *paymentdto.WebhookOutput
	webhookErr    error

	order      *domain.Order
	orderErr   error
	payment    *domain.Payment
	paymentErr error
	receipt    *domain.FiscalReceipt
	receiptErr error

	gotData      string
	gotSignature string
}

func (s *stubUsecase) CreateOrder(input *paymentdto.CreateOrderInput) (*domain.Order, error) {
	return s.order, s.orderErr
}
func (s *stubUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return s.order, s.orderErr
}
func (s *stubUsecase) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	return s.order, s.orderErr
}
func (s *stubUsecase) CreatePayment(input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error) {
	return &paymentdto.PaymentOutput{Payment: s.payment}, s.paymentErr
}
func (s *stubUsecase) GetPaymentByOrderID(orderID string) (*domain.Payment, error) {
	return s.payment, s.paymentErr
}
func (s *stubUsecase) HandleWebhook(data, signature string) (*paymentdto.WebhookOutput, error) {
	s.gotData = data
	s.gotSignature = signature
	return s.webhookOutput, s.webhookErr
}
func (s *stubUsecase) CheckPaymentStatus(orderID string) (*paymentdto.StatusOutput, error) {
	return &paymentdto.StatusOutput{}, nil
}
func (s *stubUsecase) Refund(orderID string) (*paymentdto.RefundOutput, error) {
	return &paymentdto.RefundOutput{}, nil
}
func (s *stubUsecase) Fiscalize(orderID string) (*domain.FiscalReceipt, error) {
	return s.receipt, s.receiptErr
}
func (s *stubUsecase) GetReceiptByOrderID(orderID string) (*domain.FiscalReceipt, error) {
	return s.receipt, s.receiptErr
}
func (s *stubUsecase) GetReceiptHistory(orderID string) ([]*domain.FiscalReceipt, error) {
	return nil, nil
}
func (s *stubUsecase) OpenShift() (*domain.Shift, error)    { return nil, nil }
func (s *stubUsecase) CloseShift() (*domain.Shift, error)   { return nil, nil }
func (s *stubUsecase) CurrentShift() (*domain.Shift, error) { return nil, nil }

func postWebhook(h *WebhookHandler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/liqpay", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.LiqPayWebhook(rr, req)
	return rr
}

func TestLiqPayWebhook_MissingFields(t *testing.T) {
	t.Parallel()
	h := NewWebhookHandler(&stubUsecase{})

	rr := postWebhook(h, url.Values{})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postWebhook(h, url.Values{"data": {"abc"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postWebhook(h, url.Values{"signature": {"abc"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLiqPayWebhook_InvalidSignature(t *testing.T) {
	t.Parallel()
	h := NewWebhookHandler(&stubUsecase{webhookErr: domain.ErrInvalidSignature})

	rr := postWebhook(h, url.Values{"data": {"payload"}, "signature": {"forged"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid webhook signature")
}

func TestLiqPayWebhook_Processed(t *testing.T) {
	t.Parallel()
	stub := &stubUsecase{
		webhookOutput: &paymentdto.WebhookOutput{
			PaymentStatus: domain.PaymentStatusCompleted,
			OrderStatus:   domain.OrderStatusProcessing,
		},
	}
	h := NewWebhookHandler(stub)

	rr := postWebhook(h, url.Values{"data": {"payload"}, "signature": {"sig"}})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "payload", stub.gotData)
	require.Equal(t, "sig", stub.gotSignature)
	require.Contains(t, rr.Body.String(), `"payment_status":"completed"`)
	require.Contains(t, rr.Body.String(), `"order_status":"processing"`)
}

func TestLiqPayWebhook_StoreError(t *testing.T) {
	t.Parallel()
	h := NewWebhookHandler(&stubUsecase{webhookErr: domain.ErrOrderNotFound})

	rr := postWebhook(h, url.Values{"data": {"payload"}, "signature": {"sig"}})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWriteError_SentinelMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrPaymentNotFound, http.StatusNotFound},
		{domain.ErrReceiptNotFound, http.StatusNotFound},
		{domain.ErrInvalidSignature, http.StatusBadRequest},
		{domain.ErrPaymentNotCompleted, http.StatusBadRequest},
		{domain.ErrNotGatewayPayment, http.StatusBadRequest},
		{domain.ErrRefundRejected, http.StatusBadRequest},
		{domain.ErrShiftAlreadyOpen, http.StatusBadRequest},
		{domain.ErrNoOpenShift, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		writeError(rr, tc.err)
		require.Equal(t, tc.code, rr.Code, "err=%v", tc.err)
	}
}
