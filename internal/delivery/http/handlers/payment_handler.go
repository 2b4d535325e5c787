package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
	"github.com/yaovidiy/e-commerce-cms/internal/usecase/payment"
)

type PaymentHandler struct {
	uc payment.PaymentUsecase
}

func NewPaymentHandler(uc payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type createOrderRequest struct {
	Items         []domain.OrderItem `json:"items"`
	Currency      string             `json:"currency"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerPhone string             `json:"customerPhone"`
}

type createPaymentRequest struct {
	OrderID string `json:"orderId"`
	Method  string `json:"method"`
}

func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.uc.CreateOrder(&paymentdto.CreateOrderInput{
		Items:         req.Items,
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *PaymentHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.GetOrderByID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *PaymentHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.GetOrderByNumber(chi.URLParam(r, "orderNumber"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	method := domain.PaymentProvider(req.Method)
	if method != domain.ProviderLiqPay && method != domain.ProviderCOD {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown payment method"})
		return
	}

	output, err := h.uc.CreatePayment(&paymentdto.CreatePaymentInput{
		OrderID: req.OrderID,
		Method:  method,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"payment":     output.Payment,
		"checkoutUrl": output.CheckoutURL,
	})
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetPaymentByOrderID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	output, err := h.uc.CheckPaymentStatus(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	output, err := h.uc.Refund(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
