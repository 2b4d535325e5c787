package handlers

import (
	"errors"
	"net/http"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	"github.com/yaovidiy/e-commerce-cms/internal/usecase/payment"
)

type WebhookHandler struct {
	uc payment.PaymentUsecase
}

func NewWebhookHandler(uc payment.PaymentUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

// LiqPayWebhook receives the form-urlencoded server callback. Any processed
// outcome acks 200 so the provider stops redelivering; 400 is reserved for
// missing fields and signature failures, store errors go 5xx and get
// redelivered.
func (h *WebhookHandler) LiqPayWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed form payload"})
		return
	}

	data := r.PostFormValue("data")
	signature := r.PostFormValue("signature")
	if data == "" || signature == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing data or signature"})
		return
	}

	result, err := h.uc.HandleWebhook(data, signature)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"payment_status": result.PaymentStatus,
		"order_status":   result.OrderStatus,
	})
}
