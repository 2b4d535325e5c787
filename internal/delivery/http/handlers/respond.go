package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrReceiptNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrPaymentNotCompleted),
		errors.Is(err, domain.ErrNotGatewayPayment),
		errors.Is(err, domain.ErrRefundRejected),
		errors.Is(err, domain.ErrShiftAlreadyOpen),
		errors.Is(err, domain.ErrNoOpenShift):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
