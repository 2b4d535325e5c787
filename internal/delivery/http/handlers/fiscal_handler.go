package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yaovidiy/e-commerce-cms/internal/usecase/payment"
)

type FiscalHandler struct {
	uc payment.PaymentUsecase
}

func NewFiscalHandler(uc payment.PaymentUsecase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

func (h *FiscalHandler) Fiscalize(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.uc.Fiscalize(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

func (h *FiscalHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.uc.GetReceiptByOrderID(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

func (h *FiscalHandler) GetReceiptHistory(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.uc.GetReceiptHistory(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, receipts)
}

func (h *FiscalHandler) OpenShift(w http.ResponseWriter, r *http.Request) {
	shift, err := h.uc.OpenShift()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, shift)
}

func (h *FiscalHandler) CloseShift(w http.ResponseWriter, r *http.Request) {
	shift, err := h.uc.CloseShift()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shift)
}

func (h *FiscalHandler) CurrentShift(w http.ResponseWriter, r *http.Request) {
	shift, err := h.uc.CurrentShift()
	if err != nil {
		writeError(w, err)
		return
	}
	if shift == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"open": false})
		return
	}

	writeJSON(w, http.StatusOK, shift)
}
