package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yaovidiy/e-commerce-cms/internal/delivery/http/handlers"
)

type Server struct {
	Router *chi.Mux
}

func NewServer(
	paymentHandler *handlers.PaymentHandler,
	fiscalHandler *handlers.FiscalHandler,
	webhookHandler *handlers.WebhookHandler,
) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/webhooks/liqpay", webhookHandler.LiqPayWebhook)

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", paymentHandler.CreateOrder)
		r.Get("/{orderID}", paymentHandler.GetOrder)
		r.Get("/number/{orderNumber}", paymentHandler.GetOrderByNumber)
	})

	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/", paymentHandler.CreatePayment)
		r.Get("/{orderID}", paymentHandler.GetPayment)
		r.Post("/{orderID}/check", paymentHandler.CheckStatus)
		r.Post("/{orderID}/refund", paymentHandler.Refund)
	})

	r.Route("/api/receipts", func(r chi.Router) {
		r.Post("/{orderID}", fiscalHandler.Fiscalize)
		r.Get("/{orderID}", fiscalHandler.GetReceipt)
		r.Get("/{orderID}/history", fiscalHandler.GetReceiptHistory)
	})

	r.Route("/api/shifts", func(r chi.Router) {
		r.Get("/current", fiscalHandler.CurrentShift)
		r.Post("/open", fiscalHandler.OpenShift)
		r.Post("/close", fiscalHandler.CloseShift)
	})

	return &Server{Router: r}
}
