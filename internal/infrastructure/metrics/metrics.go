package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PaymentMetrics struct {
	WebhooksTotal prometheus.CounterVec

	PaymentsCompletedTotal prometheus.CounterVec
	PaymentsFailedTotal    prometheus.CounterVec
	RefundsTotal           prometheus.CounterVec

	FiscalReceiptsTotal prometheus.CounterVec

	GatewayRequestDuration prometheus.HistogramVec
	FiscalRequestDuration  prometheus.HistogramVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		WebhooksTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhooks_total",
				Help: "Webhook deliveries by processing result",
			},
			[]string{"result"},
		),

		PaymentsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_completed_total",
				Help: "Payments that reached completed status",
			},
			[]string{"provider"},
		),

		PaymentsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_failed_total",
				Help: "Payments that reached failed status",
			},
			[]string{"provider"},
		),

		RefundsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_refunds_total",
				Help: "Refunds applied",
			},
			[]string{"provider"},
		),

		FiscalReceiptsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fiscal_receipts_total",
				Help: "Fiscal receipt rows written, by status",
			},
			[]string{"status"},
		),

		GatewayRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_gateway_request_duration_seconds",
				Help:    "Outbound LiqPay request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action"},
		),

		FiscalRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fiscal_request_duration_seconds",
				Help:    "Outbound Checkbox request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action"},
		),
	}
}

func (m *PaymentMetrics) RecordWebhook(result string) {
	if m == nil {
		return
	}
	m.WebhooksTotal.WithLabelValues(result).Inc()
}

func (m *PaymentMetrics) RecordTransition(provider, status string) {
	if m == nil {
		return
	}
	switch status {
	case "completed":
		m.PaymentsCompletedTotal.WithLabelValues(provider).Inc()
	case "failed":
		m.PaymentsFailedTotal.WithLabelValues(provider).Inc()
	case "refunded":
		m.RefundsTotal.WithLabelValues(provider).Inc()
	}
}

func (m *PaymentMetrics) RecordReceipt(status string) {
	if m == nil {
		return
	}
	m.FiscalReceiptsTotal.WithLabelValues(status).Inc()
}
