package publisher

import (
	"encoding/json"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

// PaymentEvent is published to the payment-events topic on every applied
// payment transition and on fiscal receipt creation. Consumers (email
// notifications, admin feed) key off OrderNumber.
type PaymentEvent struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Provider    string `json:"provider"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	FiscalCode  string `json:"fiscal_code,omitempty"`
}

func (k *DefaultKafkaPublisher) PublishPaymentEvent(topic string, event PaymentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.OrderNumber), Value: value})
}
