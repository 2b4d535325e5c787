package mappers

import (
	"encoding/json"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	var items []domain.OrderItem
	if model.Items != "" {
		// snapshot written by us at checkout, a parse failure leaves items empty
		_ = json.Unmarshal([]byte(model.Items), &items)
	}

	return &domain.Order{
		ID:            model.ID,
		OrderNumber:   model.OrderNumber,
		Status:        model.Status,
		PaymentStatus: model.PaymentStatus,
		Total:         model.Total,
		Currency:      model.Currency,
		CustomerEmail: model.CustomerEmail,
		CustomerPhone: model.CustomerPhone,
		Items:         items,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items, _ := json.Marshal(order.Items)

	return &models.OrderModel{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Total:         order.Total,
		Currency:      order.Currency,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         string(items),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
