package mappers

import (
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            model.ID,
		OrderID:       model.OrderID,
		Provider:      model.Provider,
		Amount:        model.Amount,
		Currency:      model.Currency,
		Status:        model.Status,
		TransactionID: model.TransactionID,
		Metadata:      model.Metadata,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Provider:      payment.Provider,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		Metadata:      payment.Metadata,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}
