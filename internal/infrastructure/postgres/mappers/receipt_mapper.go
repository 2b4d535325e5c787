package mappers

import (
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/models"
)

func ToDomainReceipt(model *models.FiscalReceiptModel) *domain.FiscalReceipt {
	return &domain.FiscalReceipt{
		ID:             model.ID,
		OrderID:        model.OrderID,
		PaymentID:      model.PaymentID,
		ReceiptID:      model.ReceiptID,
		FiscalCode:     model.FiscalCode,
		ReceiptURL:     model.ReceiptURL,
		Status:         model.Status,
		ErrorMessage:   model.ErrorMessage,
		ProviderData:   model.ProviderData,
		ShiftID:        model.ShiftID,
		CashRegisterID: model.CashRegisterID,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMReceipt(receipt *domain.FiscalReceipt) *models.FiscalReceiptModel {
	return &models.FiscalReceiptModel{
		ID:             receipt.ID,
		OrderID:        receipt.OrderID,
		PaymentID:      receipt.PaymentID,
		ReceiptID:      receipt.ReceiptID,
		FiscalCode:     receipt.FiscalCode,
		ReceiptURL:     receipt.ReceiptURL,
		Status:         receipt.Status,
		ErrorMessage:   receipt.ErrorMessage,
		ProviderData:   receipt.ProviderData,
		ShiftID:        receipt.ShiftID,
		CashRegisterID: receipt.CashRegisterID,
		CreatedAt:      receipt.CreatedAt,
		UpdatedAt:      receipt.UpdatedAt,
	}
}
