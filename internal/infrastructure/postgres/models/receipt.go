package models

import (
	"time"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

type FiscalReceiptModel struct {
	ID             string               `gorm:"primaryKey;type:uuid"`
	OrderID        string               `gorm:"type:uuid;index:idx_receipt_order;not null"`
	PaymentID      string               `gorm:"type:uuid;not null"`
	ReceiptID      string
	FiscalCode     string
	ReceiptURL     string
	Status         domain.ReceiptStatus `gorm:"index:idx_receipt_status;not null"`
	ErrorMessage   string
	ProviderData   string `gorm:"type:jsonb"`
	ShiftID        string
	CashRegisterID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
