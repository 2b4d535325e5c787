package models

import (
	"time"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

type PaymentModel struct {
	ID            string                 `gorm:"primaryKey;type:uuid"`
	OrderID       string                 `gorm:"type:uuid;uniqueIndex;not null"`
	Order         OrderModel             `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Provider      domain.PaymentProvider `gorm:"not null"`
	Amount        int64                  `gorm:"not null"`
	Currency      string                 `gorm:"not null;default:'UAH'"`
	Status        domain.PaymentStatus   `gorm:"index:idx_payment_model_status;not null"`
	TransactionID string
	Metadata      string `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
