package models

import (
	"time"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

type OrderModel struct {
	ID            string               `gorm:"primaryKey;type:uuid"`
	OrderNumber   string               `gorm:"uniqueIndex;not null"`
	Status        domain.OrderStatus   `gorm:"index:idx_order_status;not null"`
	PaymentStatus domain.PaymentStatus `gorm:"index:idx_payment_status;not null"`
	Total         int64                `gorm:"not null"`
	Currency      string               `gorm:"not null;default:'UAH'"`
	CustomerEmail string
	CustomerPhone string
	Items         string    `gorm:"type:jsonb"`
	CreatedAt     time.Time `gorm:"index:idx_order_created_at"`
	UpdatedAt     time.Time
}
