package repository

import (
	"errors"
	"time"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/mappers"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.DB.Create(paymentModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByOrderID(orderID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.First(&payment, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPayment(&payment), nil
}

// ApplyTransition writes the payment and order status change in one
// transaction, holding a row lock on the payment so a racing webhook and
// status check cannot interleave partial writes for the same order.
func (r *DefaultPaymentRepository) ApplyTransition(t *domain.PaymentTransition) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var payment models.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "id = ?", t.PaymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPaymentNotFound
			}
			return err
		}

		now := time.Now()
		paymentUpdates := map[string]interface{}{
			"status":     t.Status,
			"updated_at": now,
		}
		if t.TransactionID != "" {
			paymentUpdates["transaction_id"] = t.TransactionID
		}
		if t.Metadata != "" {
			paymentUpdates["metadata"] = t.Metadata
		}
		if err := tx.Model(&models.PaymentModel{}).
			Where("id = ?", t.PaymentID).
			Updates(paymentUpdates).Error; err != nil {
			return err
		}

		orderUpdates := map[string]interface{}{
			"payment_status": t.Status,
			"updated_at":     now,
		}
		if t.OrderStatus != "" {
			orderUpdates["status"] = t.OrderStatus
		}
		return tx.Model(&models.OrderModel{}).
			Where("id = ?", t.OrderID).
			Updates(orderUpdates).Error
	})
}
