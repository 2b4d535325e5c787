package repository

import (
	"errors"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/mappers"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReceiptRepository struct {
	DB *gorm.DB
}

func NewDefaultReceiptRepository(db *gorm.DB) *DefaultReceiptRepository {
	return &DefaultReceiptRepository{DB: db}
}

func (r *DefaultReceiptRepository) CreateReceipt(receipt *domain.FiscalReceipt) error {
	receiptModel := mappers.ToGORMReceipt(receipt)
	if err := r.DB.Create(receiptModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultReceiptRepository) GetActiveReceiptByOrderID(orderID string) (*domain.FiscalReceipt, error) {
	var receipt models.FiscalReceiptModel
	err := r.DB.
		Where("order_id = ?", orderID).
		Where("status <> ?", domain.ReceiptStatusError).
		Order("created_at DESC").
		First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, err
	}

	return mappers.ToDomainReceipt(&receipt), nil
}

func (r *DefaultReceiptRepository) GetReceiptsByOrderID(orderID string) ([]*domain.FiscalReceipt, error) {
	var receiptModels []models.FiscalReceiptModel
	if err := r.DB.
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&receiptModels).Error; err != nil {
		return nil, err
	}

	receipts := make([]*domain.FiscalReceipt, len(receiptModels))
	for i, receiptModel := range receiptModels {
		receipts[i] = mappers.ToDomainReceipt(&receiptModel)
	}

	return receipts, nil
}
