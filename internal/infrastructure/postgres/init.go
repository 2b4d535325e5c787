package postgres

import (
	"log"

	"github.com/yaovidiy/e-commerce-cms/internal/config"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.PaymentConfig) *gorm.DB {
	dsn := cfg.PaymentDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.OrderModel{}, &models.PaymentModel{}, &models.FiscalReceiptModel{})

	return db
}
