package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/yaovidiy/e-commerce-cms/internal/config"
	httpserver "github.com/yaovidiy/e-commerce-cms/internal/delivery/http"
	"github.com/yaovidiy/e-commerce-cms/internal/delivery/http/handlers"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/checkbox"
	publisher "github.com/yaovidiy/e-commerce-cms/internal/infrastructure/kafka"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/liqpay"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/metrics"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/migrate"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres"
	"github.com/yaovidiy/e-commerce-cms/internal/infrastructure/postgres/repository"
	"github.com/yaovidiy/e-commerce-cms/internal/usecase/payment"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	receiptRepo := repository.NewDefaultReceiptRepository(db)

	// Init payment gateway
	gateway := liqpay.NewClient(liqpay.Config{
		PublicKey:  cfg.LiqPay.PublicKey,
		PrivateKey: cfg.LiqPay.PrivateKey,
		Sandbox:    cfg.LiqPay.Sandbox,
		ResultURL:  cfg.LiqPay.ResultURL,
		ServerURL:  cfg.LiqPay.ServerURL,
	})

	// Init fiscal provider
	fiscal := checkbox.NewClient(checkbox.Config{
		Login:          cfg.Checkbox.Login,
		Password:       cfg.Checkbox.Password,
		LicenseKey:     cfg.Checkbox.LicenseKey,
		CashRegisterID: cfg.Checkbox.CashRegisterID,
		Production:     cfg.Checkbox.Production,
	})

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)

	// Init metrics
	paymentMetrics := metrics.NewPaymentMetrics()

	// Init payment usecase
	uc := payment.NewDefaultPaymentUsecase(
		orderRepo,
		paymentRepo,
		receiptRepo,
		gateway,
		fiscal,
		pub,
		paymentMetrics,
		payment.Options{
			EventTopic:  cfg.KafkaService.Topic,
			CallbackURL: cfg.Callback.URL,
			VatRate:     cfg.Fiscal.VatRate,
		},
	)

	// Creating HTTP server
	server := httpserver.NewServer(
		handlers.NewPaymentHandler(uc),
		handlers.NewFiscalHandler(uc),
		handlers.NewWebhookHandler(uc),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, server.Router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
