package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	PaymentDB    `yaml:"payment_db"`
	LogConfig    `yaml:"log_config"`
	LiqPay       `yaml:"liqpay"`
	Checkbox     `yaml:"checkbox"`
	Fiscal       `yaml:"fiscal"`
	KafkaService `yaml:"kafka-service"`
	Callback     `yaml:"callback"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentDB struct {
	Dsn string `yaml:"dsn" env:"PAYMENT_DB_DSN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type LiqPay struct {
	PublicKey  string `yaml:"public_key" env:"LIQPAY_PUBLIC_KEY"`
	PrivateKey string `yaml:"private_key" env:"LIQPAY_PRIVATE_KEY"`
	Sandbox    bool   `yaml:"sandbox" env:"LIQPAY_SANDBOX"`
	ResultURL  string `yaml:"result_url"`
	ServerURL  string `yaml:"server_url"`
}

type Checkbox struct {
	Login          string `yaml:"login" env:"CHECKBOX_LOGIN"`
	Password       string `yaml:"password" env:"CHECKBOX_PASSWORD"`
	LicenseKey     string `yaml:"license_key" env:"CHECKBOX_LICENSE_KEY"`
	CashRegisterID string `yaml:"cash_register_id" env:"CHECKBOX_CASH_REGISTER_ID"`
	Production     bool   `yaml:"production" env:"CHECKBOX_PRODUCTION"`
}

type Fiscal struct {
	VatRate int `yaml:"vat_rate" env-default:"20"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payment-events"`
}

type Callback struct {
	URL string `yaml:"url"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
