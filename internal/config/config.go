// Package config loads runtime settings from the environment.
//
// Values come from process env vars (a local .env is loaded by
// godotenv/autoload in the entrypoints) and fall back to the defaults below.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port int

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string

	Tables Tables

	StorageBucket        string
	StoragePublicBaseURL string

	EmailAPIURL string
	EmailAPIKey string
	EmailFrom   string
	EmailTo     string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	ReconcileCron string
	CacheSize     int
	CacheTTL      time.Duration
}

// Tables holds the DynamoDB table names, one per entity.
type Tables struct {
	Clients       string
	Stages        string
	StageProgress string
	ServiceOrders string
	CatalogItems  string
	Colors        string
	Quotes        string
	QuoteRequests string
	Payments      string
}

var defaults = map[string]any{
	"PORT":                           8080,
	"AWS_REGION":                     "us-east-1",
	"AWS_ACCESS_KEY_ID":              "local",
	"AWS_SECRET_ACCESS_KEY":          "local",
	"DYNAMODB_ENDPOINT":              "",
	"S3_ENDPOINT":                    "",
	"CLIENTS_TABLE":                  "clientes",
	"STAGES_TABLE":                   "etapas_producao",
	"STAGE_PROGRESS_TABLE":           "acompanhamento_os",
	"SERVICE_ORDERS_TABLE":           "ordens_servico",
	"CATALOG_ITEMS_TABLE":            "configuracoes",
	"COLORS_TABLE":                   "cores",
	"QUOTES_TABLE":                   "orcamentos",
	"QUOTE_REQUESTS_TABLE":           "solicitacoes_orcamento",
	"PAYMENTS_TABLE":                 "payments",
	"STORAGE_BUCKET":                 "anexos",
	"STORAGE_PUBLIC_BASE_URL":        "",
	"EMAIL_API_URL":                  "https://api.resend.com/emails",
	"EMAIL_API_KEY":                  "",
	"EMAIL_FROM":                     "Orçamentos <orcamentos@example.com>",
	"EMAIL_TO":                       "",
	"MERCADOPAGO_ACCESS_TOKEN":       "",
	"MERCADOPAGO_TEST_PAYER_EMAIL":   "",
	"MERCADOPAGO_TEST_PAYER_USER_ID": "",
	"PAYMENT_GATEWAY_MOCK":           false,
	"RECONCILE_CRON":                 "*/15 * * * *",
	"CACHE_SIZE":                     512,
	"CACHE_TTL":                      "5m",
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	cfg := &Config{
		Port:               v.GetInt("PORT"),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
		S3Endpoint:         v.GetString("S3_ENDPOINT"),
		Tables: Tables{
			Clients:       v.GetString("CLIENTS_TABLE"),
			Stages:        v.GetString("STAGES_TABLE"),
			StageProgress: v.GetString("STAGE_PROGRESS_TABLE"),
			ServiceOrders: v.GetString("SERVICE_ORDERS_TABLE"),
			CatalogItems:  v.GetString("CATALOG_ITEMS_TABLE"),
			Colors:        v.GetString("COLORS_TABLE"),
			Quotes:        v.GetString("QUOTES_TABLE"),
			QuoteRequests: v.GetString("QUOTE_REQUESTS_TABLE"),
			Payments:      v.GetString("PAYMENTS_TABLE"),
		},
		StorageBucket:              v.GetString("STORAGE_BUCKET"),
		StoragePublicBaseURL:       strings.TrimRight(v.GetString("STORAGE_PUBLIC_BASE_URL"), "/"),
		EmailAPIURL:                v.GetString("EMAIL_API_URL"),
		EmailAPIKey:                v.GetString("EMAIL_API_KEY"),
		EmailFrom:                  v.GetString("EMAIL_FROM"),
		EmailTo:                    v.GetString("EMAIL_TO"),
		MercadoPagoAccessToken:     v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoTestPayerEmail:  v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL"),
		MercadoPagoTestPayerUserID: v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID"),
		PaymentGatewayMock:         v.GetBool("PAYMENT_GATEWAY_MOCK"),
		ReconcileCron:              v.GetString("RECONCILE_CRON"),
		CacheSize:                  v.GetInt("CACHE_SIZE"),
		CacheTTL:                   v.GetDuration("CACHE_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SandboxPayments reports whether the Mercado Pago token is a sandbox one.
func (c *Config) SandboxPayments() bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(c.MercadoPagoAccessToken)), "TEST-")
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	if c.StorageBucket == "" {
		return fmt.Errorf("config: STORAGE_BUCKET is required")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: CACHE_SIZE must be positive")
	}
	return nil
}
