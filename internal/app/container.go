// Package app wires repositories, gateways and use cases from the loaded
// configuration. Both the HTTP server and the ops CLI build on it.
package app

import (
	"confeccao_os/internal/adapter/persistence/repository"
	"confeccao_os/internal/config"
	"confeccao_os/internal/infrastructure/database"
	"confeccao_os/internal/infrastructure/email"
	"confeccao_os/internal/infrastructure/payments"
	"confeccao_os/internal/infrastructure/storage"
	"confeccao_os/internal/usecase"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
)

// Container holds the use cases of the running process.
type Container struct {
	Config *config.Config

	Clients       usecase.IClientUseCase
	Stages        usecase.IStageUseCase
	Catalog       usecase.ICatalogUseCase
	Orders        usecase.IServiceOrderUseCase
	Tracking      usecase.ITrackingUseCase
	Quotes        usecase.IQuoteUseCase
	QuoteRequests usecase.IQuoteRequestUseCase
	Payments      usecase.IPaymentUseCase
	Dashboard     usecase.IDashboardUseCase
	Notifications usecase.INotificationUseCase
	Seed          *usecase.SeedUseCase
}

// Repositories groups the storage ports so tests and alternative entrypoints
// can assemble a Container without DynamoDB.
type Repositories struct {
	Clients       interfaces.IClientRepository
	Stages        interfaces.IProductionStageRepository
	StageProgress interfaces.IStageProgressRepository
	Orders        interfaces.IServiceOrderRepository
	Catalog       interfaces.ICatalogRepository
	Colors        interfaces.IColorRepository
	Quotes        interfaces.IQuoteRepository
	QuoteRequests interfaces.IQuoteRequestRepository
	Payments      interfaces.IPaymentRepository
}

// Gateways groups the outbound integrations. Payment may be nil when Mercado
// Pago is not configured.
type Gateways struct {
	Storage interfaces.IObjectStorage
	Email   interfaces.IEmailSender
	Payment interfaces.IPaymentGateway
}

// New connects to DynamoDB and S3 and builds every use case.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	ddb := database.ConnectDynamoDB(cfg)
	repos := DynamoRepositories(ddb, cfg)

	objectStorage, err := storage.NewS3Storage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	gw := Gateways{
		Storage: objectStorage,
		Email:   email.NewHTTPSender(cfg),
	}
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[app] mercado pago gateway not configured: %v", err)
	} else {
		gw.Payment = mpGateway
	}

	return Build(cfg, repos, gw), nil
}

// DynamoRepositories builds the DynamoDB repositories, with client and stage
// reads going through the LRU cache decorators.
func DynamoRepositories(ddb repository.DynamoAPI, cfg *config.Config) Repositories {
	t := cfg.Tables
	return Repositories{
		Clients: repository.NewCachedClientRepository(
			repository.NewClientDynamoRepository(ddb, t.Clients), cfg.CacheSize, cfg.CacheTTL),
		Stages: repository.NewCachedStageRepository(
			repository.NewStageDynamoRepository(ddb, t.Stages), cfg.CacheSize, cfg.CacheTTL),
		StageProgress: repository.NewStageProgressDynamoRepository(ddb, t.StageProgress),
		Orders:        repository.NewServiceOrderDynamoRepository(ddb, t.ServiceOrders),
		Catalog:       repository.NewCatalogDynamoRepository(ddb, t.CatalogItems),
		Colors:        repository.NewColorDynamoRepository(ddb, t.Colors),
		Quotes:        repository.NewQuoteDynamoRepository(ddb, t.Quotes),
		QuoteRequests: repository.NewQuoteRequestDynamoRepository(ddb, t.QuoteRequests),
		Payments:      repository.NewPaymentDynamoRepository(ddb, t.Payments),
	}
}

// Build assembles the use cases from already constructed ports.
func Build(cfg *config.Config, repos Repositories, gw Gateways) *Container {
	numbers := usecase.NewOrderNumberUseCase(repos.Orders)
	tracking := usecase.NewTrackingUseCase(repos.StageProgress, repos.Stages, repos.Orders)
	orders := usecase.NewServiceOrderUseCase(repos.Orders, repos.Clients, numbers, tracking)
	stages := usecase.NewStageUseCase(repos.Stages)
	catalog := usecase.NewCatalogUseCase(repos.Catalog, repos.Colors)

	return &Container{
		Config:        cfg,
		Clients:       usecase.NewClientUseCase(repos.Clients),
		Stages:        stages,
		Catalog:       catalog,
		Orders:        orders,
		Tracking:      tracking,
		Quotes:        usecase.NewQuoteUseCase(repos.Quotes, repos.Clients, orders),
		QuoteRequests: usecase.NewQuoteRequestUseCase(repos.QuoteRequests, gw.Storage, gw.Email, numbers),
		Payments: usecase.NewPaymentUseCase(repos.Payments, repos.Quotes, gw.Payment, usecase.PaymentOptions{
			MockMode:        cfg.PaymentGatewayMock,
			SandboxToken:    cfg.SandboxPayments(),
			TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
			TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
		}),
		Dashboard:     usecase.NewDashboardUseCase(repos.Clients, repos.Orders),
		Notifications: usecase.NewNotificationUseCase(repos.Orders),
		Seed:          usecase.NewSeedUseCase(stages, catalog),
	}
}
