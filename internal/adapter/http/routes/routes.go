package routes

import (
	_ "confeccao_os/docs"
	"confeccao_os/internal/adapter/http/handlers"
	"confeccao_os/internal/app"
	"confeccao_os/internal/config"
	"confeccao_os/internal/infrastructure/scheduler"
	"confeccao_os/internal/usecase"
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const reconcileTimeout = 2 * time.Minute

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}

	setMiddlewares()
	router.MaxMultipartMemory = usecase.MaxAttachmentSize + 1<<20

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(router, newHandlers(container))

	job := scheduler.NewReconcileJob(container.Tracking, reconcileTimeout)
	if err := job.Start(cfg.ReconcileCron); err != nil {
		log.Fatalf("Failed to schedule reconciliation: %v", err)
	}
	defer job.Stop()

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Printf("Failed to startup the application: %v", err.Error())
	}
}

// Handlers is the set of HTTP handlers mounted under /v1.
type Handlers struct {
	Clients       *handlers.ClientHandler
	Catalog       *handlers.CatalogHandler
	Orders        *handlers.OrderHandler
	Quotes        *handlers.QuoteHandler
	Payments      *handlers.PaymentHandler
	QuoteRequests *handlers.QuoteRequestHandler
	Dashboard     *handlers.DashboardHandler
}

func newHandlers(c *app.Container) Handlers {
	return Handlers{
		Clients:       handlers.NewClientHandler(c.Clients),
		Catalog:       handlers.NewCatalogHandler(c.Stages, c.Catalog),
		Orders:        handlers.NewOrderHandler(c.Orders, c.Tracking),
		Quotes:        handlers.NewQuoteHandler(c.Quotes),
		Payments:      handlers.NewPaymentHandler(c.Payments, c.Config.PaymentGatewayMock),
		QuoteRequests: handlers.NewQuoteRequestHandler(c.QuoteRequests),
		Dashboard:     handlers.NewDashboardHandler(c.Dashboard, c.Notifications),
	}
}

func registerRoutes(r *gin.Engine, h Handlers) {
	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, h.Clients, h.Catalog)
	addOrderRoutes(v1, h.Orders, h.Dashboard)
	addQuoteRoutes(v1, h.Quotes, h.Payments, h.QuoteRequests)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
