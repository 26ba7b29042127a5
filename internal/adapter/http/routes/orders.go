package routes

import (
	"confeccao_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathStageProgress = "/stage-progress"
	PathDashboard     = "/dashboard"
	PathNotifications = "/notifications"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, dashboardHandler *handlers.DashboardHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/next-number", orderHandler.NextNumber)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id", orderHandler.Update)
		orders.PATCH("/:id/deliver", orderHandler.Deliver)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
		orders.GET("/:id/stages", orderHandler.ListStages)
		orders.POST("/:id/stages/reconcile", orderHandler.Reconcile)
	}

	rg.PATCH(PathStageProgress+"/:id", orderHandler.AdvanceStage)

	rg.GET(PathDashboard+"/metrics", dashboardHandler.Metrics)
	rg.GET(PathNotifications, dashboardHandler.Notifications)
}
