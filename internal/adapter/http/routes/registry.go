package routes

import (
	"confeccao_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients = "/clients"
	PathStages  = "/stages"
	PathCatalog = "/catalog"
	PathColors  = "/colors"
)

func addRegistryRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, catalogHandler *handlers.CatalogHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Deactivate)
	}

	stages := rg.Group(PathStages)
	{
		stages.GET("", catalogHandler.ListStages)
		stages.POST("", catalogHandler.CreateStage)
		stages.PUT("/:id", catalogHandler.UpdateStage)
		stages.DELETE("/:id", catalogHandler.DeleteStage)
	}

	catalog := rg.Group(PathCatalog)
	{
		// GET takes a category, DELETE an item id.
		catalog.GET("/:category", catalogHandler.ListItems)
		catalog.POST("", catalogHandler.CreateItem)
		catalog.DELETE("/:id", catalogHandler.DeleteItem)
	}

	colors := rg.Group(PathColors)
	{
		colors.GET("", catalogHandler.ListColors)
		colors.POST("", catalogHandler.CreateColor)
		colors.PUT("/:id", catalogHandler.UpdateColor)
		colors.DELETE("/:id", catalogHandler.DeleteColor)
	}
}
