package handlers

import (
	request "confeccao_os/internal/adapter/http/dto/request"
	response "confeccao_os/internal/adapter/http/dto/response"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the configuration lists used by order forms:
// production stages, catalog items and colors.
type CatalogHandler struct {
	stages  usecase.IStageUseCase
	catalog usecase.ICatalogUseCase
}

func NewCatalogHandler(stages usecase.IStageUseCase, catalog usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{stages: stages, catalog: catalog}
}

// ListStages godoc
// @Summary      List production stages ordered by sequence
// @Tags         stages
// @Produce      json
// @Param        all  query     bool  false  "Include inactive stages"
// @Success      200  {array}   response.StageResponse
// @Router       /stages [get]
func (h *CatalogHandler) ListStages(c *gin.Context) {
	all, _ := strconv.ParseBool(c.Query("all"))
	stages, err := h.stages.List(c.Request.Context(), !all)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStages(stages))
}

// CreateStage godoc
// @Summary      Create a production stage
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        stage  body      request.StageRequest  true  "Stage"
// @Success      201    {object}  response.StageResponse
// @Router       /stages [post]
func (h *CatalogHandler) CreateStage(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	created, err := h.stages.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromStage(created))
}

// UpdateStage godoc
// @Summary      Update a production stage
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Stage ID"
// @Param        stage  body      request.StageRequest  true  "Stage"
// @Success      200    {object}  response.StageResponse
// @Router       /stages/{id} [put]
func (h *CatalogHandler) UpdateStage(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	updated, err := h.stages.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStage(updated))
}

// DeleteStage godoc
// @Summary      Delete a production stage
// @Tags         stages
// @Param        id  path  string  true  "Stage ID"
// @Success      204
// @Router       /stages/{id} [delete]
func (h *CatalogHandler) DeleteStage(c *gin.Context) {
	if err := h.stages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListItems godoc
// @Summary      List catalog values of a category
// @Tags         catalog
// @Produce      json
// @Param        category  path      string  true  "qualidade_tecido | tipo_manga | tipo_barra | tipo_gola | tipo_tecido | tamanho"
// @Success      200       {array}   response.CatalogItemResponse
// @Router       /catalog/{category} [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context(), entities.CatalogCategory(c.Param("category")))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

// CreateItem godoc
// @Summary      Add a catalog value
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        item  body      request.CatalogItemRequest  true  "Catalog item"
// @Success      201   {object}  response.CatalogItemResponse
// @Router       /catalog [post]
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	created, err := h.catalog.CreateItem(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogItem(created))
}

// DeleteItem godoc
// @Summary      Remove a catalog value
// @Tags         catalog
// @Param        id  path  string  true  "Catalog item ID"
// @Success      204
// @Router       /catalog/{id} [delete]
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.catalog.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListColors godoc
// @Summary      List colors
// @Tags         colors
// @Produce      json
// @Success      200  {array}  response.ColorResponse
// @Router       /colors [get]
func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.catalog.ListColors(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromColors(colors))
}

// CreateColor godoc
// @Summary      Create a color
// @Tags         colors
// @Accept       json
// @Produce      json
// @Param        color  body      request.ColorRequest  true  "Color"
// @Success      201    {object}  response.ColorResponse
// @Router       /colors [post]
func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var payload request.ColorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	created, err := h.catalog.CreateColor(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromColor(created))
}

// UpdateColor godoc
// @Summary      Update a color
// @Tags         colors
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Color ID"
// @Param        color  body      request.ColorRequest  true  "Color"
// @Success      200    {object}  response.ColorResponse
// @Router       /colors/{id} [put]
func (h *CatalogHandler) UpdateColor(c *gin.Context) {
	var payload request.ColorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	updated, err := h.catalog.UpdateColor(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromColor(updated))
}

// DeleteColor godoc
// @Summary      Delete a color
// @Tags         colors
// @Param        id  path  string  true  "Color ID"
// @Success      204
// @Router       /colors/{id} [delete]
func (h *CatalogHandler) DeleteColor(c *gin.Context) {
	if err := h.catalog.DeleteColor(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
