package handlers

import (
	request "confeccao_os/internal/adapter/http/dto/request"
	response "confeccao_os/internal/adapter/http/dto/response"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes (orçamentos).
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.CreateQuoteRequest  true  "Quote"
// @Success      201    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[quote][handler] create invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[quote][handler] create failed client_id=%s err=%v", payload.ClientID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// List godoc
// @Summary      List quotes, newest first
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  response.QuoteResponse
// @Router       /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// Get godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Approve godoc
// @Summary      Approve a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [patch]
func (h *QuoteHandler) Approve(c *gin.Context) {
	h.transition(c, "approve", h.usecase.Approve)
}

// Reject godoc
// @Summary      Reject a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/reject [patch]
func (h *QuoteHandler) Reject(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

// Cancel godoc
// @Summary      Cancel a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/cancel [patch]
func (h *QuoteHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel", h.usecase.Cancel)
}

func (h *QuoteHandler) transition(c *gin.Context, action string, fn func(context.Context, string) (entities.Quote, error)) {
	id := c.Param("id")
	log.Printf("[quote][handler] %s start id=%s", action, id)
	q, err := fn(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] %s failed id=%s err=%v", action, id, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdatePrice godoc
// @Summary      Change the price of a pending quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id     path      string                           true  "Quote ID"
// @Param        price  body      request.UpdateQuotePriceRequest  true  "New price"
// @Success      200    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes/{id}/price [patch]
func (h *QuoteHandler) UpdatePrice(c *gin.Context) {
	var payload request.UpdateQuotePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	q, err := h.usecase.UpdatePrice(c.Request.Context(), c.Param("id"), payload.Price)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Convert godoc
// @Summary      Convert an approved quote into a service order
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      201  {object}  response.ConvertQuoteResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *gin.Context) {
	id := c.Param("id")
	q, order, err := h.usecase.ConvertToOrder(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] convert failed id=%s err=%v", id, err)
		writeError(c, mapDomainError(err))
		return
	}
	log.Printf("[quote][handler] convert success id=%s order_id=%s", id, order.ID)
	c.JSON(http.StatusCreated, response.ConvertQuoteResponse{
		Quote: response.FromQuote(q),
		Order: response.FromServiceOrder(order),
	})
}
