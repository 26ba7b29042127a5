package handlers

import (
	request "confeccao_os/internal/adapter/http/dto/request"
	response "confeccao_os/internal/adapter/http/dto/response"
	"confeccao_os/internal/usecase"
	"confeccao_os/internal/usecase/interfaces"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles service orders and their production tracking.
type OrderHandler struct {
	orders   usecase.IServiceOrderUseCase
	tracking usecase.ITrackingUseCase
}

func NewOrderHandler(orders usecase.IServiceOrderUseCase, tracking usecase.ITrackingUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, tracking: tracking}
}

// Create godoc
// @Summary      Open a service order
// @Description  Allocates the next order number and creates one pending stage row per active production stage.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.ServiceOrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] create invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}
	created, err := h.orders.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] create failed client_id=%s err=%v", payload.ClientID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

// List godoc
// @Summary      List service orders
// @Tags         orders
// @Produce      json
// @Param        status     query     string  false  "Comma separated statuses (pendente,em_andamento,...)"
// @Param        client_id  query     string  false  "Client ID"
// @Success      200        {array}   response.ServiceOrderResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	statuses, err := request.ParseStatusFilter(c.Query("status"))
	if err != nil {
		writeError(c, errInvalidStatus)
		return
	}
	orders, err := h.orders.List(c.Request.Context(), interfaces.OrderFilter{
		Statuses: statuses,
		ClientID: c.Query("client_id"),
	})
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// Get godoc
// @Summary      Get a service order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// Update godoc
// @Summary      Edit a service order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      string                      true  "Order ID"
// @Param        order  body      request.UpdateOrderRequest  true  "Fields to change"
// @Success      200    {object}  response.ServiceOrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidStatus)
		return
	}
	updated, err := h.orders.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		log.Printf("[order][handler] update failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// Deliver godoc
// @Summary      Mark a service order as delivered
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/deliver [patch]
func (h *OrderHandler) Deliver(c *gin.Context) {
	order, err := h.orders.Deliver(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// Cancel godoc
// @Summary      Cancel a service order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/cancel [patch]
func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.orders.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// NextNumber godoc
// @Summary      Preview the next order number
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.NextOrderNumberResponse
// @Router       /orders/next-number [get]
func (h *OrderHandler) NextNumber(c *gin.Context) {
	n := h.orders.NextOrderNumber(c.Request.Context())
	c.JSON(http.StatusOK, response.NextOrderNumberResponse{OrderNumber: strconv.Itoa(n)})
}

// ListStages godoc
// @Summary      Production stages of an order
// @Tags         tracking
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {array}   response.StageProgressResponse
// @Router       /orders/{id}/stages [get]
func (h *OrderHandler) ListStages(c *gin.Context) {
	rows, err := h.tracking.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStageProgressList(rows))
}

// Reconcile godoc
// @Summary      Recompute order status from its stages
// @Tags         tracking
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.ReconcileResponse
// @Router       /orders/{id}/stages/reconcile [post]
func (h *OrderHandler) Reconcile(c *gin.Context) {
	orderID := c.Param("id")
	completed, err := h.tracking.ReconcileOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[tracking][handler] reconcile failed order_id=%s err=%v", orderID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.ReconcileResponse{OrderID: orderID, Completed: completed})
}

// AdvanceStage godoc
// @Summary      Change the status of an order stage
// @Description  Completing the last open stage promotes the order to concluido.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Stage progress ID"
// @Param        status  body      request.AdvanceStageRequest  true  "New status"
// @Success      200     {object}  response.AdvanceStageResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /stage-progress/{id} [patch]
func (h *OrderHandler) AdvanceStage(c *gin.Context) {
	progressID := c.Param("id")
	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	status, err := payload.ParseStatus()
	if err != nil {
		log.Printf("[tracking][handler] invalid status progress_id=%s status=%q", progressID, payload.Status)
		writeError(c, errInvalidStatus)
		return
	}
	result, err := h.tracking.AdvanceStage(c.Request.Context(), progressID, status)
	if err != nil {
		log.Printf("[tracking][handler] advance failed progress_id=%s err=%v", progressID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.AdvanceStageResponse{
		Progress:       response.FromStageProgress(result.Progress),
		OrderCompleted: result.OrderCompleted,
	})
}
