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

// ClientHandler handles HTTP requests for the client registry.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// Create godoc
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      request.ClientRequest  true  "Client"
// @Success      201     {object}  response.ClientResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	client, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), client)
	if err != nil {
		log.Printf("[client][handler] create failed err=%v", err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

// List godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        name    query     string  false  "Name substring"
// @Param        active  query     bool    false  "Only active clients"
// @Success      200     {array}   response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	onlyActive, _ := strconv.ParseBool(c.Query("active"))
	clients, err := h.usecase.List(c.Request.Context(), interfaces.ClientFilter{
		Name:       c.Query("name"),
		OnlyActive: onlyActive,
	})
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// Get godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// Update godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Client ID"
// @Param        client  body      request.ClientRequest  true  "Client"
// @Success      200     {object}  response.ClientResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	client, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), client)
	if err != nil {
		log.Printf("[client][handler] update failed client_id=%s err=%v", c.Param("id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

// Deactivate godoc
// @Summary      Deactivate a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Deactivate(c *gin.Context) {
	client, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}
