package handlers

import (
	response "confeccao_os/internal/adapter/http/dto/response"
	"confeccao_os/internal/usecase"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the back-office home: metrics and notifications.
type DashboardHandler struct {
	metrics       usecase.IDashboardUseCase
	notifications usecase.INotificationUseCase
	now           func() time.Time
}

func NewDashboardHandler(metrics usecase.IDashboardUseCase, notifications usecase.INotificationUseCase) *DashboardHandler {
	return &DashboardHandler{
		metrics:       metrics,
		notifications: notifications,
		now:           time.Now,
	}
}

// Metrics godoc
// @Summary      Monthly dashboard metrics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	m, err := h.metrics.Metrics(c.Request.Context(), h.now())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(m))
}

// Notifications godoc
// @Summary      Overdue order notifications
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  response.NotificationResponse
// @Router       /notifications [get]
func (h *DashboardHandler) Notifications(c *gin.Context) {
	ns, err := h.notifications.List(c.Request.Context(), h.now())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(ns))
}
