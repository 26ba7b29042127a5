package response

import (
	"confeccao_os/internal/domain/entities"
	"time"
)

type MetricResponse struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Growth   float64 `json:"growth"`
}

type DashboardResponse struct {
	Clients        MetricResponse `json:"clients"`
	ActiveOrders   MetricResponse `json:"active_orders"`
	MonthlyRevenue MetricResponse `json:"monthly_revenue"`
	QualityRate    MetricResponse `json:"quality_rate"`
}

func FromDashboard(m entities.DashboardMetrics) DashboardResponse {
	return mapTo[DashboardResponse](m)
}

type NotificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	return mapAll[NotificationResponse](ns)
}
