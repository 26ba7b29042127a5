package entities

import "time"

const NotificationTypeOverdue = "atraso"

// Notification is derived on every request and never persisted.
type Notification struct {
	ID          string
	Type        string
	Title       string
	Message     string
	OrderID     string
	OrderNumber string
	CreatedAt   time.Time
}
