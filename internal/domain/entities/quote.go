package entities

import "time"

// Quote is a price quote (orçamento) given to a client before production.
//
// An approved quote can be paid and converted into a ServiceOrder; once
// converted, OrderID points at the created order.
type Quote struct {
	ID         string
	ClientID   string
	Items      []OrderItem
	Price      float64
	Status     QuoteStatus
	Notes      string
	ValidUntil *time.Time
	OrderID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuoteRequest is a quick-quote submission from the contact form.
type QuoteRequest struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Message       string
	Amount        float64
	OrderNumber   string
	AttachmentURL string
	CreatedAt     time.Time
}

// Attachment is an uploaded file waiting to be stored in the bucket.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
