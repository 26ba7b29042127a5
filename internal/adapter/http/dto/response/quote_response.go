package response

import (
	"confeccao_os/internal/domain/entities"
	"time"
)

type QuoteResponse struct {
	ID         string               `json:"id"`
	ClientID   string               `json:"client_id"`
	Items      []entities.OrderItem `json:"items"`
	Price      float64              `json:"price"`
	Status     string               `json:"status"`
	Notes      string               `json:"notes,omitempty"`
	ValidUntil *time.Time           `json:"valid_until,omitempty"`
	OrderID    string               `json:"order_id,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := mapTo[QuoteResponse](q)
	if res.Items == nil {
		res.Items = []entities.OrderItem{}
	}
	return res
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type ConvertQuoteResponse struct {
	Quote QuoteResponse        `json:"quote"`
	Order ServiceOrderResponse `json:"order"`
}

type QuoteRequestResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message,omitempty"`
	Amount        float64   `json:"amount"`
	OrderNumber   string    `json:"order_number"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromQuoteRequest(r entities.QuoteRequest) QuoteRequestResponse {
	return mapTo[QuoteRequestResponse](r)
}

func FromQuoteRequests(rs []entities.QuoteRequest) []QuoteRequestResponse {
	return mapAll[QuoteRequestResponse](rs)
}

type PaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
