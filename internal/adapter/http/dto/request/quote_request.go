package request

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"encoding/json"
	"time"
)

type CreateQuoteRequest struct {
	ClientID   string               `json:"client_id" binding:"required"`
	Items      []entities.OrderItem `json:"items"`
	Price      float64              `json:"price"`
	Notes      string               `json:"notes"`
	ValidUntil *time.Time           `json:"valid_until"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		ClientID:   r.ClientID,
		Items:      r.Items,
		Price:      r.Price,
		Notes:      r.Notes,
		ValidUntil: r.ValidUntil,
	}
}

type UpdateQuotePriceRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// PaymentCreateRequest is the payload for the "create and process payment"
// route. `mp_payload` is forwarded as-is to support varying Mercado Pago schemas.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// QuoteSubmissionForm is the multipart contact form; the optional file comes
// in the "attachment" part.
type QuoteSubmissionForm struct {
	Name        string  `form:"name"`
	Email       string  `form:"email"`
	Phone       string  `form:"phone"`
	Message     string  `form:"message"`
	Amount      float64 `form:"amount"`
	OrderNumber string  `form:"order_number"`
}

func (f QuoteSubmissionForm) ToInput() usecase.SubmitQuoteRequestInput {
	return usecase.SubmitQuoteRequestInput{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Message:     f.Message,
		Amount:      f.Amount,
		OrderNumber: f.OrderNumber,
	}
}

// SendQuoteEmailRequest is the payload of the email function endpoint.
type SendQuoteEmailRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Phone         string  `json:"phone" binding:"required"`
	Message       string  `json:"message"`
	Amount        float64 `json:"amount"`
	OrderNumber   string  `json:"order_number"`
	AttachmentURL string  `json:"attachment_url"`
}

func (r SendQuoteEmailRequest) ToEntity() entities.QuoteRequest {
	return entities.QuoteRequest{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Message:       r.Message,
		Amount:        r.Amount,
		OrderNumber:   r.OrderNumber,
		AttachmentURL: r.AttachmentURL,
	}
}
