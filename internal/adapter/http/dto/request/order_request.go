package request

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"strings"
	"time"
)

// CreateOrderRequest opens a service order. When items are present the total
// is computed from them and Total is ignored.
type CreateOrderRequest struct {
	ClientID         string               `json:"client_id" binding:"required"`
	QuoteID          string               `json:"quote_id"`
	Items            []entities.OrderItem `json:"items"`
	Total            float64              `json:"total"`
	Description      string               `json:"description"`
	Notes            string               `json:"notes"`
	ExpectedDelivery *time.Time           `json:"expected_delivery"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		ClientID:         r.ClientID,
		QuoteID:          r.QuoteID,
		Items:            r.Items,
		Total:            r.Total,
		Description:      r.Description,
		Notes:            r.Notes,
		ExpectedDelivery: r.ExpectedDelivery,
	}
}

// UpdateOrderRequest is a partial edit; omitted fields are left untouched.
type UpdateOrderRequest struct {
	Status           *string    `json:"status"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	Description      *string    `json:"description"`
	Notes            *string    `json:"notes"`
	Total            *float64   `json:"total"`
}

// ToInput rejects any status outside the canonical vocabulary.
func (r UpdateOrderRequest) ToInput() (usecase.UpdateOrderInput, error) {
	in := usecase.UpdateOrderInput{
		ExpectedDelivery: r.ExpectedDelivery,
		Description:      r.Description,
		Notes:            r.Notes,
		Total:            r.Total,
	}
	if r.Status != nil {
		s, err := entities.ParseOrderStatus(*r.Status)
		if err != nil {
			return usecase.UpdateOrderInput{}, err
		}
		in.Status = &s
	}
	return in, nil
}

// ParseStatusFilter splits "pendente,em_andamento" into validated statuses.
func ParseStatusFilter(raw string) ([]entities.OrderStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []entities.OrderStatus
	for _, part := range strings.Split(raw, ",") {
		s, err := entities.ParseOrderStatus(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type AdvanceStageRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r AdvanceStageRequest) ParseStatus() (entities.StageStatus, error) {
	return entities.ParseStageStatus(r.Status)
}
