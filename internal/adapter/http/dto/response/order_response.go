package response

import (
	"confeccao_os/internal/domain/entities"
	"time"
)

type ServiceOrderResponse struct {
	ID               string               `json:"id"`
	OrderNumber      string               `json:"order_number"`
	ClientID         string               `json:"client_id"`
	QuoteID          string               `json:"quote_id,omitempty"`
	Items            []entities.OrderItem `json:"items"`
	Status           string               `json:"status"`
	Total            float64              `json:"total"`
	Description      string               `json:"description,omitempty"`
	Notes            string               `json:"notes,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	ExpectedDelivery *time.Time           `json:"expected_delivery,omitempty"`
	DeliveredAt      *time.Time           `json:"delivered_at,omitempty"`
	CompletedAt      *time.Time           `json:"completed_at,omitempty"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := mapTo[ServiceOrderResponse](o)
	if res.Items == nil {
		res.Items = []entities.OrderItem{}
	}
	return res
}

func FromServiceOrders(os []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type NextOrderNumberResponse struct {
	OrderNumber string `json:"order_number"`
}

// StageProgressResponse is one tracking row joined with its stage name and order.
type StageProgressResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	StageID     string     `json:"stage_id"`
	StageName   string     `json:"stage_name,omitempty"`
	StageOrder  int        `json:"stage_order"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Note        string     `json:"note,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromStageProgress(p entities.OrderStageProgress) StageProgressResponse {
	res := mapTo[StageProgressResponse](p)
	if p.Stage != nil {
		res.StageName = p.Stage.Name
		res.StageOrder = p.Stage.Order
	}
	return res
}

func FromStageProgressList(ps []entities.OrderStageProgress) []StageProgressResponse {
	out := make([]StageProgressResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromStageProgress(p))
	}
	return out
}

type AdvanceStageResponse struct {
	Progress       StageProgressResponse `json:"progress"`
	OrderCompleted bool                  `json:"order_completed"`
}

type ReconcileResponse struct {
	OrderID   string `json:"order_id"`
	Completed bool   `json:"completed"`
}
