package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
	"time"
)

// OrderFilter narrows service order listings. Zero values mean "no filter".
type OrderFilter struct {
	Statuses []entities.OrderStatus
	ClientID string
}

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The service must be able to:
//   - allocate the next order number (MaxOrderNumber)
//   - promote an order to concluido after its last stage (MarkCompleted)
//   - list orders created inside a date range for the dashboard
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) (entities.ServiceOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]entities.ServiceOrder, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.ServiceOrder, error)
	MaxOrderNumber(ctx context.Context) (string, error)
}
