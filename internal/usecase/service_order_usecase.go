package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderTotal    = errors.New("invalid order total")
	ErrOrderClosed          = errors.New("service order is closed")
)

type CreateOrderInput struct {
	ClientID         string
	QuoteID          string
	Items            []entities.OrderItem
	Total            float64
	Description      string
	Notes            string
	ExpectedDelivery *time.Time
}

// UpdateOrderInput carries a manual edit. Nil fields are left untouched.
type UpdateOrderInput struct {
	Status           *entities.OrderStatus
	ExpectedDelivery *time.Time
	Description      *string
	Notes            *string
	Total            *float64
}

// IServiceOrderUseCase exposes service order (OS) operations.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, id string, in UpdateOrderInput) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, id string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id string) (entities.ServiceOrder, error)
	NextOrderNumber(ctx context.Context) int
}

type ServiceOrderUseCase struct {
	repo       interfaces.IServiceOrderRepository
	clientRepo interfaces.IClientRepository
	numbers    IOrderNumberUseCase
	tracking   ITrackingUseCase
	now        func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	clientRepo interfaces.IClientRepository,
	numbers IOrderNumberUseCase,
	tracking ITrackingUseCase,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		numbers:    numbers,
		tracking:   tracking,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create allocates an order number, persists the order as pendente and
// initializes one tracking row per active production stage. A failure to
// initialize the stages is logged; the order is still returned.
func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.ServiceOrder{}, ErrInvalidClientID
	}

	total := entities.ItemsTotal(in.Items)
	if total == 0 {
		total = in.Total
	}
	if total < 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderTotal
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if client.ID == "" {
		return entities.ServiceOrder{}, ErrClientNotFound
	}

	now := u.now()
	o := entities.ServiceOrder{
		ID:               uuid.NewString(),
		OrderNumber:      strconv.Itoa(u.numbers.Next(ctx)),
		ClientID:         clientID,
		QuoteID:          strings.TrimSpace(in.QuoteID),
		Items:            in.Items,
		Status:           entities.OrderStatusPendente,
		Total:            total,
		Description:      strings.TrimSpace(in.Description),
		Notes:            strings.TrimSpace(in.Notes),
		CreatedAt:        now,
		ExpectedDelivery: in.ExpectedDelivery,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed client_id=%s err=%v", clientID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] created order_id=%s order_number=%s client_id=%s total=%.2f", created.ID, created.OrderNumber, clientID, created.Total)

	if _, err := u.tracking.InitializeOrder(ctx, created.ID); err != nil {
		log.Printf("[order][usecase] stage initialization failed order_id=%s err=%v", created.ID, err)
	}
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.ServiceOrder, error) {
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, entities.ErrInvalidStatus
		}
	}
	filter.ClientID = strings.TrimSpace(filter.ClientID)
	return u.repo.List(ctx, filter)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in UpdateOrderInput) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status == entities.OrderStatusCancelado || o.Status == entities.OrderStatusEntregue {
		return entities.ServiceOrder{}, ErrOrderClosed
	}

	now := u.now()
	if in.Status != nil {
		if !in.Status.Valid() {
			return entities.ServiceOrder{}, entities.ErrInvalidStatus
		}
		applyOrderStatus(&o, *in.Status, now)
	}
	if in.Total != nil {
		if *in.Total < 0 {
			return entities.ServiceOrder{}, ErrInvalidOrderTotal
		}
		o.Total = *in.Total
	}
	if in.ExpectedDelivery != nil {
		o.ExpectedDelivery = in.ExpectedDelivery
	}
	if in.Description != nil {
		o.Description = strings.TrimSpace(*in.Description)
	}
	if in.Notes != nil {
		o.Notes = strings.TrimSpace(*in.Notes)
	}
	o.UpdatedAt = now

	return u.save(ctx, o)
}

func (u *ServiceOrderUseCase) Deliver(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status == entities.OrderStatusCancelado {
		return entities.ServiceOrder{}, ErrOrderClosed
	}
	if o.Status == entities.OrderStatusEntregue {
		return o, nil
	}
	now := u.now()
	applyOrderStatus(&o, entities.OrderStatusEntregue, now)
	o.UpdatedAt = now
	return u.save(ctx, o)
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status == entities.OrderStatusEntregue {
		return entities.ServiceOrder{}, ErrOrderClosed
	}
	if o.Status == entities.OrderStatusCancelado {
		return o, nil
	}
	o.Status = entities.OrderStatusCancelado
	o.UpdatedAt = u.now()
	return u.save(ctx, o)
}

func (u *ServiceOrderUseCase) NextOrderNumber(ctx context.Context) int {
	return u.numbers.Next(ctx)
}

func (u *ServiceOrderUseCase) save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] update failed order_id=%s err=%v", o.ID, err)
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	log.Printf("[order][usecase] updated order_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// applyOrderStatus sets the status and stamps the matching timestamp once.
func applyOrderStatus(o *entities.ServiceOrder, status entities.OrderStatus, now time.Time) {
	if status == entities.OrderStatusConcluido && o.CompletedAt == nil {
		o.MarkCompleted(now)
		return
	}
	o.Status = status
	switch status {
	case entities.OrderStatusEntregue:
		if o.CompletedAt == nil {
			t := now
			o.CompletedAt = &t
		}
		if o.DeliveredAt == nil {
			t := now
			o.DeliveredAt = &t
		}
	}
}
