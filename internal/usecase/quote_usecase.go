package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteValue  = errors.New("invalid quote value")
	ErrQuoteNotPending    = errors.New("quote is not pending")
	ErrQuoteNotApproved   = errors.New("quote not approved")
	ErrQuoteAlreadyClosed = errors.New("quote already closed")
)

type CreateQuoteInput struct {
	ClientID   string
	Items      []entities.OrderItem
	Price      float64
	Notes      string
	ValidUntil *time.Time
}

// IQuoteUseCase exposes quote (orçamento) operations.
//
//   - approve/reject only from pendente
//   - cancel from pendente or aprovado
//   - convert an aprovado quote into a service order
type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)
	UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Quote, error)
	ConvertToOrder(ctx context.Context, id string) (entities.Quote, entities.ServiceOrder, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	clientRepo interfaces.IClientRepository
	orders     IServiceOrderUseCase
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, clientRepo interfaces.IClientRepository, orders IServiceOrderUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, clientRepo: clientRepo, orders: orders, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Quote{}, ErrInvalidClientID
	}
	price := entities.ItemsTotal(in.Items)
	if price == 0 {
		price = in.Price
	}
	if price <= 0 {
		return entities.Quote{}, ErrInvalidQuoteValue
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Quote{}, err
	}
	if client.ID == "" {
		return entities.Quote{}, ErrClientNotFound
	}

	now := u.now()
	q := entities.Quote{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		Items:      in.Items,
		Price:      price,
		Status:     entities.QuoteStatusPendente,
		Notes:      strings.TrimSpace(in.Notes),
		ValidUntil: in.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusAprovado, entities.QuoteStatusPendente)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusRejeitado, entities.QuoteStatusPendente)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatus(ctx, id, entities.QuoteStatusCancelado, entities.QuoteStatusPendente, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) updateStatus(ctx context.Context, id string, status entities.QuoteStatus, allowedFrom ...entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	allowed := false
	for _, s := range allowedFrom {
		if q.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		if q.Status == entities.QuoteStatusAprovado {
			return entities.Quote{}, ErrQuoteNotPending
		}
		return entities.Quote{}, ErrQuoteAlreadyClosed
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status changed quote_id=%s from=%s to=%s", q.ID, q.Status, updated.Status)
	return updated, nil
}

func (u *QuoteUseCase) UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if newPrice <= 0 {
		return entities.Quote{}, ErrInvalidQuoteValue
	}

	updated, err := u.repo.UpdatePrice(ctx, id, newPrice)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// ConvertToOrder creates a service order from an approved quote and marks the
// quote as convertido. The two writes are not atomic: when the quote update
// fails the created order is still returned together with the error.
func (u *QuoteUseCase) ConvertToOrder(ctx context.Context, id string) (entities.Quote, entities.ServiceOrder, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, entities.ServiceOrder{}, err
	}
	if q.Status == entities.QuoteStatusConvertido {
		return entities.Quote{}, entities.ServiceOrder{}, ErrQuoteAlreadyClosed
	}
	if q.Status != entities.QuoteStatusAprovado {
		return entities.Quote{}, entities.ServiceOrder{}, ErrQuoteNotApproved
	}

	order, err := u.orders.Create(ctx, CreateOrderInput{
		ClientID:    q.ClientID,
		QuoteID:     q.ID,
		Items:       q.Items,
		Total:       q.Price,
		Description: q.Notes,
	})
	if err != nil {
		return entities.Quote{}, entities.ServiceOrder{}, err
	}

	converted, err := u.repo.MarkConverted(ctx, q.ID, order.ID)
	if err != nil {
		log.Printf("[quote][usecase] mark converted failed quote_id=%s order_id=%s err=%v", q.ID, order.ID, err)
		return entities.Quote{}, order, err
	}
	if converted.ID == "" {
		return entities.Quote{}, order, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] converted quote_id=%s order_id=%s order_number=%s", q.ID, order.ID, order.OrderNumber)
	return converted, order, nil
}
