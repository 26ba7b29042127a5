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
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
)

// IClientUseCase exposes the client registry.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, filter interfaces.ClientFilter) ([]entities.Client, error)
	Deactivate(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return entities.Client{}, err
	}

	now := u.now()
	c.ID = uuid.NewString()
	c.Active = true
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed err=%v", err)
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created client_id=%s kind=%s", created.ID, created.Kind)
	return created, nil
}

// Update replaces the editable fields of an existing client. ID, CreatedAt and
// the active flag are kept from the stored row.
func (u *ClientUseCase) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	c.Normalize()
	if err := c.Validate(); err != nil {
		return entities.Client{}, err
	}
	c.ID = existing.ID
	c.Active = existing.Active
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = u.now()

	return u.save(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, filter interfaces.ClientFilter) ([]entities.Client, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	return u.repo.List(ctx, filter)
}

func (u *ClientUseCase) Deactivate(ctx context.Context, id string) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if !c.Active {
		return c, nil
	}
	c.Active = false
	c.UpdatedAt = u.now()
	return u.save(ctx, c)
}

func (u *ClientUseCase) save(ctx context.Context, c entities.Client) (entities.Client, error) {
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] update failed client_id=%s err=%v", c.ID, err)
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}
