package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCatalogCategory = errors.New("invalid catalog category")
	ErrCatalogValueRequired   = errors.New("catalog value is required")
	ErrInvalidCatalogItemID   = errors.New("invalid catalog item id")
	ErrColorNotFound          = errors.New("color not found")
	ErrInvalidColorID         = errors.New("invalid color id")
	ErrColorNameRequired      = errors.New("color name is required")
	ErrInvalidColorHex        = errors.New("invalid color hex code")
)

// ICatalogUseCase administers the configurable lists used by order forms:
// catalog items per category and the color palette.
type ICatalogUseCase interface {
	CreateItem(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	ListItems(ctx context.Context, category entities.CatalogCategory) ([]entities.CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error
	CreateColor(ctx context.Context, c entities.Color) (entities.Color, error)
	UpdateColor(ctx context.Context, id string, c entities.Color) (entities.Color, error)
	ListColors(ctx context.Context) ([]entities.Color, error)
	DeleteColor(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	repo      interfaces.ICatalogRepository
	colorRepo interfaces.IColorRepository
	now       func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, colorRepo interfaces.IColorRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, colorRepo: colorRepo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *CatalogUseCase) CreateItem(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	if !item.Category.Valid() {
		return entities.CatalogItem{}, ErrInvalidCatalogCategory
	}
	item.Value = strings.TrimSpace(item.Value)
	if item.Value == "" {
		return entities.CatalogItem{}, ErrCatalogValueRequired
	}
	item.ID = uuid.NewString()
	item.Description = strings.TrimSpace(item.Description)
	item.CreatedAt = u.now()
	return u.repo.Create(ctx, item)
}

func (u *CatalogUseCase) ListItems(ctx context.Context, category entities.CatalogCategory) ([]entities.CatalogItem, error) {
	if !category.Valid() {
		return nil, ErrInvalidCatalogCategory
	}
	return u.repo.ListByCategory(ctx, category)
}

func (u *CatalogUseCase) DeleteItem(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogItemID
	}
	return u.repo.Delete(ctx, id)
}

func (u *CatalogUseCase) CreateColor(ctx context.Context, c entities.Color) (entities.Color, error) {
	if err := normalizeColor(&c); err != nil {
		return entities.Color{}, err
	}
	c.ID = uuid.NewString()
	c.Active = true
	c.CreatedAt = u.now()
	return u.colorRepo.Create(ctx, c)
}

func (u *CatalogUseCase) UpdateColor(ctx context.Context, id string, c entities.Color) (entities.Color, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Color{}, ErrInvalidColorID
	}
	if err := normalizeColor(&c); err != nil {
		return entities.Color{}, err
	}

	existing, err := u.colorRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Color{}, err
	}
	if existing.ID == "" {
		return entities.Color{}, ErrColorNotFound
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt

	updated, err := u.colorRepo.Update(ctx, c)
	if err != nil {
		return entities.Color{}, err
	}
	if updated.ID == "" {
		return entities.Color{}, ErrColorNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) ListColors(ctx context.Context) ([]entities.Color, error) {
	return u.colorRepo.List(ctx)
}

func (u *CatalogUseCase) DeleteColor(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidColorID
	}
	return u.colorRepo.Delete(ctx, id)
}

func normalizeColor(c *entities.Color) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrColorNameRequired
	}
	c.Hex = strings.ToUpper(strings.TrimSpace(c.Hex))
	if !entities.ValidHexColor(c.Hex) {
		return ErrInvalidColorHex
	}
	return nil
}
