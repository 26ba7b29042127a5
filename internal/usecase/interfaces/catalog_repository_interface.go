package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
)

type ICatalogRepository interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	ListByCategory(ctx context.Context, category entities.CatalogCategory) ([]entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
}

type IColorRepository interface {
	Create(ctx context.Context, c entities.Color) (entities.Color, error)
	Update(ctx context.Context, c entities.Color) (entities.Color, error)
	GetByID(ctx context.Context, id string) (entities.Color, error)
	List(ctx context.Context) ([]entities.Color, error)
	Delete(ctx context.Context, id string) error
}
