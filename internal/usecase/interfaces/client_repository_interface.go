package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
	"time"
)

// ClientFilter narrows client listings. Zero values mean "no filter".
type ClientFilter struct {
	Name       string
	OnlyActive bool
}

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Not-found lookups return a zero Client and a nil error.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]entities.Client, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}
