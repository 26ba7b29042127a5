package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
)

// IProductionStageRepository abstracts persistence of the production stage list.
type IProductionStageRepository interface {
	Create(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error)
	Update(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error)
	GetByID(ctx context.Context, id string) (entities.ProductionStage, error)
	List(ctx context.Context, onlyActive bool) ([]entities.ProductionStage, error)
	Delete(ctx context.Context, id string) error
}

// IStageProgressRepository abstracts persistence of the per-order stage rows
// (acompanhamento_os).
type IStageProgressRepository interface {
	CreateBatch(ctx context.Context, rows []entities.OrderStageProgress) error
	GetByID(ctx context.Context, id string) (entities.OrderStageProgress, error)
	Update(ctx context.Context, p entities.OrderStageProgress) (entities.OrderStageProgress, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderStageProgress, error)
}
