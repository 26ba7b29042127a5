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
	ErrStageNotFound     = errors.New("production stage not found")
	ErrInvalidStageID    = errors.New("invalid stage id")
	ErrStageNameRequired = errors.New("stage name is required")
)

// IStageUseCase administers the production stage list.
type IStageUseCase interface {
	Create(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error)
	Update(ctx context.Context, id string, s entities.ProductionStage) (entities.ProductionStage, error)
	List(ctx context.Context, onlyActive bool) ([]entities.ProductionStage, error)
	Delete(ctx context.Context, id string) error
}

type StageUseCase struct {
	repo interfaces.IProductionStageRepository
	now  func() time.Time
}

var _ IStageUseCase = (*StageUseCase)(nil)

func NewStageUseCase(repo interfaces.IProductionStageRepository) *StageUseCase {
	return &StageUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *StageUseCase) Create(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.ProductionStage{}, ErrStageNameRequired
	}
	s.ID = uuid.NewString()
	s.Description = strings.TrimSpace(s.Description)
	s.CreatedAt = u.now()
	return u.repo.Create(ctx, s)
}

func (u *StageUseCase) Update(ctx context.Context, id string, s entities.ProductionStage) (entities.ProductionStage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProductionStage{}, ErrInvalidStageID
	}
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.ProductionStage{}, ErrStageNameRequired
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProductionStage{}, err
	}
	if existing.ID == "" {
		return entities.ProductionStage{}, ErrStageNotFound
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	s.Description = strings.TrimSpace(s.Description)

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.ProductionStage{}, err
	}
	if updated.ID == "" {
		return entities.ProductionStage{}, ErrStageNotFound
	}
	return updated, nil
}

func (u *StageUseCase) List(ctx context.Context, onlyActive bool) ([]entities.ProductionStage, error) {
	return u.repo.List(ctx, onlyActive)
}

func (u *StageUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStageID
	}
	return u.repo.Delete(ctx, id)
}
