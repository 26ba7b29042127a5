package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedClientRepository serves client reads from an expirable LRU and
// invalidates on every write that goes through it.
type CachedClientRepository struct {
	next  interfaces.IClientRepository
	byID  *expirable.LRU[string, entities.Client]
	lists *expirable.LRU[string, []entities.Client]
}

var _ interfaces.IClientRepository = (*CachedClientRepository)(nil)

func NewCachedClientRepository(next interfaces.IClientRepository, size int, ttl time.Duration) *CachedClientRepository {
	return &CachedClientRepository{
		next:  next,
		byID:  expirable.NewLRU[string, entities.Client](size, nil, ttl),
		lists: expirable.NewLRU[string, []entities.Client](size, nil, ttl),
	}
}

func (r *CachedClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	created, err := r.next.Create(ctx, c)
	if err != nil {
		return created, err
	}
	r.lists.Purge()
	return created, nil
}

func (r *CachedClientRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	r.invalidate(c.ID)
	updated, err := r.next.Update(ctx, c)
	// Again after the write: a read racing the update may have refilled the entry.
	r.invalidate(c.ID)
	return updated, err
}

func (r *CachedClientRepository) invalidate(id string) {
	r.byID.Remove(id)
	r.lists.Purge()
}

func (r *CachedClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	if c, ok := r.byID.Get(id); ok {
		return c, nil
	}
	c, err := r.next.GetByID(ctx, id)
	if err != nil {
		return c, err
	}
	if c.ID != "" {
		r.byID.Add(id, c)
	}
	return c, nil
}

func (r *CachedClientRepository) List(ctx context.Context, filter interfaces.ClientFilter) ([]entities.Client, error) {
	key := fmt.Sprintf("%t|%s", filter.OnlyActive, filter.Name)
	if cs, ok := r.lists.Get(key); ok {
		return slices.Clone(cs), nil
	}
	cs, err := r.next.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	r.lists.Add(key, slices.Clone(cs))
	return cs, nil
}

// CountCreatedBetween is not cached.
func (r *CachedClientRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.next.CountCreatedBetween(ctx, from, to)
}

// CachedStageRepository caches production stage reads.
type CachedStageRepository struct {
	next  interfaces.IProductionStageRepository
	byID  *expirable.LRU[string, entities.ProductionStage]
	lists *expirable.LRU[bool, []entities.ProductionStage]
}

var _ interfaces.IProductionStageRepository = (*CachedStageRepository)(nil)

func NewCachedStageRepository(next interfaces.IProductionStageRepository, size int, ttl time.Duration) *CachedStageRepository {
	return &CachedStageRepository{
		next:  next,
		byID:  expirable.NewLRU[string, entities.ProductionStage](size, nil, ttl),
		lists: expirable.NewLRU[bool, []entities.ProductionStage](2, nil, ttl),
	}
}

func (r *CachedStageRepository) Create(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
	created, err := r.next.Create(ctx, s)
	if err != nil {
		return created, err
	}
	r.lists.Purge()
	return created, nil
}

func (r *CachedStageRepository) Update(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
	r.invalidate(s.ID)
	updated, err := r.next.Update(ctx, s)
	r.invalidate(s.ID)
	return updated, err
}

func (r *CachedStageRepository) GetByID(ctx context.Context, id string) (entities.ProductionStage, error) {
	if s, ok := r.byID.Get(id); ok {
		return s, nil
	}
	s, err := r.next.GetByID(ctx, id)
	if err != nil {
		return s, err
	}
	if s.ID != "" {
		r.byID.Add(id, s)
	}
	return s, nil
}

func (r *CachedStageRepository) List(ctx context.Context, onlyActive bool) ([]entities.ProductionStage, error) {
	if ss, ok := r.lists.Get(onlyActive); ok {
		return slices.Clone(ss), nil
	}
	ss, err := r.next.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	r.lists.Add(onlyActive, slices.Clone(ss))
	return ss, nil
}

func (r *CachedStageRepository) Delete(ctx context.Context, id string) error {
	r.invalidate(id)
	err := r.next.Delete(ctx, id)
	r.invalidate(id)
	return err
}

func (r *CachedStageRepository) invalidate(id string) {
	r.byID.Remove(id)
	r.lists.Purge()
}
