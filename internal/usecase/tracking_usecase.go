package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStageProgressNotFound  = errors.New("stage progress not found")
	ErrInvalidStageProgressID = errors.New("invalid stage progress id")
	ErrNoActiveStages         = errors.New("no active production stages")
)

// AdvanceResult is the outcome of a stage update.
//
// OrderCompleted is true when the update closed the last open stage and the
// parent order was promoted to concluido.
type AdvanceResult struct {
	Progress       entities.OrderStageProgress
	OrderCompleted bool
}

// ITrackingUseCase drives the per-order production tracking (acompanhamento).
type ITrackingUseCase interface {
	ListByOrder(ctx context.Context, orderID string) ([]entities.OrderStageProgress, error)
	AdvanceStage(ctx context.Context, progressID string, status entities.StageStatus) (AdvanceResult, error)
	InitializeOrder(ctx context.Context, orderID string) ([]entities.OrderStageProgress, error)
	ReconcileOrder(ctx context.Context, orderID string) (bool, error)
	ReconcileAll(ctx context.Context) (int, error)
}

type TrackingUseCase struct {
	progressRepo interfaces.IStageProgressRepository
	stageRepo    interfaces.IProductionStageRepository
	orderRepo    interfaces.IServiceOrderRepository
	now          func() time.Time
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(
	progressRepo interfaces.IStageProgressRepository,
	stageRepo interfaces.IProductionStageRepository,
	orderRepo interfaces.IServiceOrderRepository,
) *TrackingUseCase {
	return &TrackingUseCase{
		progressRepo: progressRepo,
		stageRepo:    stageRepo,
		orderRepo:    orderRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ListByOrder returns the order's stage rows joined with their stage metadata,
// sorted by stage order.
func (u *TrackingUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.OrderStageProgress, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	rows, err := u.progressRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	stages, err := u.stageRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return joinStages(rows, stages), nil
}

// AdvanceStage sets the status of one stage row and, when every stage of the
// order is concluido afterwards, promotes the order to concluido.
//
// The stage write and the order promotion are two independent writes. If the
// sibling rows cannot be re-read after the stage write, the promotion is
// skipped and only logged; the reconciliation job closes that gap later.
func (u *TrackingUseCase) AdvanceStage(ctx context.Context, progressID string, status entities.StageStatus) (AdvanceResult, error) {
	progressID = strings.TrimSpace(progressID)
	if progressID == "" {
		return AdvanceResult{}, ErrInvalidStageProgressID
	}
	if !status.Valid() {
		return AdvanceResult{}, entities.ErrInvalidStatus
	}

	row, err := u.progressRepo.GetByID(ctx, progressID)
	if err != nil {
		log.Printf("[tracking][usecase] load failed progress_id=%s err=%v", progressID, err)
		return AdvanceResult{}, err
	}
	if row.ID == "" {
		return AdvanceResult{}, ErrStageProgressNotFound
	}

	from := row.Status
	if err := row.Advance(ctx, status, u.now()); err != nil {
		return AdvanceResult{}, err
	}

	updated, err := u.progressRepo.Update(ctx, row)
	if err != nil {
		log.Printf("[tracking][usecase] update failed progress_id=%s err=%v", progressID, err)
		return AdvanceResult{}, err
	}
	if updated.ID == "" {
		return AdvanceResult{}, ErrStageProgressNotFound
	}
	log.Printf("[tracking][usecase] stage advanced progress_id=%s order_id=%s from=%s to=%s", progressID, updated.OrderID, from, updated.Status)

	siblings, err := u.progressRepo.ListByOrderID(ctx, updated.OrderID)
	if err != nil {
		log.Printf("[tracking][usecase] aggregation skipped; sibling fetch failed order_id=%s err=%v", updated.OrderID, err)
		return AdvanceResult{Progress: updated}, nil
	}

	completed, err := u.completeIfDone(ctx, updated.OrderID, siblings)
	if err != nil {
		log.Printf("[tracking][usecase] order promotion failed order_id=%s err=%v", updated.OrderID, err)
		return AdvanceResult{Progress: updated}, err
	}
	return AdvanceResult{Progress: updated, OrderCompleted: completed}, nil
}

// InitializeOrder creates one pendente row per active stage. It is idempotent:
// an order that already has rows gets them back unchanged.
func (u *TrackingUseCase) InitializeOrder(ctx context.Context, orderID string) ([]entities.OrderStageProgress, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	existing, err := u.progressRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	stages, err := u.stageRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return joinStages(existing, stages), nil
	}
	if len(stages) == 0 {
		return nil, ErrNoActiveStages
	}

	now := u.now()
	rows := make([]entities.OrderStageProgress, 0, len(stages))
	for _, s := range stages {
		rows = append(rows, entities.OrderStageProgress{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			StageID:   s.ID,
			Status:    entities.StageStatusPendente,
			UpdatedAt: now,
		})
	}
	if err := u.progressRepo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}
	log.Printf("[tracking][usecase] order initialized order_id=%s stages=%d", orderID, len(rows))
	return joinStages(rows, stages), nil
}

// ReconcileOrder recomputes the order status from its stages.
func (u *TrackingUseCase) ReconcileOrder(ctx context.Context, orderID string) (bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return false, ErrInvalidOrderID
	}
	rows, err := u.progressRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return false, err
	}
	return u.completeIfDone(ctx, orderID, rows)
}

// ReconcileAll runs ReconcileOrder for every open order and returns how many
// orders were promoted. Per-order failures are logged and do not stop the run.
func (u *TrackingUseCase) ReconcileAll(ctx context.Context) (int, error) {
	orders, err := u.orderRepo.List(ctx, interfaces.OrderFilter{
		Statuses: []entities.OrderStatus{entities.OrderStatusPendente, entities.OrderStatusEmAndamento},
	})
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, o := range orders {
		if err := ctx.Err(); err != nil {
			return promoted, err
		}
		ok, err := u.ReconcileOrder(ctx, o.ID)
		if err != nil {
			log.Printf("[tracking][reconcile] order failed order_id=%s err=%v", o.ID, err)
			continue
		}
		if ok {
			promoted++
			log.Printf("[tracking][reconcile] order promoted order_id=%s order_number=%s", o.ID, o.OrderNumber)
		}
	}
	log.Printf("[tracking][reconcile] done checked=%d promoted=%d", len(orders), promoted)
	return promoted, nil
}

func (u *TrackingUseCase) completeIfDone(ctx context.Context, orderID string, rows []entities.OrderStageProgress) (bool, error) {
	if !entities.AllStagesDone(rows) {
		return false, nil
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order.ID == "" {
		return false, ErrServiceOrderNotFound
	}
	if order.Status.IsFinal() {
		return false, nil
	}

	updated, err := u.orderRepo.MarkCompleted(ctx, orderID, u.now())
	if err != nil {
		return false, err
	}
	if updated.ID == "" {
		return false, ErrServiceOrderNotFound
	}
	log.Printf("[tracking][usecase] order completed order_id=%s order_number=%s", orderID, updated.OrderNumber)
	return true, nil
}

func joinStages(rows []entities.OrderStageProgress, stages []entities.ProductionStage) []entities.OrderStageProgress {
	byID := make(map[string]entities.ProductionStage, len(stages))
	for _, s := range stages {
		byID[s.ID] = s
	}

	out := make([]entities.OrderStageProgress, len(rows))
	for i, r := range rows {
		if s, ok := byID[r.StageID]; ok {
			stage := s
			r.Stage = &stage
		}
		out[i] = r
	}

	stageOrder := func(p entities.OrderStageProgress) int {
		if p.Stage == nil {
			return math.MaxInt
		}
		return p.Stage.Order
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := stageOrder(out[i]), stageOrder(out[j])
		if oi != oj {
			return oi < oj
		}
		return out[i].StageID < out[j].StageID
	})
	return out
}
