package entities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/looplab/fsm"
)

var ErrInvalidTransition = errors.New("invalid stage transition")

// ProductionStage is reference data: one step of the garment production line
// (corte, costura, acabamento...).
type ProductionStage struct {
	ID          string
	Name        string
	Description string
	Order       int
	Active      bool
	CreatedAt   time.Time
}

// OrderStageProgress ("acompanhamento") tracks one stage of one order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id
//
// Stage is filled only when the row is listed together with its stage metadata.
type OrderStageProgress struct {
	ID          string
	OrderID     string
	StageID     string
	Status      StageStatus
	StartedAt   *time.Time
	CompletedAt *time.Time
	Note        string
	UpdatedAt   time.Time

	Stage *ProductionStage
}

const (
	stageEventReopen   = "reabrir"
	stageEventStart    = "iniciar"
	stageEventComplete = "concluir"
)

var stageEvents = fsm.Events{
	{Name: stageEventReopen, Src: []string{string(StageStatusEmAndamento), string(StageStatusConcluido)}, Dst: string(StageStatusPendente)},
	{Name: stageEventStart, Src: []string{string(StageStatusPendente), string(StageStatusConcluido)}, Dst: string(StageStatusEmAndamento)},
	{Name: stageEventComplete, Src: []string{string(StageStatusPendente), string(StageStatusEmAndamento)}, Dst: string(StageStatusConcluido)},
}

func stageEventFor(to StageStatus) string {
	switch to {
	case StageStatusEmAndamento:
		return stageEventStart
	case StageStatusConcluido:
		return stageEventComplete
	default:
		return stageEventReopen
	}
}

// Advance moves the stage to the target status and applies the timestamp rules:
//   - entering em_andamento stamps StartedAt only when it is unset
//   - entering concluido stamps CompletedAt and backfills StartedAt with the same instant
//   - leaving concluido clears CompletedAt
//
// Advancing to the current status is a no-op.
func (p *OrderStageProgress) Advance(ctx context.Context, to StageStatus, now time.Time) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if p.Status == to {
		return nil
	}

	from := p.Status
	machine := fsm.NewFSM(string(from), stageEvents, fsm.Callbacks{
		"leave_" + string(StageStatusConcluido): func(_ context.Context, _ *fsm.Event) {
			p.CompletedAt = nil
		},
		"enter_" + string(StageStatusEmAndamento): func(_ context.Context, _ *fsm.Event) {
			if p.StartedAt == nil {
				started := now
				p.StartedAt = &started
			}
		},
		"enter_" + string(StageStatusConcluido): func(_ context.Context, _ *fsm.Event) {
			completed := now
			p.CompletedAt = &completed
			if p.StartedAt == nil {
				started := now
				p.StartedAt = &started
			}
		},
		"enter_state": func(_ context.Context, e *fsm.Event) {
			p.Status = StageStatus(e.Dst)
			p.UpdatedAt = now
		},
	})

	if err := machine.Event(ctx, stageEventFor(to)); err != nil {
		var noTransition fsm.NoTransitionError
		if errors.As(err, &noTransition) {
			return nil
		}
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// AllStagesDone reports whether every row is concluido. An order without
// stage rows is never considered done.
func AllStagesDone(rows []OrderStageProgress) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if r.Status != StageStatusConcluido {
			return false
		}
	}
	return true
}
