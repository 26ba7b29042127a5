package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

// QualityRate is the fixed quality indicator shown on the dashboard.
const QualityRate = 98.5

// IDashboardUseCase computes the summary cards for the current and previous
// calendar month.
type IDashboardUseCase interface {
	Metrics(ctx context.Context, now time.Time) (entities.DashboardMetrics, error)
}

type DashboardUseCase struct {
	clientRepo interfaces.IClientRepository
	orderRepo  interfaces.IServiceOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(clientRepo interfaces.IClientRepository, orderRepo interfaces.IServiceOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{clientRepo: clientRepo, orderRepo: orderRepo}
}

// MonthRange returns [first day of the month of t, first day of the next month).
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// GrowthPercentage is (current-previous)/previous*100 rounded to one decimal,
// or 100 when previous is zero.
func GrowthPercentage(previous, current float64) float64 {
	if previous == 0 {
		return 100
	}
	return math.Round((current-previous)/previous*1000) / 10
}

// Metrics runs every sub-query; the first failure fails the whole call.
func (u *DashboardUseCase) Metrics(ctx context.Context, now time.Time) (entities.DashboardMetrics, error) {
	curFrom, curTo := MonthRange(now)
	prevFrom, prevTo := MonthRange(curFrom.AddDate(0, -1, 0))
	log.Printf("[dashboard][usecase] metrics start month=%s", curFrom.Format("2006-01"))

	var (
		clientsCur, clientsPrev int
		ordersCur, ordersPrev   []entities.ServiceOrder
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clientsCur, err = u.clientRepo.CountCreatedBetween(gctx, curFrom, curTo)
		return err
	})
	g.Go(func() error {
		var err error
		clientsPrev, err = u.clientRepo.CountCreatedBetween(gctx, prevFrom, prevTo)
		return err
	})
	g.Go(func() error {
		var err error
		ordersCur, err = u.orderRepo.ListCreatedBetween(gctx, curFrom, curTo)
		return err
	})
	g.Go(func() error {
		var err error
		ordersPrev, err = u.orderRepo.ListCreatedBetween(gctx, prevFrom, prevTo)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[dashboard][usecase] metrics failed err=%v", err)
		return entities.DashboardMetrics{}, err
	}

	activeCur, revenueCur := summarizeOrders(ordersCur)
	activePrev, revenuePrev := summarizeOrders(ordersPrev)

	return entities.DashboardMetrics{
		Clients:        newMetric(float64(clientsPrev), float64(clientsCur)),
		ActiveOrders:   newMetric(float64(activePrev), float64(activeCur)),
		MonthlyRevenue: newMetric(revenuePrev, revenueCur),
		QualityRate:    entities.Metric{Current: QualityRate, Previous: QualityRate, Growth: 0},
	}, nil
}

func newMetric(previous, current float64) entities.Metric {
	return entities.Metric{Current: current, Previous: previous, Growth: GrowthPercentage(previous, current)}
}

// summarizeOrders counts pendente/em_andamento orders and sums the totals of
// every order that was not cancelled.
func summarizeOrders(orders []entities.ServiceOrder) (active int, revenue float64) {
	for _, o := range orders {
		if o.Status.IsActive() {
			active++
		}
		if o.Status != entities.OrderStatusCancelado {
			revenue += o.Total
		}
	}
	return active, math.Round(revenue*100) / 100
}
