package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"confeccao_os/internal/domain/entities"
	mock_interfaces "confeccao_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGrowthPercentage(t *testing.T) {
	cases := []struct {
		previous, current, want float64
	}{
		{0, 50, 100},
		{0, 0, 100},
		{100, 150, 50},
		{200, 150, -25},
		{3, 4, 33.3},
		{3, 2, -33.3},
	}
	for _, tc := range cases {
		if got := GrowthPercentage(tc.previous, tc.current); got != tc.want {
			t.Fatalf("GrowthPercentage(%v, %v) = %v, want %v", tc.previous, tc.current, got, tc.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC))
	if !from.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) || !to.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range %v - %v", from, to)
	}
}

func TestDashboardUseCase_Metrics(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	marStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	aprStart := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	febStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates current and previous month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewDashboardUseCase(clientRepo, orderRepo)

		clientRepo.EXPECT().CountCreatedBetween(gomock.Any(), marStart, aprStart).Return(15, nil)
		clientRepo.EXPECT().CountCreatedBetween(gomock.Any(), febStart, marStart).Return(10, nil)
		orderRepo.EXPECT().ListCreatedBetween(gomock.Any(), marStart, aprStart).Return([]entities.ServiceOrder{
			{Status: entities.OrderStatusPendente, Total: 100},
			{Status: entities.OrderStatusEmAndamento, Total: 200},
			{Status: entities.OrderStatusEntregue, Total: 300},
			{Status: entities.OrderStatusCancelado, Total: 1000},
		}, nil)
		orderRepo.EXPECT().ListCreatedBetween(gomock.Any(), febStart, marStart).Return([]entities.ServiceOrder{
			{Status: entities.OrderStatusEmAndamento, Total: 400},
		}, nil)

		m, err := uc.Metrics(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Clients.Current != 15 || m.Clients.Previous != 10 || m.Clients.Growth != 50 {
			t.Fatalf("unexpected clients metric %+v", m.Clients)
		}
		if m.ActiveOrders.Current != 2 || m.ActiveOrders.Previous != 1 || m.ActiveOrders.Growth != 100 {
			t.Fatalf("unexpected active orders metric %+v", m.ActiveOrders)
		}
		if m.MonthlyRevenue.Current != 600 || m.MonthlyRevenue.Previous != 400 || m.MonthlyRevenue.Growth != 50 {
			t.Fatalf("unexpected revenue metric %+v", m.MonthlyRevenue)
		}
		if m.QualityRate.Current != QualityRate || m.QualityRate.Growth != 0 {
			t.Fatalf("unexpected quality metric %+v", m.QualityRate)
		}
	})

	t.Run("any failing query fails the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewDashboardUseCase(clientRepo, orderRepo)

		clientRepo.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()
		orderRepo.EXPECT().ListCreatedBetween(gomock.Any(), marStart, aprStart).Return(nil, nil).AnyTimes()
		orderRepo.EXPECT().ListCreatedBetween(gomock.Any(), febStart, marStart).Return(nil, errors.New("db")).AnyTimes()

		_, err := uc.Metrics(context.Background(), now)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
