package usecase

import (
	"context"
	"errors"
	"testing"

	"confeccao_os/internal/domain/entities"
	mock_interfaces "confeccao_os/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seedMocks struct {
	stages *mock_interfaces.MockIProductionStageRepository
	items  *mock_interfaces.MockICatalogRepository
	colors *mock_interfaces.MockIColorRepository
}

func newSeedForTest(ctrl *gomock.Controller) (*SeedUseCase, seedMocks) {
	m := seedMocks{
		stages: mock_interfaces.NewMockIProductionStageRepository(ctrl),
		items:  mock_interfaces.NewMockICatalogRepository(ctrl),
		colors: mock_interfaces.NewMockIColorRepository(ctrl),
	}
	uc := NewSeedUseCase(NewStageUseCase(m.stages), NewCatalogUseCase(m.items, m.colors))
	return uc, m
}

func TestSeedUseCase_Seed(t *testing.T) {
	t.Run("skips existing rows case-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSeedForTest(ctrl)

		m.stages.EXPECT().List(gomock.Any(), false).Return([]entities.ProductionStage{{ID: "st-1", Name: "Corte"}}, nil)
		m.stages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
			return s, nil
		}).Times(1)

		m.items.EXPECT().ListByCategory(gomock.Any(), entities.CatalogSize).Return([]entities.CatalogItem{{ID: "i-1", Category: entities.CatalogSize, Value: "M"}}, nil).Times(1)
		m.items.EXPECT().ListByCategory(gomock.Any(), entities.CatalogSleeveType).Return(nil, nil).Times(1)
		m.items.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it entities.CatalogItem) (entities.CatalogItem, error) {
			return it, nil
		}).Times(2)

		m.colors.EXPECT().List(gomock.Any()).Return([]entities.Color{{ID: "c-1", Name: "Azul", Hex: "#0000FF"}}, nil)
		m.colors.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Color) (entities.Color, error) {
			return c, nil
		}).Times(1)

		report, err := uc.Seed(context.Background(), CatalogSeed{
			Stages: []entities.ProductionStage{{Name: " corte "}, {Name: "Costura", Order: 2}},
			Items: []entities.CatalogItem{
				{Category: entities.CatalogSize, Value: "m"},
				{Category: entities.CatalogSize, Value: "G"},
				{Category: entities.CatalogSleeveType, Value: "Raglan"},
				{Category: entities.CatalogSleeveType, Value: "raglan"},
			},
			Colors: []entities.Color{{Name: "AZUL", Hex: "#0000ff"}, {Name: "Branco", Hex: "#ffffff"}},
		})
		require.NoError(t, err)
		assert.Equal(t, SeedReport{
			StagesCreated: 1, StagesSkipped: 1,
			ItemsCreated: 2, ItemsSkipped: 2,
			ColorsCreated: 1, ColorsSkipped: 1,
		}, report)
	})

	t.Run("list failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSeedForTest(ctrl)
		boom := errors.New("db down")
		m.stages.EXPECT().List(gomock.Any(), false).Return(nil, boom)

		_, err := uc.Seed(context.Background(), CatalogSeed{})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "list stages")
	})

	t.Run("invalid row stops the run with counts so far", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSeedForTest(ctrl)
		m.stages.EXPECT().List(gomock.Any(), false).Return(nil, nil)
		m.stages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
			return s, nil
		})

		report, err := uc.Seed(context.Background(), CatalogSeed{
			Stages: []entities.ProductionStage{{Name: "Corte"}, {Name: "  "}},
		})
		assert.ErrorIs(t, err, ErrStageNameRequired)
		assert.Equal(t, 1, report.StagesCreated)
	})
}
