package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	mock_interfaces "confeccao_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("validation runs before any repository call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(mock_interfaces.NewMockIClientRepository(ctrl))

		_, err := uc.Create(context.Background(), entities.Client{Kind: entities.ClientKindPF, Name: "Ana", CPF: "111.111.111-11"})
		if !errors.Is(err, entities.ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("create success normalizes masks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		uc.now = fixedNow

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			if c.ID == "" || !c.Active || c.CPF != "52998224725" || c.Phone != "11999990000" {
				t.Fatalf("unexpected client %+v", c)
			}
			return c, nil
		})

		res, err := uc.Create(context.Background(), entities.Client{
			Kind:  entities.ClientKindPF,
			Name:  " Ana ",
			Email: "Ana@Example.com",
			Phone: "(11) 99999-0000",
			CPF:   "529.982.247-25",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Ana" || res.Email != "ana@example.com" || !res.CreatedAt.Equal(fixedNow()) {
			t.Fatalf("unexpected client %+v", res)
		}
	})
}

func TestClientUseCase_UpdateAndDeactivate(t *testing.T) {
	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	stored := entities.Client{ID: "cli-1", Kind: entities.ClientKindPF, Name: "Ana", Active: true, CreatedAt: created}

	t.Run("update keeps identity fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			return c, nil
		})

		res, err := uc.Update(context.Background(), "cli-1", entities.Client{ID: "other", Kind: entities.ClientKindPF, Name: "Ana Maria", Active: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "cli-1" || !res.Active || !res.CreatedAt.Equal(created) || res.Name != "Ana Maria" {
			t.Fatalf("unexpected client %+v", res)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), "cli-1", entities.Client{Kind: entities.ClientKindPF, Name: "Ana"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			return c, nil
		})

		res, err := uc.Deactivate(context.Background(), "cli-1")
		if err != nil || res.Active {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("deactivate inactive client is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		inactive := stored
		inactive.Active = false
		repo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(inactive, nil)

		if _, err := uc.Deactivate(context.Background(), "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)
	repo.EXPECT().List(gomock.Any(), interfaces.ClientFilter{Name: "ana", OnlyActive: true}).Return([]entities.Client{{ID: "cli-1"}}, nil)

	res, err := uc.List(context.Background(), interfaces.ClientFilter{Name: "  ana ", OnlyActive: true})
	if err != nil || len(res) != 1 {
		t.Fatalf("unexpected result err=%v res=%+v", err, res)
	}
}
