package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"confeccao_os/internal/adapter/http/handlers/mocks"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"confeccao_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"kind":"pf"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid cpf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, entities.ErrInvalidCPF)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"kind":"pf","name":"Ana","cpf":"111.111.111-11"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_CLIENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			if c.Kind != entities.ClientKindPF || c.Address.City != "Recife" {
				t.Fatalf("unexpected client passed to usecase: %+v", c)
			}
			c.ID = "cli-1"
			c.Active = true
			return c, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"kind":"PF","name":"Ana","cpf":"529.982.247-25","address":{"city":"Recife"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "cli-1" || body["kind"] != "pf" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.GET("/v1/clients", h.List)

	uc.EXPECT().List(gomock.Any(), interfaces.ClientFilter{Name: "ana", OnlyActive: true}).
		Return([]entities.Client{{ID: "cli-1", Name: "Ana"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients?name=ana&active=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "cli-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestClientHandler_GetAndDeactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.Deactivate)

		uc.EXPECT().Deactivate(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Active: false}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/cli-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["active"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
