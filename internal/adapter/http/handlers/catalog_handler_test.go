package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"confeccao_os/internal/adapter/http/handlers/mocks"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockIStageUseCase, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	stages := mocks.NewMockIStageUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(stages, catalog)

	r := gin.New()
	r.GET("/v1/stages", h.ListStages)
	r.POST("/v1/stages", h.CreateStage)
	r.PUT("/v1/stages/:id", h.UpdateStage)
	r.DELETE("/v1/stages/:id", h.DeleteStage)
	r.GET("/v1/catalog/:category", h.ListItems)
	r.POST("/v1/catalog", h.CreateItem)
	r.DELETE("/v1/catalog/:id", h.DeleteItem)
	r.GET("/v1/colors", h.ListColors)
	r.POST("/v1/colors", h.CreateColor)
	r.PUT("/v1/colors/:id", h.UpdateColor)
	r.DELETE("/v1/colors/:id", h.DeleteColor)
	return r, stages, catalog
}

func TestCatalogHandler_ListStages(t *testing.T) {
	t.Run("active only by default", func(t *testing.T) {
		r, stages, _ := newCatalogRouter(t)
		stages.EXPECT().List(gomock.Any(), true).Return([]entities.ProductionStage{{ID: "st-1", Name: "Corte", Order: 1, Active: true}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stages", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["name"] != "Corte" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("all", func(t *testing.T) {
		r, stages, _ := newCatalogRouter(t)
		stages.EXPECT().List(gomock.Any(), false).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stages?all=true", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreateStage(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r, _, _ := newCatalogRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/stages", bytes.NewBufferString(`{"order":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults active", func(t *testing.T) {
		r, stages, _ := newCatalogRouter(t)
		stages.EXPECT().Create(gomock.Any(), entities.ProductionStage{Name: "Costura", Order: 2, Active: true}).
			Return(entities.ProductionStage{ID: "st-2", Name: "Costura", Order: 2, Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stages", bytes.NewBufferString(`{"name":"Costura","order":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_DeleteStageNotFound(t *testing.T) {
	r, stages, _ := newCatalogRouter(t)
	stages.EXPECT().Delete(gomock.Any(), "st-9").Return(usecase.ErrStageNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/stages/st-9", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCatalogHandler_Items(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().ListItems(gomock.Any(), entities.CatalogCategory("botao")).Return(nil, usecase.ErrInvalidCatalogCategory)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/botao", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().ListItems(gomock.Any(), entities.CatalogSize).
			Return([]entities.CatalogItem{{ID: "i-1", Category: entities.CatalogSize, Value: "M"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/tamanho", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["value"] != "M" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().CreateItem(gomock.Any(), entities.CatalogItem{Category: entities.CatalogSleeveType, Value: "Raglan"}).
			Return(entities.CatalogItem{ID: "i-2", Category: entities.CatalogSleeveType, Value: "Raglan"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog", bytes.NewBufferString(`{"category":"tipo_manga","value":"Raglan"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().DeleteItem(gomock.Any(), "i-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/catalog/i-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_Colors(t *testing.T) {
	t.Run("invalid hex", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().CreateColor(gomock.Any(), gomock.Any()).Return(entities.Color{}, usecase.ErrInvalidColorHex)

		req := httptest.NewRequest(http.MethodPost, "/v1/colors", bytes.NewBufferString(`{"name":"Azul","hex":"blue"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().UpdateColor(gomock.Any(), "c-9", gomock.Any()).Return(entities.Color{}, usecase.ErrColorNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/colors/c-9", bytes.NewBufferString(`{"name":"Azul","hex":"#0000FF"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, _, catalog := newCatalogRouter(t)
		catalog.EXPECT().ListColors(gomock.Any()).Return([]entities.Color{{ID: "c-1", Name: "Azul", Hex: "#0000FF", Active: true}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/colors", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
