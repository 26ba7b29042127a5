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

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes", h.Create)
	r.GET("/v1/quotes", h.List)
	r.GET("/v1/quotes/:id", h.Get)
	r.PATCH("/v1/quotes/:id/approve", h.Approve)
	r.PATCH("/v1/quotes/:id/reject", h.Reject)
	r.PATCH("/v1/quotes/:id/cancel", h.Cancel)
	r.PATCH("/v1/quotes/:id/price", h.UpdatePrice)
	r.POST("/v1/quotes/:id/convert", h.Convert)
	return r, uc
}

func TestQuoteHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidQuoteValue)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"cli-1","price":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateQuoteInput{ClientID: "cli-1", Price: 250}).
			Return(entities.Quote{ID: "q-1", ClientID: "cli-1", Price: 250, Status: entities.QuoteStatusPendente}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"cli-1","price":250}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["status"] != "pendente" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Transitions(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		expect func(uc *mocks.MockIQuoteUseCase)
		code   int
	}{
		{
			name: "approve",
			path: "/v1/quotes/q-1/approve",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().Approve(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)
			},
			code: http.StatusOK,
		},
		{
			name: "approve not pending",
			path: "/v1/quotes/q-1/approve",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().Approve(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotPending)
			},
			code: http.StatusConflict,
		},
		{
			name: "reject not found",
			path: "/v1/quotes/q-9/reject",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().Reject(gomock.Any(), "q-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)
			},
			code: http.StatusNotFound,
		},
		{
			name: "cancel closed",
			path: "/v1/quotes/q-1/cancel",
			expect: func(uc *mocks.MockIQuoteUseCase) {
				uc.EXPECT().Cancel(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteAlreadyClosed)
			},
			code: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newQuoteRouter(t)
			tc.expect(uc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, tc.path, nil))

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestQuoteHandler_UpdatePrice(t *testing.T) {
	t.Run("missing price", func(t *testing.T) {
		r, _ := newQuoteRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/price", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdatePrice(gomock.Any(), "q-1", 320.5).Return(entities.Quote{ID: "q-1", Price: 320.5}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/price", bytes.NewBufferString(`{"price":320.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Convert(t *testing.T) {
	t.Run("not approved", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ConvertToOrder(gomock.Any(), "q-1").Return(entities.Quote{}, entities.ServiceOrder{}, usecase.ErrQuoteNotApproved)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ConvertToOrder(gomock.Any(), "q-1").Return(
			entities.Quote{ID: "q-1", Status: entities.QuoteStatusConvertido, OrderID: "os-1"},
			entities.ServiceOrder{ID: "os-1", QuoteID: "q-1", OrderNumber: "1002", Status: entities.OrderStatusPendente},
			nil,
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Quote map[string]any `json:"quote"`
			Order map[string]any `json:"order"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Quote["status"] != "convertido" || body.Order["quote_id"] != "q-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
