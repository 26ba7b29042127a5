package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"confeccao_os/internal/adapter/http/handlers/mocks"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteRequestUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
	h := NewQuoteRequestHandler(uc)

	r := gin.New()
	r.POST("/v1/quote-requests", h.Submit)
	r.GET("/v1/quote-requests", h.List)
	r.POST("/v1/functions/send-quote-email", h.SendQuoteEmail)
	return r, uc
}

func multipartBody(t *testing.T, fields map[string]string, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(attachmentField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestQuoteRequestHandler_Submit(t *testing.T) {
	fields := map[string]string{
		"name":    "Maria",
		"email":   "maria@example.com",
		"phone":   "(81) 99999-0000",
		"message": "50 camisetas",
		"amount":  "1200.50",
	}

	t.Run("without attachment", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitQuoteRequestInput{
			Name:    "Maria",
			Email:   "maria@example.com",
			Phone:   "(81) 99999-0000",
			Message: "50 camisetas",
			Amount:  1200.50,
		}, (*entities.Attachment)(nil)).Return(entities.QuoteRequest{ID: "qr-1", Name: "Maria", OrderNumber: "1000"}, nil)

		body, contentType := multipartBody(t, fields, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["order_number"] != "1000" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("with attachment", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		png := []byte("\x89PNG\r\n\x1a\nfake")
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ usecase.SubmitQuoteRequestInput, a *entities.Attachment) (entities.QuoteRequest, error) {
				if a == nil || a.Filename != "arte.png" || !bytes.Equal(a.Data, png) || a.Size != int64(len(png)) {
					t.Fatalf("unexpected attachment: %+v", a)
				}
				return entities.QuoteRequest{ID: "qr-2", AttachmentURL: "https://cdn.example.com/orcamentos/x.png"}, nil
			})

		body, contentType := multipartBody(t, fields, "arte.png", png)
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("too large", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrAttachmentTooLarge)

		body, contentType := multipartBody(t, fields, "arte.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["message"] != "Arquivo muito grande. Tamanho máximo: 10MB" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrAttachmentUpload)

		body, contentType := multipartBody(t, fields, "arte.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrMissingRequiredField)

		body, contentType := multipartBody(t, map[string]string{"name": "Maria"}, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/quote-requests", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteRequestHandler_List(t *testing.T) {
	r, uc := newQuoteRequestRouter(t)
	uc.EXPECT().List(gomock.Any()).Return([]entities.QuoteRequest{{ID: "qr-1"}, {ID: "qr-2"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quote-requests", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestQuoteRequestHandler_SendQuoteEmail(t *testing.T) {
	payload := `{"name":"Maria","email":"maria@example.com","phone":"81999990000","order_number":"1001"}`

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		uc.EXPECT().SendEmail(gomock.Any(), entities.QuoteRequest{
			Name:        "Maria",
			Email:       "maria@example.com",
			Phone:       "81999990000",
			OrderNumber: "1001",
		}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/functions/send-quote-email", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		r, uc := newQuoteRequestRouter(t)
		uc.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("status 500"))

		req := httptest.NewRequest(http.MethodPost, "/v1/functions/send-quote-email", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newQuoteRequestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/functions/send-quote-email", bytes.NewBufferString(`{"name":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
