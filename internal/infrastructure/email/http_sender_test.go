package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"confeccao_os/internal/config"
	"confeccao_os/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:            "r-1",
		Name:          "Ana <Souza>",
		Email:         "ana@example.com",
		Phone:         "11987654321",
		Message:       "20 camisetas",
		Amount:        450,
		OrderNumber:   "1043",
		AttachmentURL: "http://localhost:4566/anexos/orcamentos/x.png",
	}
}

func TestHTTPSender_SendQuoteRequest(t *testing.T) {
	var (
		gotAuth string
		got     sendRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	s := NewHTTPSender(&config.Config{
		EmailAPIURL: srv.URL,
		EmailAPIKey: " re_123 ",
		EmailFrom:   "Orçamentos <orcamentos@example.com>",
		EmailTo:     "loja@example.com, dono@example.com",
	})

	require.NoError(t, s.SendQuoteRequest(context.Background(), sampleRequest()))
	assert.Equal(t, "Bearer re_123", gotAuth)
	assert.Equal(t, []string{"loja@example.com", "dono@example.com"}, got.To)
	assert.Equal(t, "ana@example.com", got.ReplyTo)
	assert.Equal(t, "Novo orçamento #1043 - Ana <Souza>", got.Subject)
	assert.Contains(t, got.HTML, "Ana &lt;Souza&gt;")
	assert.Contains(t, got.HTML, "R$ 450.00")
	assert.Contains(t, got.HTML, `href="http://localhost:4566/anexos/orcamentos/x.png"`)
}

func TestHTTPSender_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	s := NewHTTPSender(&config.Config{EmailAPIURL: srv.URL, EmailAPIKey: "k", EmailTo: "loja@example.com"})
	err := s.SendQuoteRequest(context.Background(), sampleRequest())

	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid from")
}

func TestHTTPSender_NotConfigured(t *testing.T) {
	s := NewHTTPSender(&config.Config{EmailTo: "loja@example.com"})
	assert.ErrorIs(t, s.SendQuoteRequest(context.Background(), sampleRequest()), ErrEmailNotConfigured)

	s = NewHTTPSender(&config.Config{EmailAPIKey: "k"})
	assert.Error(t, s.SendQuoteRequest(context.Background(), sampleRequest()))
}
