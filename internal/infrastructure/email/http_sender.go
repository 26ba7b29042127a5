package email

import (
	"bytes"
	"confeccao_os/internal/config"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var ErrEmailNotConfigured = errors.New("email api key not configured")

// APIError carries a non-2xx response from the transactional email API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("email api status=%d body=%s", e.StatusCode, e.Body)
}

var quoteRequestTmpl = template.Must(template.New("quote_request").Parse(`<h2>Nova solicitação de orçamento</h2>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Telefone:</strong> {{.Phone}}</p>
<p><strong>Número do pedido:</strong> {{.OrderNumber}}</p>
<p><strong>Valor:</strong> R$ {{printf "%.2f" .Amount}}</p>
{{if .Message}}<p><strong>Mensagem:</strong></p><p>{{.Message}}</p>{{end}}
{{if .AttachmentURL}}<p><strong>Anexo:</strong> <a href="{{.AttachmentURL}}">{{.AttachmentURL}}</a></p>{{end}}
`))

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// HTTPSender forwards quote-request emails to a transactional email HTTP API
// (Resend-compatible payload, bearer token auth). There is no retry.
type HTTPSender struct {
	apiURL string
	apiKey string
	from   string
	to     []string
	client *http.Client
}

var _ interfaces.IEmailSender = (*HTTPSender)(nil)

func NewHTTPSender(cfg *config.Config) *HTTPSender {
	var to []string
	for _, addr := range strings.Split(cfg.EmailTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	return &HTTPSender{
		apiURL: cfg.EmailAPIURL,
		apiKey: strings.TrimSpace(cfg.EmailAPIKey),
		from:   cfg.EmailFrom,
		to:     to,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSender) SendQuoteRequest(ctx context.Context, r entities.QuoteRequest) error {
	if s.apiKey == "" {
		return ErrEmailNotConfigured
	}
	if len(s.to) == 0 {
		return errors.New("email recipient not configured")
	}

	var html bytes.Buffer
	if err := quoteRequestTmpl.Execute(&html, r); err != nil {
		return err
	}
	body, err := json.Marshal(sendRequest{
		From:    s.from,
		To:      s.to,
		Subject: fmt.Sprintf("Novo orçamento #%s - %s", r.OrderNumber, r.Name),
		HTML:    html.String(),
		ReplyTo: r.Email,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[email][sender] request failed order_number=%s err=%v", r.OrderNumber, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	log.Printf("[email][sender] sent order_number=%s status=%d", r.OrderNumber, resp.StatusCode)
	return nil
}
