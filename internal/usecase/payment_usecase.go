package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentQuoteID          = errors.New("invalid quote_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes the Mercado Pago flow. MockMode skips the provider and
// approves every payment, for local runs.
type PaymentOptions struct {
	MockMode        bool
	SandboxToken    bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase charges an approved quote (sinal/pagamento do orçamento).
type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	return &PaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_quote_id=%q payload_len=%d", quoteID, len(mpPayload))
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuoteID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Printf("[payment][usecase] invalid payload quote_id=%s", quoteID)
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.MockMode {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}
	if u.quoteRepo == nil {
		return entities.Payment{}, errors.New("quote repository not configured")
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.Payment{}, err
	}
	if q.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}
	if !u.opts.MockMode && q.Status != entities.QuoteStatusAprovado {
		log.Printf("[payment][usecase] quote not approved quote_id=%s status=%s", quoteID, q.Status)
		return entities.Payment{}, ErrQuoteNotApproved
	}

	mpPayload, err = u.enrichPayload(q, mpPayload)
	if err != nil {
		return entities.Payment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if u.opts.MockMode {
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(q, mpPayload, u.now())
	} else {
		log.Printf("[payment][usecase] calling payment gateway quote_id=%s", quoteID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.Payment{
		ID:           providerPaymentID,
		QuoteID:      quoteID,
		Date:         u.now(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)
	return created, nil
}

// enrichPayload links the provider payload to the quote and forces the amount
// to the stored quote price.
func (u *PaymentUseCase) enrichPayload(q entities.Quote, mpPayload json.RawMessage) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.MockMode {
			return nil, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}

	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id quote_id=%s", q.ID)
			return nil, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer quote_id=%s", q.ID)
			return nil, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento %s", q.ID)
	}
	reqMap["transaction_amount"] = q.Price

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill the email
	// only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.SandboxToken {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.SandboxToken || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func mockProviderResponse(q entities.Quote, payload json.RawMessage, now time.Time) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	ts := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = ts
	resp["date_approved"] = ts
	resp["transaction_amount"] = q.Price
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
