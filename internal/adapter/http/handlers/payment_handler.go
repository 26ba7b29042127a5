package handlers

import (
	response "confeccao_os/internal/adapter/http/dto/response"
	"confeccao_os/internal/usecase"
	"confeccao_os/pkg"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles Mercado Pago payments of approved quotes.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByQuoteID godoc
// @Summary      Create and process a payment for a quote
// @Description  The body is the Mercado Pago payment payload, either bare or wrapped in {"mp_payload": ...}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string                          true  "Quote ID"
// @Param        payment   body      request.PaymentCreateRequest    false  "Mercado Pago payload"
// @Success      200       {object}  response.PaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [post]
func (h *PaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] create start quote_id=%s", quoteID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			writeError(c, errInvalidPayload)
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByQuoteID godoc
// @Summary      Latest payment of a quote
// @Tags         payments
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.PaymentResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [get]
func (h *PaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] get-by-quote start quote_id=%s", quoteID)

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[payment][handler] get-by-quote failed quote_id=%s err=%v", quoteID, err)
		writeError(c, mapPaymentError(err))
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-quote not-found quote_id=%s", quoteID)
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-quote success quote_id=%s payment_id=%s status=%s", quoteID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// readMPPayload accepts an empty body, a bare provider payload or the
// {"mp_payload": ...} envelope.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
