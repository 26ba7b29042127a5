package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
)

// IEmailSender delivers the "new quote request" email to the shop.
type IEmailSender interface {
	SendQuoteRequest(ctx context.Context, r entities.QuoteRequest) error
}
