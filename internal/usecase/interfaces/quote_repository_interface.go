package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote (orçamento).
//
// The service must be able to:
//   - create a quote for a client
//   - update quote status (approve/reject/cancel/convert)
//   - update quote price by ID (recalculation)
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Quote, error)
	MarkConverted(ctx context.Context, id string, orderID string) (entities.Quote, error)
}

// IQuoteRequestRepository persists quick-quote submissions.
type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
}
