package interfaces

import (
	"confeccao_os/internal/domain/entities"
	"context"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}
