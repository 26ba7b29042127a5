package usecase

import (
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	FirstOrderNumber = 1000

	// Bounds of the fallback number used when the stored maximum is unusable.
	randomOrderNumberMin = 1000
	randomOrderNumberMax = 10000
)

// IOrderNumberUseCase allocates service order numbers.
//
// The counter is max+1 over the stored orders. Two concurrent callers can get
// the same number; nothing detects or resolves that collision.
type IOrderNumberUseCase interface {
	Next(ctx context.Context) int
}

type OrderNumberUseCase struct {
	repo interfaces.IServiceOrderRepository
	intn func(n int) int
}

var _ IOrderNumberUseCase = (*OrderNumberUseCase)(nil)

func NewOrderNumberUseCase(repo interfaces.IServiceOrderRepository) *OrderNumberUseCase {
	return &OrderNumberUseCase{repo: repo, intn: rand.IntN}
}

func (u *OrderNumberUseCase) Next(ctx context.Context) int {
	raw, err := u.repo.MaxOrderNumber(ctx)
	if err != nil {
		log.Printf("[order-number][usecase] max query failed; using seed err=%v", err)
		return FirstOrderNumber
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FirstOrderNumber
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		fallback := randomOrderNumberMin + u.intn(randomOrderNumberMax-randomOrderNumberMin)
		log.Printf("[order-number][usecase] unparsable max=%q; using random fallback=%d", raw, fallback)
		return fallback
	}
	return n + 1
}
