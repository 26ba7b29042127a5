package entities

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid status")

// OrderStatus is the lifecycle of a service order (OS).
//
// A single underscore vocabulary is used for every status value; hyphenated
// spellings such as "em-andamento" are rejected.
type OrderStatus string

const (
	OrderStatusPendente    OrderStatus = "pendente"
	OrderStatusEmAndamento OrderStatus = "em_andamento"
	OrderStatusConcluido   OrderStatus = "concluido"
	OrderStatusEntregue    OrderStatus = "entregue"
	OrderStatusCancelado   OrderStatus = "cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendente, OrderStatusEmAndamento, OrderStatusConcluido, OrderStatusEntregue, OrderStatusCancelado:
		return true
	}
	return false
}

// IsFinal reports whether the order no longer takes part in production.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusConcluido || s == OrderStatusEntregue || s == OrderStatusCancelado
}

// IsActive reports whether the order counts as open work on the dashboard.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPendente || s == OrderStatusEmAndamento
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// StageStatus is the progress of one production stage of an order.
type StageStatus string

const (
	StageStatusPendente    StageStatus = "pendente"
	StageStatusEmAndamento StageStatus = "em_andamento"
	StageStatusConcluido   StageStatus = "concluido"
)

func (s StageStatus) Valid() bool {
	switch s {
	case StageStatusPendente, StageStatusEmAndamento, StageStatusConcluido:
		return true
	}
	return false
}

func ParseStageStatus(raw string) (StageStatus, error) {
	s := StageStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// QuoteStatus represents the lifecycle of a quote (orçamento).
type QuoteStatus string

const (
	QuoteStatusPendente   QuoteStatus = "pendente"
	QuoteStatusAprovado   QuoteStatus = "aprovado"
	QuoteStatusRejeitado  QuoteStatus = "rejeitado"
	QuoteStatusCancelado  QuoteStatus = "cancelado"
	QuoteStatusConvertido QuoteStatus = "convertido"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPendente, QuoteStatusAprovado, QuoteStatusRejeitado, QuoteStatusCancelado, QuoteStatusConvertido:
		return true
	}
	return false
}

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPendente || s == PaymentStatusAprovado || s == PaymentStatusNegado
}
