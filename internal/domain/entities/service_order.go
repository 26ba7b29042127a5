package entities

import "time"

// OrderItem is one garment line of a service order or quote.
type OrderItem struct {
	Description string  `json:"description"`
	Product     string  `json:"product,omitempty"`
	Fabric      string  `json:"fabric,omitempty"`
	FabricType  string  `json:"fabric_type,omitempty"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
	CollarType  string  `json:"collar_type,omitempty"`
	SleeveType  string  `json:"sleeve_type,omitempty"`
	HemType     string  `json:"hem_type,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (i OrderItem) Subtotal() float64 {
	if i.Quantity <= 0 || i.UnitPrice <= 0 {
		return 0
	}
	return float64(i.Quantity) * i.UnitPrice
}

func ItemsTotal(items []OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// ServiceOrder is a production order (ordem de serviço, "OS").
//
// Storage model (DynamoDB):
//   - PK: id
//   - order_number is a numeric string allocated by max+1 (not unique-enforced)
type ServiceOrder struct {
	ID               string
	OrderNumber      string
	ClientID         string
	QuoteID          string
	Items            []OrderItem
	Status           OrderStatus
	Total            float64
	Description      string
	Notes            string
	CreatedAt        time.Time
	ExpectedDelivery *time.Time
	DeliveredAt      *time.Time
	CompletedAt      *time.Time
	UpdatedAt        time.Time
}

// MarkCompleted promotes the order to concluido and stamps the completion time.
func (o *ServiceOrder) MarkCompleted(now time.Time) {
	o.Status = OrderStatusConcluido
	t := now
	o.CompletedAt = &t
	o.UpdatedAt = now
}

// IsOverdue reports whether an in-progress order is past its expected delivery.
func (o ServiceOrder) IsOverdue(now time.Time) bool {
	if o.ExpectedDelivery == nil || o.Status != OrderStatusEmAndamento {
		return false
	}
	return o.ExpectedDelivery.Before(now)
}
