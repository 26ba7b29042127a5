package response

import (
	"encoding/json"
	"testing"
	"time"

	"confeccao_os/internal/domain/entities"
)

func TestFromClient(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Client{
		ID:        "c-1",
		Kind:      entities.ClientKindPJ,
		Name:      "Confecções Silva",
		CNPJ:      "11222333000181",
		Address:   entities.Address{City: "Americana", State: "SP"},
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromClient(c)
	if res.ID != "c-1" || res.Kind != "pj" || res.CNPJ != "11222333000181" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Address.City != "Americana" || res.Address.State != "SP" {
		t.Fatalf("unexpected address: %+v", res.Address)
	}
	if !res.Active || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected flags/dates: %+v", res)
	}
}

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	due := now.Add(72 * time.Hour)
	o := entities.ServiceOrder{
		ID:               "o-1",
		OrderNumber:      "1043",
		ClientID:         "c-1",
		Items:            []entities.OrderItem{{Description: "Camiseta", Quantity: 2, UnitPrice: 30}},
		Status:           entities.OrderStatusEmAndamento,
		Total:            60,
		CreatedAt:        now,
		ExpectedDelivery: &due,
		UpdatedAt:        now,
	}

	res := FromServiceOrder(o)
	if res.Status != "em_andamento" || res.OrderNumber != "1043" || res.Total != 60 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Description != "Camiseta" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.ExpectedDelivery == nil || !res.ExpectedDelivery.Equal(due) {
		t.Fatalf("unexpected expected delivery: %+v", res.ExpectedDelivery)
	}
	if res.DeliveredAt != nil || res.CompletedAt != nil {
		t.Fatalf("expected nil optional dates: %+v", res)
	}

	empty := FromServiceOrder(entities.ServiceOrder{ID: "o-2"})
	b, _ := json.Marshal(empty)
	var decoded map[string]any
	_ = json.Unmarshal(b, &decoded)
	if items, ok := decoded["items"].([]any); !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %v", decoded["items"])
	}
}

func TestFromStageProgress(t *testing.T) {
	started := time.Now().UTC()
	p := entities.OrderStageProgress{
		ID:        "p-1",
		OrderID:   "o-1",
		StageID:   "s-1",
		Status:    entities.StageStatusEmAndamento,
		StartedAt: &started,
		Stage:     &entities.ProductionStage{ID: "s-1", Name: "Costura", Order: 2},
	}

	res := FromStageProgress(p)
	if res.StageName != "Costura" || res.StageOrder != 2 || res.Status != "em_andamento" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.StartedAt == nil || !res.StartedAt.Equal(started) {
		t.Fatalf("unexpected started_at: %+v", res.StartedAt)
	}

	bare := FromStageProgress(entities.OrderStageProgress{ID: "p-2"})
	if bare.StageName != "" || bare.StageOrder != 0 {
		t.Fatalf("expected empty stage metadata: %+v", bare)
	}
}

func TestFromQuote(t *testing.T) {
	q := entities.Quote{ID: "q-1", ClientID: "c-1", Price: 99.9, Status: entities.QuoteStatusConvertido, OrderID: "o-9"}
	res := FromQuote(q)
	if res.Status != "convertido" || res.OrderID != "o-9" || res.Price != 99.9 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Items == nil {
		t.Fatalf("expected non-nil items")
	}
}

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:           "pay-1",
		QuoteID:      "q-1",
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuoteID != "q-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromDashboard(t *testing.T) {
	m := entities.DashboardMetrics{
		Clients:        entities.Metric{Current: 4, Previous: 3, Growth: 33.3},
		ActiveOrders:   entities.Metric{Current: 2},
		MonthlyRevenue: entities.Metric{Current: 1500.5, Previous: 1000, Growth: 50.1},
		QualityRate:    entities.Metric{Current: 98.5},
	}
	res := FromDashboard(m)
	if res.Clients.Growth != 33.3 || res.MonthlyRevenue.Current != 1500.5 || res.QualityRate.Current != 98.5 {
		t.Fatalf("unexpected dashboard mapping: %+v", res)
	}
}

func TestFromCatalogAndColors(t *testing.T) {
	items := FromCatalogItems([]entities.CatalogItem{{ID: "1", Category: entities.CatalogCollarType, Value: "Polo"}})
	if len(items) != 1 || items[0].Category != "tipo_gola" || items[0].Value != "Polo" {
		t.Fatalf("unexpected catalog mapping: %+v", items)
	}
	colors := FromColors(nil)
	if colors == nil || len(colors) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", colors)
	}
}
