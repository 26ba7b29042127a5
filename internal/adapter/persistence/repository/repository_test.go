package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func marshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestClientItem_RoundTrip(t *testing.T) {
	c := entities.Client{
		ID:      "c-1",
		Kind:    entities.ClientKindPF,
		Name:    "Ana Souza",
		Email:   "ana@example.com",
		Phone:   "11987654321",
		CPF:     "52998224725",
		Address: entities.Address{Street: "Rua A", City: "São Paulo", State: "SP", ZipCode: "01001000"},
		Active:  true,

		CreatedAt: t0,
		UpdatedAt: t0,
	}

	it := toClientItem(c)
	assert.Equal(t, "ana souza", it.NameSearch)

	got, err := fromClientItem(it)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestClientItem_Malformed(t *testing.T) {
	it := toClientItem(entities.Client{ID: "c-1", Kind: entities.ClientKindPJ, Name: "X", CreatedAt: t0, UpdatedAt: t0})

	bad := it
	bad.CreatedAt = "ontem"
	_, err := fromClientItem(bad)
	assert.ErrorIs(t, err, ErrMalformedRow)

	bad = it
	bad.Kind = "pessoa"
	_, err = fromClientItem(bad)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestClientRepository_GetByID_NotFound(t *testing.T) {
	repo := NewClientDynamoRepository(&fakeDynamo{}, "clientes")
	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestClientRepository_List_BuildsFilterAndSorts(t *testing.T) {
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{Items: []map[string]types.AttributeValue{
			marshal(t, toClientItem(entities.Client{ID: "2", Kind: entities.ClientKindPF, Name: "bruno", CreatedAt: t0, UpdatedAt: t0})),
		}},
		{Items: []map[string]types.AttributeValue{
			marshal(t, toClientItem(entities.Client{ID: "1", Kind: entities.ClientKindPF, Name: "Ana", CreatedAt: t0, UpdatedAt: t0})),
		}},
	}}
	repo := NewClientDynamoRepository(ddb, "clientes")

	got, err := repo.List(context.Background(), interfaces.ClientFilter{Name: " AN ", OnlyActive: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	require.Len(t, ddb.scanInputs, 2)
	in := ddb.scanInputs[0]
	assert.Equal(t, "#active = :active AND contains(#ns, :name)", aws.ToString(in.FilterExpression))
	assert.Equal(t, s("an"), in.ExpressionAttributeValues[":name"])
}

func TestClientRepository_CountCreatedBetween_SumsPages(t *testing.T) {
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Count: 3}, {Count: 2}}}
	repo := NewClientDynamoRepository(ddb, "clientes")

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	n, err := repo.CountCreatedBetween(context.Background(), from, from.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	in := ddb.scanInputs[0]
	assert.Equal(t, types.SelectCount, in.Select)
	assert.Equal(t, s("2025-03-01T00:00:00.000000000Z"), in.ExpressionAttributeValues[":from"])
	assert.Equal(t, s("2025-04-01T00:00:00.000000000Z"), in.ExpressionAttributeValues[":to"])
}

func TestStageRepository_List_SortsByOrder(t *testing.T) {
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{
		marshal(t, toStageItem(entities.ProductionStage{ID: "acabamento", Name: "Acabamento", Order: 3, Active: true, CreatedAt: t0})),
		marshal(t, toStageItem(entities.ProductionStage{ID: "corte", Name: "Corte", Order: 1, Active: true, CreatedAt: t0})),
		marshal(t, toStageItem(entities.ProductionStage{ID: "costura", Name: "Costura", Order: 2, Active: true, CreatedAt: t0})),
	}}}}
	repo := NewStageDynamoRepository(ddb, "etapas_producao")

	got, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"corte", "costura", "acabamento"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "#active = :active", aws.ToString(ddb.scanInputs[0].FilterExpression))
}

func TestStageRepository_Delete(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewStageDynamoRepository(ddb, "etapas_producao")
	require.NoError(t, repo.Delete(context.Background(), "corte"))
	assert.Equal(t, []string{"corte"}, ddb.deletedKeys)
}

func TestStageProgressItem_RoundTrip(t *testing.T) {
	started := t0.Add(-time.Hour)
	p := entities.OrderStageProgress{
		ID: "p-1", OrderID: "o-1", StageID: "corte",
		Status:    entities.StageStatusEmAndamento,
		StartedAt: &started,
		UpdatedAt: t0,
	}
	it := toStageProgressItem(p)
	assert.Empty(t, it.CompletedAt)

	got, err := fromStageProgressItem(it)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	it.Status = "em-andamento"
	_, err = fromStageProgressItem(it)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestStageProgressRepository_CreateBatch_Chunks(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewStageProgressDynamoRepository(ddb, "acompanhamento_os")

	rows := make([]entities.OrderStageProgress, 30)
	for i := range rows {
		rows[i] = entities.OrderStageProgress{ID: fmt.Sprintf("p-%d", i), OrderID: "o-1", StageID: "s", Status: entities.StageStatusPendente, UpdatedAt: t0}
	}
	require.NoError(t, repo.CreateBatch(context.Background(), rows))
	require.Len(t, ddb.batchInputs, 2)
	assert.Len(t, ddb.batchInputs[0].RequestItems["acompanhamento_os"], 25)
	assert.Len(t, ddb.batchInputs[1].RequestItems["acompanhamento_os"], 5)
}

func TestStageProgressRepository_CreateBatch_RetriesUnprocessed(t *testing.T) {
	leftover := map[string][]types.WriteRequest{
		"acompanhamento_os": {{PutRequest: &types.PutRequest{Item: map[string]types.AttributeValue{"id": s("p-1")}}}},
	}
	ddb := &fakeDynamo{batchOut: []*dynamodb.BatchWriteItemOutput{{UnprocessedItems: leftover}, {}}}
	repo := NewStageProgressDynamoRepository(ddb, "acompanhamento_os")

	rows := []entities.OrderStageProgress{
		{ID: "p-0", OrderID: "o-1", StageID: "a", Status: entities.StageStatusPendente, UpdatedAt: t0},
		{ID: "p-1", OrderID: "o-1", StageID: "b", Status: entities.StageStatusPendente, UpdatedAt: t0},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), rows))
	require.Len(t, ddb.batchInputs, 2)
	assert.Len(t, ddb.batchInputs[1].RequestItems["acompanhamento_os"], 1)
}

func TestStageProgressRepository_ListByOrderID_UsesIndex(t *testing.T) {
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
		marshal(t, toStageProgressItem(entities.OrderStageProgress{ID: "p-1", OrderID: "o-1", StageID: "corte", Status: entities.StageStatusConcluido, UpdatedAt: t0})),
	}}}}
	repo := NewStageProgressDynamoRepository(ddb, "acompanhamento_os")

	got, err := repo.ListByOrderID(context.Background(), "o-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stageProgressOrderIDIndex, aws.ToString(ddb.queryInputs[0].IndexName))
	assert.Equal(t, s("o-1"), ddb.queryInputs[0].ExpressionAttributeValues[":oid"])
}

func TestServiceOrderItem_RoundTrip(t *testing.T) {
	due := t0.AddDate(0, 0, 7)
	o := entities.ServiceOrder{
		ID: "o-1", OrderNumber: "1042", ClientID: "c-1",
		Items: []entities.OrderItem{
			{Description: "Camisa polo", Size: "M", Color: "Azul", Quantity: 10, UnitPrice: 35.5},
		},
		Status:           entities.OrderStatusEmAndamento,
		Total:            355,
		CreatedAt:        t0,
		ExpectedDelivery: &due,
		UpdatedAt:        t0,
	}
	got, err := fromServiceOrderItem(toServiceOrderItem(o))
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestServiceOrderRepository_List_StatusAndClientFilter(t *testing.T) {
	older := entities.ServiceOrder{ID: "old", Status: entities.OrderStatusPendente, CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0}
	newer := entities.ServiceOrder{ID: "new", Status: entities.OrderStatusPendente, CreatedAt: t0, UpdatedAt: t0}
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{
		marshal(t, toServiceOrderItem(older)),
		marshal(t, toServiceOrderItem(newer)),
	}}}}
	repo := NewServiceOrderDynamoRepository(ddb, "ordens_servico")

	got, err := repo.List(context.Background(), interfaces.OrderFilter{
		Statuses: []entities.OrderStatus{entities.OrderStatusPendente, entities.OrderStatusEmAndamento},
		ClientID: "c-1",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)

	in := ddb.scanInputs[0]
	assert.Equal(t, "#status IN (:s0, :s1) AND #client_id = :cid", aws.ToString(in.FilterExpression))
	assert.Equal(t, s("em_andamento"), in.ExpressionAttributeValues[":s1"])
}

func TestServiceOrderRepository_List_MalformedRowFails(t *testing.T) {
	raw := marshal(t, toServiceOrderItem(entities.ServiceOrder{ID: "o", Status: entities.OrderStatusPendente, CreatedAt: t0, UpdatedAt: t0}))
	raw["created_at"] = s("not a date")
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{raw}}}}

	_, err := NewServiceOrderDynamoRepository(ddb, "ordens_servico").List(context.Background(), interfaces.OrderFilter{})
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestServiceOrderRepository_MaxOrderNumber(t *testing.T) {
	page := func(values ...string) []*dynamodb.ScanOutput {
		items := make([]map[string]types.AttributeValue, 0, len(values))
		for _, v := range values {
			items = append(items, map[string]types.AttributeValue{"order_number": s(v)})
		}
		return []*dynamodb.ScanOutput{{Items: items}}
	}

	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"empty table", nil, ""},
		{"numeric max not lexical", []string{"999", "1042", "1000"}, "1042"},
		{"ignores junk when numbers exist", []string{"1001", "OS-77"}, "1001"},
		{"only junk returns raw", []string{"abc", "OS-77"}, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ddb := &fakeDynamo{scanPages: page(tt.values...)}
			got, err := NewServiceOrderDynamoRepository(ddb, "ordens_servico").MaxOrderNumber(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "#n", aws.ToString(ddb.scanInputs[0].ProjectionExpression))
		})
	}
}

func TestServiceOrderRepository_MarkCompleted(t *testing.T) {
	done := entities.ServiceOrder{ID: "o-1", Status: entities.OrderStatusConcluido, CreatedAt: t0, CompletedAt: &t0, UpdatedAt: t0}
	ddb := &fakeDynamo{updateAttr: marshal(t, toServiceOrderItem(done))}
	repo := NewServiceOrderDynamoRepository(ddb, "ordens_servico")

	got, err := repo.MarkCompleted(context.Background(), "o-1", t0)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusConcluido, got.Status)
	require.NotNil(t, got.CompletedAt)

	in := ddb.updateInputs[0]
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
	assert.Equal(t, s(formatTime(t0)), in.ExpressionAttributeValues[":at"])
}

func TestCatalogRepository_ListByCategory(t *testing.T) {
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
		marshal(t, toCatalogItemRow(entities.CatalogItem{ID: "2", Category: entities.CatalogSize, Value: "P", CreatedAt: t0})),
		marshal(t, toCatalogItemRow(entities.CatalogItem{ID: "1", Category: entities.CatalogSize, Value: "G", CreatedAt: t0})),
	}}}}
	got, err := NewCatalogDynamoRepository(ddb, "configuracoes").ListByCategory(context.Background(), entities.CatalogSize)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "G", got[0].Value)
	assert.Equal(t, catalogCategoryIndex, aws.ToString(ddb.queryInputs[0].IndexName))
}

func TestCatalogRow_UnknownCategoryIsMalformed(t *testing.T) {
	row := toCatalogItemRow(entities.CatalogItem{ID: "1", Category: "cor", Value: "x", CreatedAt: t0})
	_, err := fromCatalogItemRow(row)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestColorItem_UppercasesHex(t *testing.T) {
	it := toColorItem(entities.Color{ID: "c", Name: "Azul", Hex: "#1a2b3c", Active: true, CreatedAt: t0})
	assert.Equal(t, "#1A2B3C", it.Hex)
}

func TestQuoteRepository_UpdatePrice(t *testing.T) {
	q := entities.Quote{ID: "q-1", ClientID: "c-1", Price: 120.5, Status: entities.QuoteStatusPendente, CreatedAt: t0, UpdatedAt: t0}
	ddb := &fakeDynamo{updateAttr: marshal(t, toQuoteItem(q))}

	got, err := NewQuoteDynamoRepository(ddb, "orcamentos").UpdatePrice(context.Background(), "q-1", 120.5)
	require.NoError(t, err)
	assert.Equal(t, 120.5, got.Price)

	in := ddb.updateInputs[0]
	assert.Equal(t, "SET #price = :price, #updated_at = :updated_at", aws.ToString(in.UpdateExpression))
	assert.Equal(t, s("120.5"), in.ExpressionAttributeValues[":price"])
	assert.Equal(t, "id", in.ExpressionAttributeNames["#id"])
}

func TestQuoteRepository_MarkConverted_Missing(t *testing.T) {
	ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	got, err := NewQuoteDynamoRepository(ddb, "orcamentos").MarkConverted(context.Background(), "q-x", "o-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestQuoteItem_MalformedPrice(t *testing.T) {
	it := toQuoteItem(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado, CreatedAt: t0, UpdatedAt: t0})
	it.Price = "R$ 10"
	_, err := fromQuoteItem(it)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestQuoteRequestItem_RoundTrip(t *testing.T) {
	r := entities.QuoteRequest{
		ID: "r-1", Name: "Ana", Email: "ana@example.com", Phone: "11987654321",
		Amount: 250, OrderNumber: "1043", AttachmentURL: "http://localhost/anexos/orcamentos/x.png", CreatedAt: t0,
	}
	got, err := fromQuoteRequestItem(toQuoteRequestItem(r))
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestPaymentRepository_ListByQuoteID_NewestFirst(t *testing.T) {
	raw := json.RawMessage(`{"id":1,"status":"approved"}`)
	older := entities.Payment{ID: "p-1", QuoteID: "q-1", Date: t0.Add(-time.Minute), Status: entities.PaymentStatusNegado, MPPayloadRaw: raw}
	newer := entities.Payment{ID: "p-2", QuoteID: "q-1", Date: t0, Status: entities.PaymentStatusAprovado, MPPayloadRaw: raw}
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
		marshal(t, toPaymentItem(older)),
		marshal(t, toPaymentItem(newer)),
	}}}}

	got, err := NewPaymentDynamoRepository(ddb, "payments").ListByQuoteID(context.Background(), "q-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p-2", got[0].ID)
	assert.JSONEq(t, string(raw), string(got[0].MPPayloadRaw))
	assert.Equal(t, paymentsQuoteIDIndex, aws.ToString(ddb.queryInputs[0].IndexName))
}

func TestPaymentItem_UnknownStatusIsMalformed(t *testing.T) {
	it := toPaymentItem(entities.Payment{ID: "p", QuoteID: "q", Date: t0, Status: "approved"})
	_, err := fromPaymentItem(it)
	assert.ErrorIs(t, err, ErrMalformedRow)
}
