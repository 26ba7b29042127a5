package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type orderLineItem struct {
	Description string  `dynamodbav:"description"`
	Product     string  `dynamodbav:"product,omitempty"`
	Fabric      string  `dynamodbav:"fabric,omitempty"`
	FabricType  string  `dynamodbav:"fabric_type,omitempty"`
	Size        string  `dynamodbav:"size,omitempty"`
	Color       string  `dynamodbav:"color,omitempty"`
	CollarType  string  `dynamodbav:"collar_type,omitempty"`
	SleeveType  string  `dynamodbav:"sleeve_type,omitempty"`
	HemType     string  `dynamodbav:"hem_type,omitempty"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
}

type serviceOrderItem struct {
	ID               string          `dynamodbav:"id"`
	OrderNumber      string          `dynamodbav:"order_number"`
	ClientID         string          `dynamodbav:"client_id"`
	QuoteID          string          `dynamodbav:"quote_id,omitempty"`
	Items            []orderLineItem `dynamodbav:"items,omitempty"`
	Status           string          `dynamodbav:"status"`
	Total            float64         `dynamodbav:"total"`
	Description      string          `dynamodbav:"description,omitempty"`
	Notes            string          `dynamodbav:"notes,omitempty"`
	CreatedAt        string          `dynamodbav:"created_at"`
	ExpectedDelivery string          `dynamodbav:"expected_delivery,omitempty"`
	DeliveredAt      string          `dynamodbav:"delivered_at,omitempty"`
	CompletedAt      string          `dynamodbav:"completed_at,omitempty"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities (ordens de serviço).
//
// Table requirements:
//   - PK: id (string)
type ServiceOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb DynamoAPI, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceOrderItem(o)); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toServiceOrderItem(o))
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

// MarkCompleted sets status=concluido and completed_at in a single UpdateItem.
func (r *ServiceOrderDynamoRepository) MarkCompleted(ctx context.Context, id string, at time.Time) (entities.ServiceOrder, error) {
	stamp := formatTime(at)
	var it serviceOrderItem
	ok, err := updateByID(ctx, r.ddb, r.tableName, id, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :status, #completed_at = :at, #updated_at = :at",
			map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusConcluido)},
				":at":     &types.AttributeValueMemberS{Value: stamp},
			},
			map[string]string{
				"#status":       "status",
				"#completed_at": "completed_at",
				"#updated_at":   "updated_at",
			}
	}, &it)
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

// List returns orders newest first.
func (r *ServiceOrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.ServiceOrder, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for i, s := range filter.Statuses {
			key := fmt.Sprintf(":s%d", i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		conds = append(conds, "#status IN ("+strings.Join(placeholders, ", ")+")")
		names["#status"] = "status"
	}
	if filter.ClientID != "" {
		conds = append(conds, "#client_id = :cid")
		names["#client_id"] = "client_id"
		values[":cid"] = &types.AttributeValueMemberS{Value: filter.ClientID}
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	return r.scanOrders(ctx, in)
}

// ListCreatedBetween returns orders with from <= created_at < to.
func (r *ServiceOrderDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.ServiceOrder, error) {
	return r.scanOrders(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#ca >= :from AND #ca < :to"),
		ExpressionAttributeNames: map[string]string{
			"#ca": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	})
}

// MaxOrderNumber returns the greatest stored order number. Numeric values are
// compared as integers; when no value is numeric the greatest raw string is
// returned so the caller can detect it as unparsable. An empty table yields "".
func (r *ServiceOrderDynamoRepository) MaxOrderNumber(ctx context.Context) (string, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#n"),
		ExpressionAttributeNames: map[string]string{"#n": "order_number"},
	})
	if err != nil {
		return "", err
	}

	var (
		maxNum *big.Int
		maxRaw string
	)
	for _, raw := range raws {
		av, ok := raw["order_number"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		v := strings.TrimSpace(av.Value)
		if v > maxRaw {
			maxRaw = v
		}
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			continue
		}
		if maxNum == nil || n.Cmp(maxNum) > 0 {
			maxNum = n
		}
	}
	if maxNum != nil {
		return maxNum.String(), nil
	}
	return maxRaw, nil
}

func (r *ServiceOrderDynamoRepository) scanOrders(ctx context.Context, in *dynamodb.ScanInput) ([]entities.ServiceOrder, error) {
	raws, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	orders, err := decodeAll(raws, fromServiceOrderItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func toOrderLineItems(items []entities.OrderItem) []orderLineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]orderLineItem, 0, len(items))
	for _, i := range items {
		out = append(out, orderLineItem(i))
	}
	return out
}

func fromOrderLineItems(items []orderLineItem) []entities.OrderItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.OrderItem, 0, len(items))
	for _, i := range items {
		out = append(out, entities.OrderItem(i))
	}
	return out
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		ClientID:         o.ClientID,
		QuoteID:          o.QuoteID,
		Items:            toOrderLineItems(o.Items),
		Status:           string(o.Status),
		Total:            o.Total,
		Description:      o.Description,
		Notes:            o.Notes,
		CreatedAt:        formatTime(o.CreatedAt),
		ExpectedDelivery: formatOptTime(o.ExpectedDelivery),
		DeliveredAt:      formatOptTime(o.DeliveredAt),
		CompletedAt:      formatOptTime(o.CompletedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) (entities.ServiceOrder, error) {
	status, err := entities.ParseOrderStatus(it.Status)
	if err != nil {
		return entities.ServiceOrder{}, malformed("status", err)
	}
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	expected, err := parseOptTime("expected_delivery", it.ExpectedDelivery)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	delivered, err := parseOptTime("delivered_at", it.DeliveredAt)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	completed, err := parseOptTime("completed_at", it.CompletedAt)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return entities.ServiceOrder{
		ID:               it.ID,
		OrderNumber:      it.OrderNumber,
		ClientID:         it.ClientID,
		QuoteID:          it.QuoteID,
		Items:            fromOrderLineItems(it.Items),
		Status:           status,
		Total:            it.Total,
		Description:      it.Description,
		Notes:            it.Notes,
		CreatedAt:        createdAt,
		ExpectedDelivery: expected,
		DeliveredAt:      delivered,
		CompletedAt:      completed,
		UpdatedAt:        updatedAt,
	}, nil
}
