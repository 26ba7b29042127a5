package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID         string          `dynamodbav:"id"`
	ClientID   string          `dynamodbav:"client_id"`
	Items      []orderLineItem `dynamodbav:"items,omitempty"`
	Price      string          `dynamodbav:"price"`
	Status     string          `dynamodbav:"status"`
	Notes      string          `dynamodbav:"notes,omitempty"`
	ValidUntil string          `dynamodbav:"valid_until,omitempty"`
	OrderID    string          `dynamodbav:"order_id,omitempty"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities (orçamentos) in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// price is stored as a decimal string.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// List returns quotes newest first.
func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	quotes, err := decodeAll(raws, fromQuoteItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].CreatedAt.After(quotes[j].CreatedAt) })
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :status, #updated_at = :updated_at",
			map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			}
	})
}

func (r *QuoteDynamoRepository) UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #price = :price, #updated_at = :updated_at",
			map[string]types.AttributeValue{
				":price":      &types.AttributeValueMemberS{Value: floatToString(newPrice)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			map[string]string{
				"#price":      "price",
				"#updated_at": "updated_at",
			}
	})
}

// MarkConverted flags the quote as convertido and links the created order.
func (r *QuoteDynamoRepository) MarkConverted(ctx context.Context, id string, orderID string) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :status, #order_id = :order_id, #updated_at = :updated_at",
			map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusConvertido)},
				":order_id":   &types.AttributeValueMemberS{Value: orderID},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			map[string]string{
				"#status":     "status",
				"#order_id":   "order_id",
				"#updated_at": "updated_at",
			}
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (string, map[string]types.AttributeValue, map[string]string),
) (entities.Quote, error) {
	var it quoteItem
	ok, err := updateByID(ctx, r.ddb, r.tableName, id, build, &it)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:         q.ID,
		ClientID:   q.ClientID,
		Items:      toOrderLineItems(q.Items),
		Price:      floatToString(q.Price),
		Status:     string(q.Status),
		Notes:      q.Notes,
		ValidUntil: formatOptTime(q.ValidUntil),
		OrderID:    q.OrderID,
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	status := entities.QuoteStatus(it.Status)
	if !status.Valid() {
		return entities.Quote{}, malformed("status", entities.ErrInvalidStatus)
	}
	price, err := strconv.ParseFloat(it.Price, 64)
	if err != nil {
		return entities.Quote{}, malformed("price", err)
	}
	validUntil, err := parseOptTime("valid_until", it.ValidUntil)
	if err != nil {
		return entities.Quote{}, err
	}
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Quote{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Quote{}, err
	}
	return entities.Quote{
		ID:         it.ID,
		ClientID:   it.ClientID,
		Items:      fromOrderLineItems(it.Items),
		Price:      price,
		Status:     status,
		Notes:      it.Notes,
		ValidUntil: validUntil,
		OrderID:    it.OrderID,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

type quoteRequestItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`
	Message       string `dynamodbav:"message,omitempty"`
	Amount        string `dynamodbav:"amount"`
	OrderNumber   string `dynamodbav:"order_number"`
	AttachmentURL string `dynamodbav:"attachment_url,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest submissions
// (solicitacoes_orcamento).
//
// Table requirements:
//   - PK: id (string)
type QuoteRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb DynamoAPI, tableName string) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteRequestItem(q)); err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	reqs, err := decodeAll(raws, fromQuoteRequestItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].CreatedAt.After(reqs[j].CreatedAt) })
	return reqs, nil
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	return quoteRequestItem{
		ID:            q.ID,
		Name:          q.Name,
		Email:         q.Email,
		Phone:         q.Phone,
		Message:       q.Message,
		Amount:        floatToString(q.Amount),
		OrderNumber:   q.OrderNumber,
		AttachmentURL: q.AttachmentURL,
		CreatedAt:     formatTime(q.CreatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) (entities.QuoteRequest, error) {
	amount, err := strconv.ParseFloat(it.Amount, 64)
	if err != nil {
		return entities.QuoteRequest{}, malformed("amount", err)
	}
	if amount < 0 {
		return entities.QuoteRequest{}, malformed("amount", errors.New("negative"))
	}
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return entities.QuoteRequest{
		ID:            it.ID,
		Name:          it.Name,
		Email:         it.Email,
		Phone:         it.Phone,
		Message:       it.Message,
		Amount:        amount,
		OrderNumber:   it.OrderNumber,
		AttachmentURL: it.AttachmentURL,
		CreatedAt:     createdAt,
	}, nil
}
