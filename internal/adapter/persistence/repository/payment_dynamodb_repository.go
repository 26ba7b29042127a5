package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsQuoteIDIndex = "quote_id-index"

type paymentItem struct {
	ID           string                 `dynamodbav:"id"`
	QuoteID      string                 `dynamodbav:"quote_id"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

// ListByQuoteID returns the quote payments newest first.
func (r *PaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}
	payments, err := decodeAll(raws, fromPaymentItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	status := entities.PaymentStatus(it.Status)
	if !status.Valid() {
		return entities.Payment{}, malformed("status", entities.ErrInvalidStatus)
	}
	date, err := parseTime("date", it.Date)
	if err != nil {
		return entities.Payment{}, err
	}
	return entities.Payment{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		Date:         date,
		Status:       status,
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}, nil
}
