package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	stageProgressOrderIDIndex = "order_id-index"
	batchWriteLimit           = 25
	batchWriteMaxAttempts     = 5
)

var ErrUnprocessedItems = errors.New("batch write left unprocessed items")

type stageItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Order       int    `dynamodbav:"order"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// StageDynamoRepository persists ProductionStage entities (etapas de produção).
//
// Table requirements:
//   - PK: id (string)
type StageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductionStageRepository = (*StageDynamoRepository)(nil)

func NewStageDynamoRepository(ddb DynamoAPI, tableName string) *StageDynamoRepository {
	return &StageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StageDynamoRepository) Create(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toStageItem(s)); err != nil {
		return entities.ProductionStage{}, err
	}
	return s, nil
}

func (r *StageDynamoRepository) Update(ctx context.Context, s entities.ProductionStage) (entities.ProductionStage, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toStageItem(s))
	if err != nil || !ok {
		return entities.ProductionStage{}, err
	}
	return s, nil
}

func (r *StageDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProductionStage, error) {
	var it stageItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.ProductionStage{}, err
	}
	return fromStageItem(it)
}

// List returns stages sorted by their production order.
func (r *StageDynamoRepository) List(ctx context.Context, onlyActive bool) ([]entities.ProductionStage, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if onlyActive {
		in.FilterExpression = aws.String("#active = :active")
		in.ExpressionAttributeNames = map[string]string{"#active": "active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	raws, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	stages, err := decodeAll(raws, fromStageItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].Order < stages[j].Order })
	return stages, nil
}

func (r *StageDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toStageItem(s entities.ProductionStage) stageItem {
	return stageItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Order:       s.Order,
		Active:      s.Active,
		CreatedAt:   formatTime(s.CreatedAt),
	}
}

func fromStageItem(it stageItem) (entities.ProductionStage, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.ProductionStage{}, err
	}
	return entities.ProductionStage{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Order:       it.Order,
		Active:      it.Active,
		CreatedAt:   createdAt,
	}, nil
}

type stageProgressItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	StageID     string `dynamodbav:"stage_id"`
	Status      string `dynamodbav:"status"`
	StartedAt   string `dynamodbav:"started_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	Note        string `dynamodbav:"note,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// StageProgressDynamoRepository persists OrderStageProgress rows (acompanhamento_os).
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type StageProgressDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStageProgressRepository = (*StageProgressDynamoRepository)(nil)

func NewStageProgressDynamoRepository(ddb DynamoAPI, tableName string) *StageProgressDynamoRepository {
	return &StageProgressDynamoRepository{ddb: ddb, tableName: tableName}
}

// CreateBatch writes rows in chunks of 25, retrying unprocessed items a few
// times before giving up.
func (r *StageProgressDynamoRepository) CreateBatch(ctx context.Context, rows []entities.OrderStageProgress) error {
	for start := 0; start < len(rows); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(rows))

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, row := range rows[start:end] {
			av, err := attributevalue.MarshalMap(toStageProgressItem(row))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		if err := r.batchWrite(ctx, reqs); err != nil {
			return err
		}
	}
	return nil
}

func (r *StageProgressDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 1; attempt <= batchWriteMaxAttempts; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
		log.Printf("[tracking][repository] batch write retry attempt=%d unprocessed=%d", attempt, len(pending[r.tableName]))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt*50) * time.Millisecond):
		}
	}
	return fmt.Errorf("%w: %d", ErrUnprocessedItems, len(pending[r.tableName]))
}

func (r *StageProgressDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderStageProgress, error) {
	var it stageProgressItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.OrderStageProgress{}, err
	}
	return fromStageProgressItem(it)
}

func (r *StageProgressDynamoRepository) Update(ctx context.Context, p entities.OrderStageProgress) (entities.OrderStageProgress, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toStageProgressItem(p))
	if err != nil || !ok {
		return entities.OrderStageProgress{}, err
	}
	return p, nil
}

func (r *StageProgressDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderStageProgress, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stageProgressOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, fromStageProgressItem)
}

func toStageProgressItem(p entities.OrderStageProgress) stageProgressItem {
	return stageProgressItem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		StageID:     p.StageID,
		Status:      string(p.Status),
		StartedAt:   formatOptTime(p.StartedAt),
		CompletedAt: formatOptTime(p.CompletedAt),
		Note:        p.Note,
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromStageProgressItem(it stageProgressItem) (entities.OrderStageProgress, error) {
	status, err := entities.ParseStageStatus(it.Status)
	if err != nil {
		return entities.OrderStageProgress{}, malformed("status", err)
	}
	startedAt, err := parseOptTime("started_at", it.StartedAt)
	if err != nil {
		return entities.OrderStageProgress{}, err
	}
	completedAt, err := parseOptTime("completed_at", it.CompletedAt)
	if err != nil {
		return entities.OrderStageProgress{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.OrderStageProgress{}, err
	}
	return entities.OrderStageProgress{
		ID:          it.ID,
		OrderID:     it.OrderID,
		StageID:     it.StageID,
		Status:      status,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
		Note:        it.Note,
		UpdatedAt:   updatedAt,
	}, nil
}
