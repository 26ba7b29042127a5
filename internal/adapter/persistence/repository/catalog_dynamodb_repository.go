package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const catalogCategoryIndex = "category-index"

type catalogItemRow struct {
	ID          string `dynamodbav:"id"`
	Category    string `dynamodbav:"category"`
	Value       string `dynamodbav:"value"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CatalogDynamoRepository persists CatalogItem rows (configurações).
//
// Table requirements:
//   - PK: id (string)
//   - GSI: category-index (PK: category)
type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCatalogItemRow(item)); err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

// ListByCategory returns the category values sorted alphabetically.
func (r *CatalogDynamoRepository) ListByCategory(ctx context.Context, category entities.CatalogCategory) ([]entities.CatalogItem, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(catalogCategoryIndex),
		KeyConditionExpression: aws.String("category = :cat"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cat": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := decodeAll(raws, fromCatalogItemRow)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Value) < strings.ToLower(items[j].Value)
	})
	return items, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toCatalogItemRow(item entities.CatalogItem) catalogItemRow {
	return catalogItemRow{
		ID:          item.ID,
		Category:    string(item.Category),
		Value:       item.Value,
		Description: item.Description,
		CreatedAt:   formatTime(item.CreatedAt),
	}
}

func fromCatalogItemRow(row catalogItemRow) (entities.CatalogItem, error) {
	category := entities.CatalogCategory(row.Category)
	if !category.Valid() {
		return entities.CatalogItem{}, malformed("category", errors.New(row.Category))
	}
	createdAt, err := parseTime("created_at", row.CreatedAt)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem{
		ID:          row.ID,
		Category:    category,
		Value:       row.Value,
		Description: row.Description,
		CreatedAt:   createdAt,
	}, nil
}

type colorItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Hex       string `dynamodbav:"hex"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ColorDynamoRepository persists Color entities (cores).
//
// Table requirements:
//   - PK: id (string)
type ColorDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IColorRepository = (*ColorDynamoRepository)(nil)

func NewColorDynamoRepository(ddb DynamoAPI, tableName string) *ColorDynamoRepository {
	return &ColorDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ColorDynamoRepository) Create(ctx context.Context, c entities.Color) (entities.Color, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toColorItem(c)); err != nil {
		return entities.Color{}, err
	}
	return c, nil
}

func (r *ColorDynamoRepository) Update(ctx context.Context, c entities.Color) (entities.Color, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toColorItem(c))
	if err != nil || !ok {
		return entities.Color{}, err
	}
	return c, nil
}

func (r *ColorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Color, error) {
	var it colorItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Color{}, err
	}
	return fromColorItem(it)
}

func (r *ColorDynamoRepository) List(ctx context.Context) ([]entities.Color, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	colors, err := decodeAll(raws, fromColorItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(colors, func(i, j int) bool {
		return strings.ToLower(colors[i].Name) < strings.ToLower(colors[j].Name)
	})
	return colors, nil
}

func (r *ColorDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toColorItem(c entities.Color) colorItem {
	return colorItem{
		ID:        c.ID,
		Name:      c.Name,
		Hex:       strings.ToUpper(c.Hex),
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func fromColorItem(it colorItem) (entities.Color, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Color{}, err
	}
	return entities.Color{
		ID:        it.ID,
		Name:      it.Name,
		Hex:       it.Hex,
		Active:    it.Active,
		CreatedAt: createdAt,
	}, nil
}
