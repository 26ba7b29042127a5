package repository

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type addressItem struct {
	Street     string `dynamodbav:"street,omitempty"`
	Number     string `dynamodbav:"number,omitempty"`
	Complement string `dynamodbav:"complement,omitempty"`
	District   string `dynamodbav:"district,omitempty"`
	City       string `dynamodbav:"city,omitempty"`
	State      string `dynamodbav:"state,omitempty"`
	ZipCode    string `dynamodbav:"zip_code,omitempty"`
}

type clientItem struct {
	ID          string      `dynamodbav:"id"`
	Kind        string      `dynamodbav:"kind"`
	Name        string      `dynamodbav:"name"`
	NameSearch  string      `dynamodbav:"name_search"`
	CompanyName string      `dynamodbav:"company_name,omitempty"`
	Email       string      `dynamodbav:"email,omitempty"`
	Phone       string      `dynamodbav:"phone,omitempty"`
	CPF         string      `dynamodbav:"cpf,omitempty"`
	CNPJ        string      `dynamodbav:"cnpj,omitempty"`
	Address     addressItem `dynamodbav:"address"`
	Notes       string      `dynamodbav:"notes,omitempty"`
	Active      bool        `dynamodbav:"active"`
	CreatedAt   string      `dynamodbav:"created_at"`
	UpdatedAt   string      `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// name_search holds the lowercased name so List can filter with contains().
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toClientItem(c))
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	ok, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it)
}

func (r *ClientDynamoRepository) List(ctx context.Context, filter interfaces.ClientFilter) ([]entities.Client, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	if filter.OnlyActive {
		conds = append(conds, "#active = :active")
		names["#active"] = "active"
		values[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}
	if name := strings.ToLower(strings.TrimSpace(filter.Name)); name != "" {
		conds = append(conds, "contains(#ns, :name)")
		names["#ns"] = "name_search"
		values[":name"] = &types.AttributeValueMemberS{Value: name}
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	raws, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	clients, err := decodeAll(raws, fromClientItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})
	return clients, nil
}

// CountCreatedBetween counts clients with from <= created_at < to.
func (r *ClientDynamoRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		Select:           types.SelectCount,
		FilterExpression: aws.String("#ca >= :from AND #ca < :to"),
		ExpressionAttributeNames: map[string]string{
			"#ca": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	}

	total := 0
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:          c.ID,
		Kind:        string(c.Kind),
		Name:        c.Name,
		NameSearch:  strings.ToLower(c.Name),
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		CPF:         c.CPF,
		CNPJ:        c.CNPJ,
		Address: addressItem{
			Street:     c.Address.Street,
			Number:     c.Address.Number,
			Complement: c.Address.Complement,
			District:   c.Address.District,
			City:       c.Address.City,
			State:      c.Address.State,
			ZipCode:    c.Address.ZipCode,
		},
		Notes:     c.Notes,
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) (entities.Client, error) {
	kind := entities.ClientKind(it.Kind)
	if kind != entities.ClientKindPF && kind != entities.ClientKindPJ {
		return entities.Client{}, malformed("kind", entities.ErrInvalidClientKind)
	}
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Client{}, err
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Client{}, err
	}
	return entities.Client{
		ID:          it.ID,
		Kind:        kind,
		Name:        it.Name,
		CompanyName: it.CompanyName,
		Email:       it.Email,
		Phone:       it.Phone,
		CPF:         it.CPF,
		CNPJ:        it.CNPJ,
		Address: entities.Address{
			Street:     it.Address.Street,
			Number:     it.Address.Number,
			Complement: it.Address.Complement,
			District:   it.Address.District,
			City:       it.Address.City,
			State:      it.Address.State,
			ZipCode:    it.Address.ZipCode,
		},
		Notes:     it.Notes,
		Active:    it.Active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
