package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errNotStubbed = errors.New("not stubbed")

// fakeDynamo records inputs and replays canned outputs. Scan and Query pages
// are served in order, chaining them through LastEvaluatedKey.
type fakeDynamo struct {
	putInputs    []*dynamodb.PutItemInput
	updateInputs []*dynamodb.UpdateItemInput
	scanInputs   []*dynamodb.ScanInput
	queryInputs  []*dynamodb.QueryInput
	batchInputs  []*dynamodb.BatchWriteItemInput
	deletedKeys  []string

	putErr     error
	updateErr  error
	scanErr    error
	getItem    map[string]types.AttributeValue
	updateAttr map[string]types.AttributeValue
	scanPages  []*dynamodb.ScanOutput
	queryPages []*dynamodb.QueryOutput
	batchOut   []*dynamodb.BatchWriteItemOutput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateInputs = append(f.updateInputs, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateAttr}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if id, ok := in.Key["id"].(*types.AttributeValueMemberS); ok {
		f.deletedKeys = append(f.deletedKeys, id.Value)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batchInputs = append(f.batchInputs, in)
	if len(f.batchOut) == 0 {
		return &dynamodb.BatchWriteItemOutput{}, nil
	}
	out := f.batchOut[0]
	f.batchOut = f.batchOut[1:]
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInputs = append(f.queryInputs, in)
	idx := pageIndex(in.ExclusiveStartKey)
	if idx >= len(f.queryPages) {
		return &dynamodb.QueryOutput{}, nil
	}
	out := *f.queryPages[idx]
	if idx+1 < len(f.queryPages) {
		out.LastEvaluatedKey = pageKey(idx + 1)
	}
	return &out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanInputs = append(f.scanInputs, in)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	idx := pageIndex(in.ExclusiveStartKey)
	if idx >= len(f.scanPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	out := *f.scanPages[idx]
	if idx+1 < len(f.scanPages) {
		out.LastEvaluatedKey = pageKey(idx + 1)
	}
	return &out, nil
}

func pageKey(i int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"page": &types.AttributeValueMemberN{Value: strconv.Itoa(i)}}
}

func pageIndex(key map[string]types.AttributeValue) int {
	if key == nil {
		return 0
	}
	n, ok := key["page"].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	i, _ := strconv.Atoi(n.Value)
	return i
}

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }
