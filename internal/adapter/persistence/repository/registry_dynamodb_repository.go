package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type catalogItem struct {
	DescriptionKey string `dynamodbav:"description_key"`
	Description    string `dynamodbav:"description"`
	SKU            string `dynamodbav:"sku"`
	Division       string `dynamodbav:"division"`
	Line           string `dynamodbav:"line"`
	Class          string `dynamodbav:"class"`
	Subclass       string `dynamodbav:"subclass"`
	MarginPercent  string `dynamodbav:"margin_percent"`
}

// CatalogDynamoRepository looks up catalog products.
//
// Table requirements:
//   - PK: description_key (string), the normalized description
type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) FindByDescription(ctx context.Context, description string) (entities.CatalogEntry, error) {
	key := CatalogKey(description)
	if key == "" {
		return entities.CatalogEntry{}, nil
	}
	var it catalogItem
	found, err := getByKey(ctx, r.ddb, r.tableName, stringKey("description_key", key), &it)
	if err != nil || !found {
		return entities.CatalogEntry{}, err
	}
	return entities.CatalogEntry{
		Description:   it.Description,
		SKU:           it.SKU,
		Division:      it.Division,
		Line:          it.Line,
		Class:         it.Class,
		Subclass:      it.Subclass,
		MarginPercent: parseDecimal(it.MarginPercent),
	}, nil
}

// CatalogKey normalizes a product description: lower case, trimmed, single spaces.
func CatalogKey(description string) string {
	return strings.ToLower(strings.Join(strings.Fields(description), " "))
}

type supplierItem struct {
	RFC    string `dynamodbav:"rfc"`
	Name   string `dynamodbav:"name"`
	Active bool   `dynamodbav:"active"`
}

// SupplierDynamoRepository reads the supplier registry.
//
// Table requirements:
//   - PK: rfc (string, upper case)
type SupplierDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb DynamoAPI, tableName string) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SupplierDynamoRepository) IsActive(ctx context.Context, rfc string) (bool, error) {
	rfc = strings.ToUpper(strings.TrimSpace(rfc))
	if rfc == "" {
		return false, nil
	}
	var it supplierItem
	found, err := getByKey(ctx, r.ddb, r.tableName, stringKey("rfc", rfc), &it)
	if err != nil || !found {
		return false, err
	}
	return it.Active, nil
}

// SequenceDynamoRepository hands out counters with an atomic ADD.
//
// Table requirements:
//   - PK: name (string)
type SequenceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb DynamoAPI, tableName string) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey("name", name),
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %q: missing counter value", name)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
