package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	batchWriteLimit   = 25
	batchWriteRetries = 5
)

var ErrUnprocessedLineItems = errors.New("line items left unprocessed after retries")

type skuItem struct {
	Original string `dynamodbav:"original"`
	Final    string `dynamodbav:"final"`
}

type invoiceLineItemItem struct {
	ID            string   `dynamodbav:"id"`
	OrderID       string   `dynamodbav:"order_id"`
	InvoiceID     string   `dynamodbav:"invoice_id"`
	Description   string   `dynamodbav:"description"`
	Quantity      string   `dynamodbav:"quantity"`
	UnitPrice     string   `dynamodbav:"unit_price"`
	SupplierName  string   `dynamodbav:"supplier_name"`
	Status        string   `dynamodbav:"status"`
	IsNew         bool     `dynamodbav:"is_new"`
	LineNumber    int      `dynamodbav:"line_number"`
	Division      string   `dynamodbav:"division,omitempty"`
	Line          string   `dynamodbav:"line,omitempty"`
	Class         string   `dynamodbav:"class,omitempty"`
	Subclass      string   `dynamodbav:"subclass,omitempty"`
	MarginPercent string   `dynamodbav:"margin_percent"`
	Price         string   `dynamodbav:"price"`
	CatalogSKU    string   `dynamodbav:"catalog_sku,omitempty"`
	SKU           *skuItem `dynamodbav:"sku,omitempty"`
	Sequence      int      `dynamodbav:"sequence"`
	ClassifiedAt  string   `dynamodbav:"classified_at,omitempty"`
	ProcessedAt   string   `dynamodbav:"processed_at,omitempty"`
}

// InvoiceLineItemDynamoRepository persists invoice line items.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: id (string)
type InvoiceLineItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	logger    *zap.Logger
	backoff   time.Duration
}

var _ interfaces.IInvoiceLineItemRepository = (*InvoiceLineItemDynamoRepository)(nil)

func NewInvoiceLineItemDynamoRepository(ddb DynamoAPI, tableName string, logger *zap.Logger) *InvoiceLineItemDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceLineItemDynamoRepository{ddb: ddb, tableName: tableName, logger: logger, backoff: 50 * time.Millisecond}
}

func (r *InvoiceLineItemDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.InvoiceLineItem, error) {
	raw, err := queryOrderPartition(ctx, r.ddb, r.tableName, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.InvoiceLineItem, 0, len(raw))
	for _, av := range raw {
		var it invoiceLineItemItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInvoiceLineItemItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

// SaveAll upserts items in batches of 25, retrying whatever DynamoDB reports as unprocessed.
func (r *InvoiceLineItemDynamoRepository) SaveAll(ctx context.Context, items []entities.InvoiceLineItem) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(items) {
			end = len(items)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, li := range items[start:end] {
			av, err := attributevalue.MarshalMap(toInvoiceLineItemItem(li))
			if err != nil {
				return err
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		if err := r.writeBatch(ctx, requests); err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceLineItemDynamoRepository) writeBatch(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: requests}
	for attempt := 0; attempt <= batchWriteRetries; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
		r.logger.Warn("[invoice][repository] retrying unprocessed line items",
			zap.Int("attempt", attempt+1),
			zap.Int("unprocessed", len(pending[r.tableName])),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff * time.Duration(attempt+1)):
		}
	}
	return ErrUnprocessedLineItems
}

func toInvoiceLineItemItem(li entities.InvoiceLineItem) invoiceLineItemItem {
	it := invoiceLineItemItem{
		ID:            li.ID,
		OrderID:       li.OrderID,
		InvoiceID:     li.InvoiceID,
		Description:   li.Description,
		Quantity:      decimalString(li.Quantity),
		UnitPrice:     decimalString(li.UnitPrice),
		SupplierName:  li.SupplierName,
		Status:        string(li.Status),
		IsNew:         li.IsNew,
		LineNumber:    li.LineNumber,
		Division:      li.Division,
		Line:          li.Line,
		Class:         li.Class,
		Subclass:      li.Subclass,
		MarginPercent: decimalString(li.MarginPercent),
		Price:         decimalString(li.Price),
		CatalogSKU:    li.CatalogSKU,
		Sequence:      li.Sequence,
		ClassifiedAt:  formatTimePtr(li.ClassifiedAt),
		ProcessedAt:   formatTimePtr(li.ProcessedAt),
	}
	if li.SKU != nil {
		it.SKU = &skuItem{Original: li.SKU.Original, Final: li.SKU.Final}
	}
	return it
}

func fromInvoiceLineItemItem(it invoiceLineItemItem) entities.InvoiceLineItem {
	li := entities.InvoiceLineItem{
		ID:            it.ID,
		OrderID:       it.OrderID,
		InvoiceID:     it.InvoiceID,
		Description:   it.Description,
		Quantity:      parseDecimal(it.Quantity),
		UnitPrice:     parseDecimal(it.UnitPrice),
		SupplierName:  it.SupplierName,
		Status:        entities.ClassificationStatus(it.Status),
		IsNew:         it.IsNew,
		LineNumber:    it.LineNumber,
		Division:      it.Division,
		Line:          it.Line,
		Class:         it.Class,
		Subclass:      it.Subclass,
		MarginPercent: parseDecimal(it.MarginPercent),
		Price:         parseDecimal(it.Price),
		CatalogSKU:    it.CatalogSKU,
		Sequence:      it.Sequence,
		ClassifiedAt:  parseTimePtr(it.ClassifiedAt),
		ProcessedAt:   parseTimePtr(it.ProcessedAt),
	}
	if it.SKU != nil {
		li.SKU = &entities.SKUPair{Original: it.SKU.Original, Final: it.SKU.Final}
	}
	return li
}
