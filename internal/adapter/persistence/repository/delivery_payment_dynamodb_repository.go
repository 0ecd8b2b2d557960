package repository

import (
	"context"
	"sort"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type deliveryPaymentItem struct {
	ID           string         `dynamodbav:"id"`
	OrderID      string         `dynamodbav:"order_id"`
	Amount       string         `dynamodbav:"amount"`
	Date         string         `dynamodbav:"date"`
	Status       string         `dynamodbav:"status"`
	MPPayload    map[string]any `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string         `dynamodbav:"mp_payload_raw,omitempty"`
}

// DeliveryPaymentDynamoRepository persists DeliveryPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: id (string)
type DeliveryPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDeliveryPaymentRepository = (*DeliveryPaymentDynamoRepository)(nil)

func NewDeliveryPaymentDynamoRepository(ddb DynamoAPI, tableName string) *DeliveryPaymentDynamoRepository {
	return &DeliveryPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DeliveryPaymentDynamoRepository) Create(ctx context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toDeliveryPaymentItem(p)); err != nil {
		return entities.DeliveryPayment{}, err
	}
	return p, nil
}

// ListByOrderID returns the payments of an order, oldest first.
func (r *DeliveryPaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.DeliveryPayment, error) {
	raw, err := queryOrderPartition(ctx, r.ddb, r.tableName, orderID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.DeliveryPayment, 0, len(raw))
	for _, av := range raw {
		var it deliveryPaymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDeliveryPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toDeliveryPaymentItem(p entities.DeliveryPayment) deliveryPaymentItem {
	return deliveryPaymentItem{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       decimalString(p.Amount),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromDeliveryPaymentItem(it deliveryPaymentItem) entities.DeliveryPayment {
	p := entities.DeliveryPayment{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Amount:    parseDecimal(it.Amount),
		Date:      parseTime(it.Date),
		Status:    entities.PaymentStatus(it.Status),
		MPPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
