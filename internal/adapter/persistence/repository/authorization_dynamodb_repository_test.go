package repository

import (
	"context"
	"testing"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLostSaleDynamoRepository_Append(t *testing.T) {
	var captured *dynamodb.PutItemInput
	ddb := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		captured = in
		return &dynamodb.PutItemOutput{}, nil
	}}

	err := NewLostSaleDynamoRepository(ddb, "lost_sales").Append(context.Background(), entities.LostSaleRecord{
		ID: "ls-1", OrderID: "os-1", ItemKey: "service:B", Severity: entities.SeverityRecommended,
		EstimatedCost: decimal.RequireFromString("600.00"), Round: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(captured.ConditionExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "600"}, captured.Item["estimated_cost"])
}

func TestLostSaleDynamoRepository_ListByOrderID_OrdersByRound(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var raw []map[string]types.AttributeValue
	for _, r := range []entities.LostSaleRecord{
		{ID: "ls-3", OrderID: "os-1", Round: 2, CreatedAt: base},
		{ID: "ls-2", OrderID: "os-1", Round: 1, CreatedAt: base.Add(time.Second)},
		{ID: "ls-1", OrderID: "os-1", Round: 1, CreatedAt: base},
	} {
		av, err := attributevalue.MarshalMap(toLostSaleItem(r))
		require.NoError(t, err)
		raw = append(raw, av)
	}
	ddb := &fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{Items: raw}, nil
	}}

	got, err := NewLostSaleDynamoRepository(ddb, "lost_sales").ListByOrderID(context.Background(), "os-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ls-1", "ls-2", "ls-3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestDeliveryPaymentItemMapping_KeepsRawPayload(t *testing.T) {
	p := entities.DeliveryPayment{
		ID:           "pay-1",
		OrderID:      "os-1",
		Amount:       decimal.RequireFromString("77.20"),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: []byte(`{"id":"1"}`),
	}

	got := fromDeliveryPaymentItem(toDeliveryPaymentItem(p))
	assert.Equal(t, `{"id":"1"}`, string(got.MPPayloadRaw))
	assert.True(t, got.Amount.Equal(p.Amount))
	assert.True(t, got.Date.IsZero())
}

func TestDeliveryPaymentDynamoRepository_ListByOrderID_ConsistentRead(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var raw []map[string]types.AttributeValue
	for _, p := range []entities.DeliveryPayment{
		{ID: "pay-2", OrderID: "os-1", Status: entities.PaymentStatusApproved, Date: base.Add(time.Minute)},
		{ID: "pay-1", OrderID: "os-1", Status: entities.PaymentStatusDenied, Date: base},
	} {
		av, err := attributevalue.MarshalMap(toDeliveryPaymentItem(p))
		require.NoError(t, err)
		raw = append(raw, av)
	}
	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		assert.Nil(t, in.IndexName)
		assert.True(t, aws.ToBool(in.ConsistentRead))
		return &dynamodb.QueryOutput{Items: raw}, nil
	}}

	got, err := NewDeliveryPaymentDynamoRepository(ddb, "delivery_payments").ListByOrderID(context.Background(), "os-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"pay-1", "pay-2"}, []string{got[0].ID, got[1].ID})
}
