package repository

import (
	"context"
	"sort"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type lostSaleItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       string `dynamodbav:"order_id"`
	ItemKey       string `dynamodbav:"item_key"`
	ItemKind      string `dynamodbav:"item_kind"`
	ItemName      string `dynamodbav:"item_name"`
	Category      string `dynamodbav:"category,omitempty"`
	Severity      string `dynamodbav:"severity"`
	Reason        string `dynamodbav:"reason"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	Round         int    `dynamodbav:"round"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// LostSaleDynamoRepository is append-only.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type LostSaleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILostSaleRepository = (*LostSaleDynamoRepository)(nil)

func NewLostSaleDynamoRepository(ddb DynamoAPI, tableName string) *LostSaleDynamoRepository {
	return &LostSaleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LostSaleDynamoRepository) Append(ctx context.Context, rec entities.LostSaleRecord) error {
	return putNew(ctx, r.ddb, r.tableName, toLostSaleItem(rec))
}

func (r *LostSaleDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.LostSaleRecord, error) {
	raw, err := queryByOrderID(ctx, r.ddb, r.tableName, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LostSaleRecord, 0, len(raw))
	for _, av := range raw {
		var it lostSaleItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromLostSaleItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func toLostSaleItem(r entities.LostSaleRecord) lostSaleItem {
	return lostSaleItem{
		ID:            r.ID,
		OrderID:       r.OrderID,
		ItemKey:       r.ItemKey,
		ItemKind:      string(r.ItemKind),
		ItemName:      r.ItemName,
		Category:      r.Category,
		Severity:      string(r.Severity),
		Reason:        r.Reason,
		EstimatedCost: decimalString(r.EstimatedCost),
		Round:         r.Round,
		CreatedAt:     formatTime(r.CreatedAt),
	}
}

func fromLostSaleItem(it lostSaleItem) entities.LostSaleRecord {
	return entities.LostSaleRecord{
		ID:            it.ID,
		OrderID:       it.OrderID,
		ItemKey:       it.ItemKey,
		ItemKind:      entities.ItemKind(it.ItemKind),
		ItemName:      it.ItemName,
		Category:      it.Category,
		Severity:      entities.Severity(it.Severity),
		Reason:        it.Reason,
		EstimatedCost: parseDecimal(it.EstimatedCost),
		Round:         it.Round,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

type authorizationAuditItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	FindingID string `dynamodbav:"finding_id"`
	State     string `dynamodbav:"state"`
	Reason    string `dynamodbav:"reason,omitempty"`
	Round     int    `dynamodbav:"round"`
	Role      string `dynamodbav:"role"`
	DecidedAt string `dynamodbav:"decided_at"`
}

// AuthorizationAuditDynamoRepository stores the decision trail of diagnostic findings.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type AuthorizationAuditDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuthorizationAuditRepository = (*AuthorizationAuditDynamoRepository)(nil)

func NewAuthorizationAuditDynamoRepository(ddb DynamoAPI, tableName string) *AuthorizationAuditDynamoRepository {
	return &AuthorizationAuditDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuthorizationAuditDynamoRepository) Append(ctx context.Context, a entities.AuthorizationAudit) error {
	return putNew(ctx, r.ddb, r.tableName, authorizationAuditItem{
		ID:        a.ID,
		OrderID:   a.OrderID,
		FindingID: a.FindingID,
		State:     string(a.State),
		Reason:    a.Reason,
		Round:     a.Round,
		Role:      string(a.Role),
		DecidedAt: formatTime(a.DecidedAt),
	})
}

func (r *AuthorizationAuditDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.AuthorizationAudit, error) {
	raw, err := queryByOrderID(ctx, r.ddb, r.tableName, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.AuthorizationAudit, 0, len(raw))
	for _, av := range raw {
		var it authorizationAuditItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.AuthorizationAudit{
			ID:        it.ID,
			OrderID:   it.OrderID,
			FindingID: it.FindingID,
			State:     entities.DecisionState(it.State),
			Reason:    it.Reason,
			Round:     it.Round,
			Role:      entities.Role(it.Role),
			DecidedAt: parseTime(it.DecidedAt),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return out[i].DecidedAt.Before(out[j].DecidedAt)
	})
	return out, nil
}
