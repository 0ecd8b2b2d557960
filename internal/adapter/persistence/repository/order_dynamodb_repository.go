package repository

import (
	"context"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type decisionItem struct {
	State     string `dynamodbav:"state"`
	Reason    string `dynamodbav:"reason,omitempty"`
	DecidedAt string `dynamodbav:"decided_at,omitempty"`
}

type partItem struct {
	ID             string       `dynamodbav:"id"`
	Description    string       `dynamodbav:"description"`
	Category       string       `dynamodbav:"category,omitempty"`
	Quantity       int          `dynamodbav:"quantity"`
	UnitCost       string       `dynamodbav:"unit_cost"`
	MarginTier     int          `dynamodbav:"margin_tier"`
	UnitPrice      string       `dynamodbav:"unit_price"`
	Margin         string       `dynamodbav:"margin"`
	FromDiagnostic bool         `dynamodbav:"from_diagnostic"`
	Decision       decisionItem `dynamodbav:"decision"`
}

type serviceItem struct {
	ID             string       `dynamodbav:"id"`
	Description    string       `dynamodbav:"description"`
	Category       string       `dynamodbav:"category,omitempty"`
	Cost           string       `dynamodbav:"cost"`
	MarginTier     int          `dynamodbav:"margin_tier"`
	Price          string       `dynamodbav:"price"`
	Margin         string       `dynamodbav:"margin"`
	FromDiagnostic bool         `dynamodbav:"from_diagnostic"`
	Decision       decisionItem `dynamodbav:"decision"`
}

type findingItem struct {
	ID            string       `dynamodbav:"id"`
	Description   string       `dynamodbav:"description"`
	Category      string       `dynamodbav:"category,omitempty"`
	Severity      string       `dynamodbav:"severity"`
	EstimatedCost string       `dynamodbav:"estimated_cost"`
	Decision      decisionItem `dynamodbav:"decision"`
}

type invoiceItem struct {
	ID           string `dynamodbav:"id"`
	Folio        string `dynamodbav:"folio"`
	SupplierName string `dynamodbav:"supplier_name"`
	SupplierRFC  string `dynamodbav:"supplier_rfc"`
	Total        string `dynamodbav:"total"`
	UploadedAt   string `dynamodbav:"uploaded_at"`
}

type orderItem struct {
	ID                    string        `dynamodbav:"id"`
	Status                string        `dynamodbav:"status"`
	CustomerID            string        `dynamodbav:"customer_id"`
	VehicleID             string        `dynamodbav:"vehicle_id"`
	Parts                 []partItem    `dynamodbav:"parts"`
	Services              []serviceItem `dynamodbav:"services"`
	Findings              []findingItem `dynamodbav:"findings"`
	Invoices              []invoiceItem `dynamodbav:"invoices"`
	BudgetTotal           string        `dynamodbav:"budget_total"`
	AuthorizedTotal       string        `dynamodbav:"authorized_total"`
	RejectedTotal         string        `dynamodbav:"rejected_total"`
	AdminValidationStatus string        `dynamodbav:"admin_validation_status"`
	AdminValidationNote   string        `dynamodbav:"admin_validation_note,omitempty"`
	PreOCValidationStatus string        `dynamodbav:"pre_oc_validation_status"`
	PreOCValidationNote   string        `dynamodbav:"pre_oc_validation_note,omitempty"`
	PurchaseOrderNumber   string        `dynamodbav:"purchase_order_number,omitempty"`
	AuthorizationRound    int           `dynamodbav:"authorization_round"`
	AuthorizedAt          string        `dynamodbav:"authorized_at,omitempty"`
	CreatedAt             string        `dynamodbav:"created_at"`
	UpdatedAt             string        `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists service orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Parts, services, findings and invoice headers are stored inline on the order item, so a
// reconciliation writes every item decision in one PutItem.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string, logger *zap.Logger) *OrderDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName, logger: logger}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOrderItem(o)); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := getByKey(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// Update replaces the whole order. The write is refused when the order does not exist or when
// it would change a purchase-order number already stored.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	names := map[string]string{"#id": "id", "#po": "purchase_order_number"}
	cond := "attribute_exists(#id) AND attribute_not_exists(#po)"
	var values map[string]types.AttributeValue
	if o.PurchaseOrderNumber != "" {
		cond = "attribute_exists(#id) AND (attribute_not_exists(#po) OR #po = :po)"
		values = map[string]types.AttributeValue{
			":po": &types.AttributeValueMemberS{Value: o.PurchaseOrderNumber},
		}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(r.tableName),
		Item:                                av,
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := isConditionalCheckFailed(err); ok {
			if len(cfe.Item) == 0 {
				return entities.Order{}, nil
			}
			r.logger.Warn("[order][repository] update would overwrite purchase order number", zap.String("order_id", o.ID))
			return entities.Order{}, interfaces.ErrPurchaseOrderNumberTaken
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// SetPurchaseOrderNumber stores number and status in one conditional write that only succeeds
// while the order has no number yet.
func (r *OrderDynamoRepository) SetPurchaseOrderNumber(ctx context.Context, id, number string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, "attribute_not_exists(#po)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #po = :po, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":po":         &types.AttributeValueMemberS{Value: number},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#po":         "purchase_order_number",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	extraCondition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := formatTime(timeNow())
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if extraCondition != "" {
		cond += " AND " + extraCondition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 stringKey("id", id),
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := isConditionalCheckFailed(err); ok {
			// An existing item means the extra condition failed.
			if len(cfe.Item) > 0 && extraCondition != "" {
				return entities.Order{}, interfaces.ErrPurchaseOrderNumberTaken
			}
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toDecisionItem(d entities.Decision) decisionItem {
	return decisionItem{State: string(d.State), Reason: d.Reason, DecidedAt: formatTimePtr(d.DecidedAt)}
}

func fromDecisionItem(it decisionItem) entities.Decision {
	state := entities.DecisionState(it.State)
	if state == "" {
		state = entities.DecisionPending
	}
	return entities.Decision{State: state, Reason: it.Reason, DecidedAt: parseTimePtr(it.DecidedAt)}
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                    o.ID,
		Status:                string(o.Status),
		CustomerID:            o.CustomerID,
		VehicleID:             o.VehicleID,
		Parts:                 make([]partItem, 0, len(o.Parts)),
		Services:              make([]serviceItem, 0, len(o.Services)),
		Findings:              make([]findingItem, 0, len(o.Findings)),
		Invoices:              make([]invoiceItem, 0, len(o.Invoices)),
		BudgetTotal:           decimalString(o.BudgetTotal),
		AuthorizedTotal:       decimalString(o.AuthorizedTotal),
		RejectedTotal:         decimalString(o.RejectedTotal),
		AdminValidationStatus: string(o.AdminValidationStatus),
		AdminValidationNote:   o.AdminValidationNote,
		PreOCValidationStatus: string(o.PreOCValidationStatus),
		PreOCValidationNote:   o.PreOCValidationNote,
		PurchaseOrderNumber:   o.PurchaseOrderNumber,
		AuthorizationRound:    o.AuthorizationRound,
		AuthorizedAt:          formatTimePtr(o.AuthorizedAt),
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
	for _, p := range o.Parts {
		it.Parts = append(it.Parts, partItem{
			ID:             p.ID,
			Description:    p.Description,
			Category:       p.Category,
			Quantity:       p.Quantity,
			UnitCost:       decimalString(p.UnitCost),
			MarginTier:     p.MarginTier,
			UnitPrice:      decimalString(p.UnitPrice),
			Margin:         decimalString(p.Margin),
			FromDiagnostic: p.FromDiagnostic,
			Decision:       toDecisionItem(p.Decision),
		})
	}
	for _, s := range o.Services {
		it.Services = append(it.Services, serviceItem{
			ID:             s.ID,
			Description:    s.Description,
			Category:       s.Category,
			Cost:           decimalString(s.Cost),
			MarginTier:     s.MarginTier,
			Price:          decimalString(s.Price),
			Margin:         decimalString(s.Margin),
			FromDiagnostic: s.FromDiagnostic,
			Decision:       toDecisionItem(s.Decision),
		})
	}
	for _, f := range o.Findings {
		it.Findings = append(it.Findings, findingItem{
			ID:            f.ID,
			Description:   f.Description,
			Category:      f.Category,
			Severity:      string(f.Severity),
			EstimatedCost: decimalString(f.EstimatedCost),
			Decision:      toDecisionItem(f.Decision),
		})
	}
	for _, inv := range o.Invoices {
		it.Invoices = append(it.Invoices, invoiceItem{
			ID:           inv.ID,
			Folio:        inv.Folio,
			SupplierName: inv.SupplierName,
			SupplierRFC:  inv.SupplierRFC,
			Total:        decimalString(inv.Total),
			UploadedAt:   formatTime(inv.UploadedAt),
		})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                    it.ID,
		Status:                entities.OrderStatus(it.Status),
		CustomerID:            it.CustomerID,
		VehicleID:             it.VehicleID,
		BudgetTotal:           parseDecimal(it.BudgetTotal),
		AuthorizedTotal:       parseDecimal(it.AuthorizedTotal),
		RejectedTotal:         parseDecimal(it.RejectedTotal),
		AdminValidationStatus: entities.ValidationStatus(it.AdminValidationStatus),
		AdminValidationNote:   it.AdminValidationNote,
		PreOCValidationStatus: entities.ValidationStatus(it.PreOCValidationStatus),
		PreOCValidationNote:   it.PreOCValidationNote,
		PurchaseOrderNumber:   it.PurchaseOrderNumber,
		AuthorizationRound:    it.AuthorizationRound,
		AuthorizedAt:          parseTimePtr(it.AuthorizedAt),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
	for _, p := range it.Parts {
		o.Parts = append(o.Parts, entities.Part{
			ID:             p.ID,
			Description:    p.Description,
			Category:       p.Category,
			Quantity:       p.Quantity,
			UnitCost:       parseDecimal(p.UnitCost),
			MarginTier:     p.MarginTier,
			UnitPrice:      parseDecimal(p.UnitPrice),
			Margin:         parseDecimal(p.Margin),
			FromDiagnostic: p.FromDiagnostic,
			Decision:       fromDecisionItem(p.Decision),
		})
	}
	for _, s := range it.Services {
		o.Services = append(o.Services, entities.Service{
			ID:             s.ID,
			Description:    s.Description,
			Category:       s.Category,
			Cost:           parseDecimal(s.Cost),
			MarginTier:     s.MarginTier,
			Price:          parseDecimal(s.Price),
			Margin:         parseDecimal(s.Margin),
			FromDiagnostic: s.FromDiagnostic,
			Decision:       fromDecisionItem(s.Decision),
		})
	}
	for _, f := range it.Findings {
		o.Findings = append(o.Findings, entities.DiagnosticFinding{
			ID:            f.ID,
			Description:   f.Description,
			Category:      f.Category,
			Severity:      entities.Severity(f.Severity),
			EstimatedCost: parseDecimal(f.EstimatedCost),
			Decision:      fromDecisionItem(f.Decision),
		})
	}
	for _, inv := range it.Invoices {
		o.Invoices = append(o.Invoices, entities.Invoice{
			ID:           inv.ID,
			OrderID:      it.ID,
			Folio:        inv.Folio,
			SupplierName: inv.SupplierName,
			SupplierRFC:  inv.SupplierRFC,
			Total:        parseDecimal(inv.Total),
			UploadedAt:   parseTime(inv.UploadedAt),
		})
	}
	return o
}
