package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind tags the origin collection of an authorizable item.
type ItemKind string

const (
	ItemKindPart    ItemKind = "part"
	ItemKindService ItemKind = "service"
	ItemKindFinding ItemKind = "finding"
)

// AuthorizableItem is the unified view over parts, services and findings shown to the customer.
// Key identifies the item by origin ("<kind>:<origin id>"), never by content.
// EstimatedCost is the shop cost; Amount is the customer price that feeds the budget.
type AuthorizableItem struct {
	Key            string          `json:"key"`
	Kind           ItemKind        `json:"kind"`
	OriginID       string          `json:"origin_id"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	Amount         decimal.Decimal `json:"amount"`
	FromDiagnostic bool            `json:"from_diagnostic"`
	Severity       Severity        `json:"severity,omitempty"`
	Decision       Decision        `json:"decision"`
}

func ItemKey(kind ItemKind, originID string) string {
	return string(kind) + ":" + originID
}

// LostSaleRecord is an append-only analytics entry for a rejected item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type LostSaleRecord struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	ItemKey       string          `json:"item_key"`
	ItemKind      ItemKind        `json:"item_kind"`
	ItemName      string          `json:"item_name"`
	Category      string          `json:"category"`
	Severity      Severity        `json:"severity"`
	Reason        string          `json:"reason"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Round         int             `json:"round"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuthorizationAudit is the dated trail of a customer decision on a diagnostic finding.
// Parts and services keep their decision on the order itself and are not audited here.
type AuthorizationAudit struct {
	ID        string        `json:"id"`
	OrderID   string        `json:"order_id"`
	FindingID string        `json:"finding_id"`
	State     DecisionState `json:"state"`
	Reason    string        `json:"reason,omitempty"`
	Round     int           `json:"round"`
	Role      Role          `json:"role"`
	DecidedAt time.Time     `json:"decided_at"`
}
