package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the free-text phase label stored on a service order (orden de servicio).
//
// Domain notes:
//   - Each phase of the lifecycle has one canonical label; Delivery has two (issued/delivered).
//   - Labels are resolved to phases by the lifecycle package; unknown labels fall back to Diagnosis.
type OrderStatus string

const (
	OrderStatusDiagnosis            OrderStatus = "Diagnosis"
	OrderStatusPendingAuthorization OrderStatus = "PendingAuthorization"
	OrderStatusAuthorized           OrderStatus = "Authorized"
	OrderStatusInvoicesUploaded     OrderStatus = "InvoicesUploaded"
	OrderStatusProductsClassified   OrderStatus = "ProductsClassified"
	OrderStatusProductsValidated    OrderStatus = "ProductsValidated"
	OrderStatusAdminValidated       OrderStatus = "AdminValidated"
	OrderStatusProductsProcessed    OrderStatus = "ProductsProcessed"
	OrderStatusPreOCValidated       OrderStatus = "PreOCValidated"
	OrderStatusPurchaseOrderIssued  OrderStatus = "PurchaseOrderIssued"
	OrderStatusDelivered            OrderStatus = "Delivered"
)

// ValidationStatus is the outcome of an administrative double-check.
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "pending"
	ValidationApproved ValidationStatus = "approved"
	ValidationRejected ValidationStatus = "rejected"
)

// Severity classifies a diagnostic finding (and the lost sale it may become).
type Severity string

const (
	SeverityUrgent      Severity = "urgent"
	SeverityRecommended Severity = "recommended"
	SeverityGood        Severity = "good"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityUrgent, SeverityRecommended, SeverityGood:
		return true
	}
	return false
}

// Part is a spare part quoted on the order.
type Part struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	MarginTier     int             `json:"margin_tier"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Margin         decimal.Decimal `json:"margin"`
	FromDiagnostic bool            `json:"from_diagnostic"`
	Decision       Decision        `json:"decision"`
}

// EstimatedCost is what the shop pays for the quoted quantity.
func (p Part) EstimatedCost() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Amount is what the customer is charged for the quoted quantity.
func (p Part) Amount() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Service is a labor service quoted on the order.
type Service struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Cost           decimal.Decimal `json:"cost"`
	MarginTier     int             `json:"margin_tier"`
	Price          decimal.Decimal `json:"price"`
	Margin         decimal.Decimal `json:"margin"`
	FromDiagnostic bool            `json:"from_diagnostic"`
	Decision       Decision        `json:"decision"`
}

func (s Service) EstimatedCost() decimal.Decimal {
	return s.Cost
}

func (s Service) Amount() decimal.Decimal {
	return s.Price
}

// DiagnosticFinding is an observation recorded by a technician during diagnosis.
// Findings always originate from the diagnosis and start pending.
type DiagnosticFinding struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Severity      Severity        `json:"severity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Decision      Decision        `json:"decision"`
}

// Order is the service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - parts/services/findings/invoices are stored inline (composition)
//   - purchase_order_number is written once with a conditional update
type Order struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	CustomerID string      `json:"customer_id"`
	VehicleID  string      `json:"vehicle_id"`

	Parts    []Part              `json:"parts"`
	Services []Service           `json:"services"`
	Findings []DiagnosticFinding `json:"findings"`
	Invoices []Invoice           `json:"invoices"`

	BudgetTotal     decimal.Decimal `json:"budget_total"`
	AuthorizedTotal decimal.Decimal `json:"authorized_total"`
	RejectedTotal   decimal.Decimal `json:"rejected_total"`

	AdminValidationStatus ValidationStatus `json:"admin_validation_status"`
	AdminValidationNote   string           `json:"admin_validation_note,omitempty"`
	PreOCValidationStatus ValidationStatus `json:"pre_oc_validation_status"`
	PreOCValidationNote   string           `json:"pre_oc_validation_note,omitempty"`
	PurchaseOrderNumber   string           `json:"purchase_order_number,omitempty"`

	AuthorizationRound int        `json:"authorization_round"`
	AuthorizedAt       *time.Time `json:"authorized_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// HasPurchaseOrder reports whether a purchase-order number was already issued.
func (o Order) HasPurchaseOrder() bool {
	return o.PurchaseOrderNumber != ""
}
