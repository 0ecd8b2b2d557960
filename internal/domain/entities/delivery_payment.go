package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// DeliveryPayment is the customer payment collected when the vehicle is delivered.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
type DeliveryPayment struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Status  PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any  `json:"mp_payload,omitempty"`
}
