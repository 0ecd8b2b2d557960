package request

import "encoding/json"

// DeliveryPaymentRequest is the payload of the delivery route.
//
// `mp_payload` is forwarded to Mercado Pago as-is (raw JSON) to support varying schemas.
// A bare Mercado Pago body without the envelope is accepted too.
type DeliveryPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
