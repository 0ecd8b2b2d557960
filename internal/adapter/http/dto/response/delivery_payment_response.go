package response

import (
	"time"

	"taller_xpto/internal/domain/entities"
)

type DeliveryPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromDeliveryPayment(p entities.DeliveryPayment) DeliveryPaymentResponse {
	return DeliveryPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount.StringFixed(2),
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromDeliveryPayments(ps []entities.DeliveryPayment) []DeliveryPaymentResponse {
	out := make([]DeliveryPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromDeliveryPayment(p))
	}
	return out
}
