package response

import (
	"encoding/json"
	"testing"
	"time"

	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOrder_ResolvesPhase(t *testing.T) {
	res := FromOrder(entities.Order{ID: "os-1", Status: entities.OrderStatusAuthorized})
	if res.Phase != entities.PhaseInvoiceUpload {
		t.Fatalf("expected InvoiceUpload, got %s", res.Phase)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["id"] != "os-1" || body["phase"] != "InvoiceUpload" {
		t.Fatalf("unexpected body: %s", string(b))
	}
}

func TestFromOrder_UnknownStatusFallsBackToDiagnosis(t *testing.T) {
	res := FromOrder(entities.Order{ID: "os-1", Status: "en revisión"})
	if res.Phase != entities.PhaseDiagnosis {
		t.Fatalf("expected Diagnosis, got %s", res.Phase)
	}
}

func TestFromDeliveryPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromDeliveryPayment(entities.DeliveryPayment{
		ID:           "pay-1",
		OrderID:      "os-1",
		Amount:       decimal.RequireFromString("77.2"),
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    map[string]any{"a": "b"},
	})
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.OrderID != "os-1" || res.Status != "approved" || res.Amount != "77.20" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromQueuePage(t *testing.T) {
	item := entities.InvoiceLineItem{ID: "l1"}
	res := FromQueuePage(classification.QueuePage{Item: &item, Position: 0, Total: 2, NextCursor: 1, HasNext: true})
	if res.Item == nil || res.Item.ID != "l1" || !res.HasNext || res.NextCursor != 1 {
		t.Fatalf("unexpected page: %+v", res)
	}

	empty := FromQueuePage(classification.QueuePage{})
	b, _ := json.Marshal(empty)
	if string(b) != `{"item":null,"position":0,"total":0,"next_cursor":0,"has_next":false}` {
		t.Fatalf("unexpected body: %s", string(b))
	}
}

func TestQuotes(t *testing.T) {
	q := NewTierQuote(decimal.NewFromInt(100), 28, decimal.NewFromInt(116), decimal.RequireFromString("161.11"), decimal.RequireFromString("45.11"))
	if q.Price != "161.11" || q.CostWithTax != "116.00" || q.MarginTier != 28 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	m := NewMarkupQuote(decimal.NewFromInt(100), decimal.NewFromInt(130))
	if m.Margin != "30.00" || m.MarginTier != 0 {
		t.Fatalf("unexpected quote: %+v", m)
	}
}
