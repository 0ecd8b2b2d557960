package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taller_xpto/internal/adapter/http/handlers/mocks"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestDeliveryPaymentHandler_Deliver(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryPaymentUseCase(ctrl)
		h := NewDeliveryPaymentHandler(uc, false, nil)

		r := newTestRouter(entities.RoleAdvisor, http.MethodPost, "/v1/orders/:id/delivery", h.Deliver)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/delivery", "{")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryPaymentUseCase(ctrl)
		h := NewDeliveryPaymentHandler(uc, true, nil)

		uc.EXPECT().Deliver(gomock.Any(), "ord-1", entities.RoleAdvisor, json.RawMessage("{}")).
			Return(entities.DeliveryPayment{ID: "pay-1", OrderID: "ord-1", Status: entities.PaymentStatusApproved}, nil)

		r := newTestRouter(entities.RoleAdvisor, http.MethodPost, "/v1/orders/:id/delivery", h.Deliver)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/delivery", "{")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryPaymentUseCase(ctrl)
		h := NewDeliveryPaymentHandler(uc, false, nil)

		uc.EXPECT().Deliver(gomock.Any(), "ord-1", entities.RoleAdvisor, gomock.Any()).Return(entities.DeliveryPayment{}, usecase.ErrOrderAlreadyDelivered)

		r := newTestRouter(entities.RoleAdvisor, http.MethodPost, "/v1/orders/:id/delivery", h.Deliver)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/delivery", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryPaymentUseCase(ctrl)
		h := NewDeliveryPaymentHandler(uc, false, nil)

		now := time.Now().UTC()
		uc.EXPECT().Deliver(gomock.Any(), "ord-1", entities.RoleAdvisor, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ entities.Role, payload json.RawMessage) (entities.DeliveryPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.DeliveryPayment{ID: "pay-1", OrderID: "ord-1", Amount: decimal.RequireFromString("1661.11"), Date: now, Status: entities.PaymentStatusApproved}, nil
			})

		r := newTestRouter(entities.RoleAdvisor, http.MethodPost, "/v1/orders/:id/delivery", h.Deliver)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/delivery", `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "1661.11" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDeliveryPaymentHandler_ListPayments(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryPaymentUseCase(ctrl)
		h := NewDeliveryPaymentHandler(uc, false, nil)

		uc.EXPECT().ListByOrderID(gomock.Any(), "ord-1", entities.RoleAdvisor).Return(nil, usecase.ErrInvalidOrderID)

		r := newTestRouter(entities.RoleAdvisor, http.MethodGet, "/v1/orders/:id/payments", h.ListPayments)
		w := serve(r, http.MethodGet, "/v1/orders/ord-1/payments", "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryPaymentUseCase(ctrl)
		h := NewDeliveryPaymentHandler(uc, false, nil)

		uc.EXPECT().ListByOrderID(gomock.Any(), "ord-1", entities.RoleAdvisor).Return([]entities.DeliveryPayment{{ID: "pay-1", OrderID: "ord-1"}}, nil)

		r := newTestRouter(entities.RoleAdvisor, http.MethodGet, "/v1/orders/:id/payments", h.ListPayments)
		w := serve(r, http.MethodGet, "/v1/orders/ord-1/payments", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "empty body", body: "", want: "{}"},
		{name: "bare payload", body: `{"a":1}`, want: `{"a":1}`},
		{name: "envelope", body: `{"mp_payload":{"a":1}}`, want: `{"a":1}`},
		{name: "null envelope", body: `{"mp_payload":null}`, wantErr: true},
		{name: "invalid json", body: `{`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			got, err := readMPPayload(c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("read error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Body = failingReadCloser{}

		if _, err := readMPPayload(c); err == nil {
			t.Fatalf("expected read error")
		}
	})
}
