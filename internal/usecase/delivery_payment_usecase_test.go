package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	mock_interfaces "taller_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type paymentMocks struct {
	repo    *mock_interfaces.MockIDeliveryPaymentRepository
	orders  *mock_interfaces.MockIOrderRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newTestDeliveryPaymentUseCase(ctrl *gomock.Controller, settings PaymentSettings) (*DeliveryPaymentUseCase, paymentMocks) {
	m := paymentMocks{
		repo:    mock_interfaces.NewMockIDeliveryPaymentRepository(ctrl),
		orders:  mock_interfaces.NewMockIOrderRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewDeliveryPaymentUseCase(m.repo, m.orders, m.gateway, settings, lifecycle.NewMachine(nil), zap.NewNop())
	uc.now = fixedClock
	return uc, m
}

func issuedOrder(total string) entities.Order {
	return entities.Order{
		ID:                  "os-1",
		Status:              entities.OrderStatusPurchaseOrderIssued,
		PurchaseOrderNumber: "OC-2026-0007",
		AuthorizedTotal:     dec(total),
	}
}

const payerPayload = `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`

func TestDeliveryPaymentUseCase_Deliver_Validations(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewDeliveryPaymentUseCase(nil, orders, nil, PaymentSettings{}, nil, nil)

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("no purchase order yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		order := issuedOrder("100")
		order.PurchaseOrderNumber = ""
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if !errors.Is(err, ErrPurchaseOrderMissing) {
			t.Fatalf("expected ErrPurchaseOrderMissing, got %v", err)
		}
	})

	t.Run("already delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		order := issuedOrder("100")
		order.Status = entities.OrderStatusDelivered
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if !errors.Is(err, ErrOrderAlreadyDelivered) {
			t.Fatalf("expected ErrOrderAlreadyDelivered, got %v", err)
		}
	})

	t.Run("nothing authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("0"), nil)

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("100"), nil)

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("100"), nil)

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestDeliveryPaymentUseCase_Deliver_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
			m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("10"), nil)
			m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return(nil, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDeliveryPaymentUseCase_Deliver_Success(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		delivers       bool
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, delivers: true},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{
				AccessToken:     "TEST-token",
				TestPayerUserID: "123",
				TestPayerEmail:  "sandbox@test.com",
			})
			m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("77.2"), nil)
			m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return(nil, nil)

			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "os-1" {
						t.Fatalf("external_reference not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the authorized total")
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":123}`), nil
				},
			)
			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DeliveryPayment{})).DoAndReturn(
				func(_ context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error) {
					if p.ID != "pay-1" || p.OrderID != "os-1" || p.Status != tc.want || !p.Date.Equal(testNow) {
						t.Fatalf("unexpected payment: %+v", p)
					}
					return p, nil
				},
			)
			if tc.delivers {
				m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusDelivered).
					Return(entities.Order{ID: "os-1", Status: entities.OrderStatusDelivered}, nil)
			}

			res, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{Mock: true})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("50"), nil)
		m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error) {
			return p, nil
		})
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusDelivered).Return(entities.Order{ID: "os-1"}, nil)

		res, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusApproved || res.MPPayload["external_reference"] != "os-1" {
			t.Fatalf("unexpected mock payment %+v", res)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("11"), nil)
		m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return(nil, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DeliveryPayment{}, errors.New("db-create"))

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestDeliveryPaymentUseCase_Deliver_NoDoubleCharge(t *testing.T) {
	for _, status := range []entities.PaymentStatus{entities.PaymentStatusPending, entities.PaymentStatusApproved} {
		t.Run("previous "+string(status)+" payment", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
			m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("77.2"), nil)
			m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.DeliveryPayment{
				{ID: "pay-0", OrderID: "os-1", Status: entities.PaymentStatusDenied},
				{ID: "pay-1", OrderID: "os-1", Status: status},
			}, nil)

			_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
			if !errors.Is(err, ErrPaymentInProgress) {
				t.Fatalf("expected ErrPaymentInProgress, got %v", err)
			}
		})
	}

	t.Run("retry after a denied payment charges again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("77.2"), nil)
		m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.DeliveryPayment{
			{ID: "pay-0", OrderID: "os-1", Status: entities.PaymentStatusDenied},
		}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-2", "in_process", json.RawMessage(`{"id":2}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error) {
			return p, nil
		})

		res, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "pay-2" || res.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected payment %+v", res)
		}
	})

	t.Run("payment lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("77.2"), nil)
		m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return(nil, errors.New("db-list"))

		_, err := uc.Deliver(context.Background(), "os-1", entities.RoleAdvisor, json.RawMessage(payerPayload))
		if err == nil || err.Error() != "db-list" {
			t.Fatalf("expected db-list error, got %v", err)
		}
	})
}

func TestDeliveryPaymentUseCase_ListByOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, m := newTestDeliveryPaymentUseCase(ctrl, PaymentSettings{})

	if _, err := uc.ListByOrderID(context.Background(), " ", entities.RoleAdvisor); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
	if _, err := uc.ListByOrderID(context.Background(), "os-1", entities.Role("cashier")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(issuedOrder("10"), nil)
	m.repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.DeliveryPayment{{ID: "p1"}}, nil)
	res, err := uc.ListByOrderID(context.Background(), " os-1 ", entities.RoleAdvisor)
	if err != nil || len(res) != 1 || res[0].ID != "p1" {
		t.Fatalf("unexpected result err=%v res=%+v", err, res)
	}
}

func TestDeliveryPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for blank id")
		}
	})

	t.Run("paymentStatusFromProvider", func(t *testing.T) {
		if paymentStatusFromProvider(" Authorized ") != entities.PaymentStatusApproved {
			t.Fatalf("expected approved")
		}
		if paymentStatusFromProvider("charged_back") != entities.PaymentStatusDenied {
			t.Fatalf("expected denied")
		}
		if paymentStatusFromProvider("") != entities.PaymentStatusPending {
			t.Fatalf("expected pending")
		}
	})
}
