package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"taller_xpto/internal/adapter/http/handlers/mocks"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPurchaseOrderHandler_GetSupplierSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
	h := NewPurchaseOrderHandler(uc, nil)

	uc.EXPECT().GetSupplierSummary(gomock.Any(), "ord-1", entities.RolePurchasing).Return(usecase.SupplierSummary{
		OrderID:    "ord-1",
		Groups:     []entities.SupplierGroup{{SupplierName: "Refacciones del Norte", Total: decimal.RequireFromString("335")}},
		GrandTotal: decimal.RequireFromString("335"),
	}, nil)

	r := newTestRouter(entities.RolePurchasing, http.MethodGet, "/v1/orders/:id/supplier-summary", h.GetSupplierSummary)
	w := serve(r, http.MethodGet, "/v1/orders/ord-1/supplier-summary", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	groups, _ := body["groups"].([]any)
	if len(groups) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPurchaseOrderHandler_PreOC(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc, nil)

		uc.EXPECT().ApprovePreOC(gomock.Any(), "ord-1", entities.RoleManager).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusProductsProcessed, PreOCValidationStatus: entities.ValidationApproved}, nil)

		r := newTestRouter(entities.RoleManager, http.MethodPost, "/v1/orders/:id/pre-oc/approve", h.ApprovePreOC)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/pre-oc/approve", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc, nil)

		r := newTestRouter(entities.RoleManager, http.MethodPost, "/v1/orders/:id/pre-oc/reject", h.RejectPreOC)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/pre-oc/reject", `{"note":`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc, nil)

		uc.EXPECT().RejectPreOC(gomock.Any(), "ord-1", entities.RoleManager, "proveedor sin stock").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusProductsProcessed, PreOCValidationStatus: entities.ValidationRejected}, nil)

		r := newTestRouter(entities.RoleManager, http.MethodPost, "/v1/orders/:id/pre-oc/reject", h.RejectPreOC)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/pre-oc/reject", `{"note":"proveedor sin stock"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPurchaseOrderHandler_Generate(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not approved", lifecycle.ErrPreOCNotApproved, http.StatusConflict},
		{"already exists", usecase.ErrPurchaseOrderAlreadyExists, http.StatusConflict},
		{"wrong phase", &usecase.WrongPhaseError{OrderID: "ord-1", Current: entities.PhaseDelivery, Required: entities.PhasePurchaseOrderGeneration}, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
			h := NewPurchaseOrderHandler(uc, nil)

			uc.EXPECT().GeneratePurchaseOrderNumber(gomock.Any(), "ord-1", entities.RolePurchasing).Return(entities.Order{}, tc.err)

			r := newTestRouter(entities.RolePurchasing, http.MethodPost, "/v1/orders/:id/purchase-order", h.Generate)
			w := serve(r, http.MethodPost, "/v1/orders/ord-1/purchase-order", "")

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc, nil)

		uc.EXPECT().GeneratePurchaseOrderNumber(gomock.Any(), "ord-1", entities.RolePurchasing).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPurchaseOrderIssued, PurchaseOrderNumber: "OC-2026-0001"}, nil)

		r := newTestRouter(entities.RolePurchasing, http.MethodPost, "/v1/orders/:id/purchase-order", h.Generate)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/purchase-order", "")

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["purchase_order_number"] != "OC-2026-0001" || body["phase"] != string(entities.PhaseDelivery) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
