package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taller_xpto/internal/domain/authorization"
	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/domain/pricing"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid id", usecase.ErrInvalidOrderID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"wrapped invalid item", fmt.Errorf("part 0: %w", usecase.ErrInvalidItem), http.StatusBadRequest, "INVALID_REQUEST"},
		{"not found", usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"line item not found", usecase.ErrLineItemNotFound, http.StatusNotFound, "LINE_ITEM_NOT_FOUND"},
		{"permission", &lifecycle.PermissionDeniedError{Phase: entities.PhaseDiagnosis, Role: entities.RoleAdvisor, Action: lifecycle.ActionEdit}, http.StatusForbidden, "PERMISSION_DENIED"},
		{"wrong phase", &usecase.WrongPhaseError{OrderID: "o", Current: entities.PhaseDiagnosis, Required: entities.PhaseInvoiceUpload}, http.StatusConflict, "WRONG_PHASE"},
		{"tier", &pricing.InvalidMarginTierError{Tier: 30}, http.StatusUnprocessableEntity, "INVALID_MARGIN_TIER"},
		{"missing reason", &authorization.MissingRejectionReasonError{ItemIDs: []string{"a"}}, http.StatusUnprocessableEntity, "MISSING_REJECTION_REASON"},
		{"inconsistent", &authorization.InconsistentDecisionError{ItemID: "a"}, http.StatusUnprocessableEntity, "INCONSISTENT_DECISION"},
		{"unknown item", &authorization.UnknownItemError{ItemID: "a"}, http.StatusUnprocessableEntity, "UNKNOWN_ITEM"},
		{"origin mismatch", &authorization.OriginMismatchError{ItemID: "a"}, http.StatusConflict, "ORIGIN_MISMATCH"},
		{"reconciliation", &usecase.ReconciliationError{OrderID: "o", FailedStep: "audit", Err: errors.New("boom")}, http.StatusInternalServerError, "RECONCILIATION_FAILED"},
		{"supplier", &usecase.SupplierNotRegisteredError{}, http.StatusUnprocessableEntity, "SUPPLIER_NOT_REGISTERED"},
		{"discard", &usecase.DiscardConfirmationRequiredError{}, http.StatusConflict, "DISCARD_CONFIRMATION_REQUIRED"},
		{"pending", &usecase.PendingClassificationError{LineItemIDs: []string{"l1"}}, http.StatusConflict, "PENDING_CLASSIFICATION"},
		{"incomplete", &classification.ClassificationIncompleteError{FieldsMissing: []string{"division"}}, http.StatusUnprocessableEntity, "CLASSIFICATION_INCOMPLETE"},
		{"processed", classification.ErrAlreadyProcessed, http.StatusConflict, "LINE_ITEM_PROCESSED"},
		{"dedicated exit", usecase.ErrAdvanceRequiresOperation, http.StatusConflict, "DEDICATED_OPERATION_REQUIRED"},
		{"terminal", lifecycle.ErrTerminalPhase, http.StatusConflict, "TERMINAL_PHASE"},
		{"admin guard", lifecycle.ErrAdminValidationNotApproved, http.StatusConflict, "ADMIN_VALIDATION_NOT_APPROVED"},
		{"pre-oc guard", lifecycle.ErrPreOCNotApproved, http.StatusConflict, "PRE_OC_NOT_APPROVED"},
		{"po exists", usecase.ErrPurchaseOrderAlreadyExists, http.StatusConflict, "PURCHASE_ORDER_ALREADY_EXISTS"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapOrderError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, appErr.Code)
			}
		})
	}
}

func TestMapOrderError_Details(t *testing.T) {
	appErr := mapOrderError(&lifecycle.PermissionDeniedError{
		Phase:        entities.PhaseInvoiceUpload,
		Role:         entities.RoleTechnician,
		Action:       lifecycle.ActionEdit,
		AllowedRoles: []entities.Role{entities.RoleAdmin},
	})
	details, ok := appErr.Details.(gin.H)
	if !ok {
		t.Fatalf("expected gin.H details, got %T", appErr.Details)
	}
	if details["phase"] != entities.PhaseInvoiceUpload || details["role"] != entities.RoleTechnician {
		t.Fatalf("unexpected details: %v", details)
	}
}

func TestMapDeliveryPaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrPurchaseOrderMissing, http.StatusConflict},
		{usecase.ErrOrderAlreadyDelivered, http.StatusConflict},
		{usecase.ErrNothingToCharge, http.StatusConflict},
		{usecase.ErrPaymentInProgress, http.StatusConflict},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapDeliveryPaymentError(tc.err).HTTPStatus; got != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}
