package handlers

import (
	"errors"
	"net/http"

	"taller_xpto/internal/domain/authorization"
	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/domain/pricing"
	"taller_xpto/internal/usecase"
	"taller_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapOrderError translates use-case and domain errors shared by every order route.
func mapOrderError(err error) *pkg.AppError {
	var (
		denied       *lifecycle.PermissionDeniedError
		wrongPhase   *usecase.WrongPhaseError
		tierErr      *pricing.InvalidMarginTierError
		missing      *authorization.MissingRejectionReasonError
		inconsistent *authorization.InconsistentDecisionError
		unknownItem  *authorization.UnknownItemError
		mismatch     *authorization.OriginMismatchError
		reconcile    *usecase.ReconciliationError
		noSupplier   *usecase.SupplierNotRegisteredError
		confirm      *usecase.DiscardConfirmationRequiredError
		pending      *usecase.PendingClassificationError
		incomplete   *classification.ClassificationIncompleteError
	)

	switch {
	case errors.As(err, &denied):
		return pkg.NewDomainError("PERMISSION_DENIED", "Role not allowed in this phase", err, http.StatusForbidden).
			WithDetails(gin.H{"phase": denied.Phase, "role": denied.Role, "action": denied.Action, "allowed_roles": denied.AllowedRoles})
	case errors.As(err, &wrongPhase):
		return pkg.NewDomainError("WRONG_PHASE", "Operation not available in the current phase", err, http.StatusConflict).
			WithDetails(gin.H{"current_phase": wrongPhase.Current, "required_phase": wrongPhase.Required})
	case errors.As(err, &tierErr):
		return pkg.NewDomainError("INVALID_MARGIN_TIER", "Margin tier must be one of 28, 39, 48 or 50", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"tier": tierErr.Tier, "allowed": pricing.Tiers()})
	case errors.As(err, &missing):
		return pkg.NewDomainError("MISSING_REJECTION_REASON", "Rejected items need a reason", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"item_ids": missing.ItemIDs})
	case errors.As(err, &inconsistent):
		return pkg.NewDomainError("INCONSISTENT_DECISION", "Item cannot be both authorized and rejected", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"item_id": inconsistent.ItemID})
	case errors.As(err, &unknownItem):
		return pkg.NewDomainError("UNKNOWN_ITEM", "Item is not part of the order", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"item_id": unknownItem.ItemID})
	case errors.As(err, &mismatch):
		return pkg.NewDomainError("ORIGIN_MISMATCH", "Order items changed during reconciliation", err, http.StatusConflict).
			WithDetails(gin.H{"item_id": mismatch.ItemID})
	case errors.As(err, &reconcile):
		return pkg.NewDomainError("RECONCILIATION_FAILED", "Authorization was partially persisted", err, http.StatusInternalServerError).
			WithDetails(gin.H{"failed_step": reconcile.FailedStep, "completed_steps": reconcile.CompletedSteps})
	case errors.As(err, &noSupplier):
		return pkg.NewDomainError("SUPPLIER_NOT_REGISTERED", "No invoice has a registered supplier", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"invoices": noSupplier.Invoices})
	case errors.As(err, &confirm):
		return pkg.NewDomainError("DISCARD_CONFIRMATION_REQUIRED", "Some invoices will be discarded; resend with confirm_discard", err, http.StatusConflict).
			WithDetails(gin.H{"invoices": confirm.Invoices})
	case errors.As(err, &pending):
		return pkg.NewDomainError("PENDING_CLASSIFICATION", "Line items are still pending classification", err, http.StatusConflict).
			WithDetails(gin.H{"line_item_ids": pending.LineItemIDs})
	case errors.As(err, &incomplete):
		return pkg.NewDomainError("CLASSIFICATION_INCOMPLETE", "Classification fields missing", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"fields_missing": incomplete.FieldsMissing})
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidItem),
		errors.Is(err, usecase.ErrEmptyDiagnosis),
		errors.Is(err, usecase.ErrInvalidFindingSeverity),
		errors.Is(err, usecase.ErrNegativeFindingEstimation),
		errors.Is(err, usecase.ErrValidationNoteRequired),
		errors.Is(err, usecase.ErrNoInvoices),
		errors.Is(err, usecase.ErrInvalidInvoice),
		errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidQueueCursor),
		errors.Is(err, pricing.ErrInvalidCost):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetails(gin.H{"reason": err.Error()})
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdvanceRequiresOperation):
		return pkg.NewDomainError("DEDICATED_OPERATION_REQUIRED", "This phase is completed by its own operation", err, http.StatusConflict).
			WithDetails(gin.H{"reason": err.Error()})
	case errors.Is(err, lifecycle.ErrTerminalPhase):
		return pkg.NewDomainErrorSimple("TERMINAL_PHASE", "Order is in the last phase", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrAdminValidationNotApproved):
		return pkg.NewDomainErrorSimple("ADMIN_VALIDATION_NOT_APPROVED", "Administrative validation not approved", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrPreOCNotApproved):
		return pkg.NewDomainErrorSimple("PRE_OC_NOT_APPROVED", "Pre purchase-order validation not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("NO_LINE_ITEMS", "Order has no invoice line items", http.StatusConflict)
	case errors.Is(err, classification.ErrAlreadyProcessed):
		return pkg.NewDomainErrorSimple("LINE_ITEM_PROCESSED", "Line item already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_ALREADY_EXISTS", "Purchase order number already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapDeliveryPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPurchaseOrderMissing):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_MISSING", "Order has no purchase order number", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyDelivered):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_DELIVERED", "Order already delivered", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Order has no authorized amount", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "Order already has a pending or approved payment", http.StatusConflict)
	default:
		return mapOrderError(err)
	}
}

// respondError logs at error level only for server-side failures; client errors are info.
func respondError(c *gin.Context, logger *zap.Logger, prefix, orderID string, appErr *pkg.AppError, err error) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(prefix+" failed", zap.String("order_id", orderID), zap.Error(err))
	} else {
		logger.Info(prefix+" rejected", zap.String("order_id", orderID), zap.String("code", appErr.Code))
	}
	writeError(c, appErr)
}
