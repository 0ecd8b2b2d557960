package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPurchaseOrderMissing           = errors.New("order has no purchase order number")
	ErrOrderAlreadyDelivered          = errors.New("order already delivered")
	ErrNothingToCharge                = errors.New("order has no authorized amount to charge")
	ErrPaymentInProgress              = errors.New("order already has a pending or approved payment")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings carries the Mercado Pago knobs read from configuration.
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IDeliveryPaymentUseCase charges the authorized budget when the vehicle is delivered.
type IDeliveryPaymentUseCase interface {
	Deliver(ctx context.Context, id string, role entities.Role, mpPayload json.RawMessage) (entities.DeliveryPayment, error)
	ListByOrderID(ctx context.Context, id string, role entities.Role) ([]entities.DeliveryPayment, error)
}

type DeliveryPaymentUseCase struct {
	orderGuard
	repo     interfaces.IDeliveryPaymentRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
}

var _ IDeliveryPaymentUseCase = (*DeliveryPaymentUseCase)(nil)

func NewDeliveryPaymentUseCase(
	repo interfaces.IDeliveryPaymentRepository,
	orders interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	settings PaymentSettings,
	machine *lifecycle.Machine,
	logger *zap.Logger,
) *DeliveryPaymentUseCase {
	return &DeliveryPaymentUseCase{
		orderGuard: newOrderGuard(orders, machine, logger),
		repo:       repo,
		gateway:    gateway,
		settings:   settings,
	}
}

func (u *DeliveryPaymentUseCase) Deliver(ctx context.Context, id string, role entities.Role, mpPayload json.RawMessage) (entities.DeliveryPayment, error) {
	u.logger.Info("[payment][usecase] deliver start", zap.String("order_id", id), zap.Int("payload_len", len(mpPayload)))
	mockMode := u.settings.Mock
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			return entities.DeliveryPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		u.logger.Warn("[payment][usecase] gateway not configured", zap.String("order_id", id))
		return entities.DeliveryPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.require(ctx, id, role, entities.PhaseDelivery, lifecycle.ActionEdit)
	if err != nil {
		return entities.DeliveryPayment{}, err
	}
	if !order.HasPurchaseOrder() {
		return entities.DeliveryPayment{}, ErrPurchaseOrderMissing
	}
	if strings.EqualFold(strings.TrimSpace(string(order.Status)), string(entities.OrderStatusDelivered)) {
		return entities.DeliveryPayment{}, ErrOrderAlreadyDelivered
	}
	amount := order.AuthorizedTotal
	if !amount.IsPositive() {
		return entities.DeliveryPayment{}, ErrNothingToCharge
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.DeliveryPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.logger.Info("[payment][usecase] missing payment_method_id", zap.String("order_id", order.ID))
			return entities.DeliveryPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.logger.Info("[payment][usecase] missing/invalid payer", zap.String("order_id", order.ID))
			return entities.DeliveryPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orden de servicio %s (%s)", order.ID, order.PurchaseOrderNumber)
	}
	// The authorized budget on the order is the source of truth for the amount.
	reqMap["transaction_amount"] = amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DeliveryPayment{}, err
	}

	open, found, err := u.openPayment(ctx, order.ID)
	if err != nil {
		u.logger.Error("[payment][usecase] payment repository list failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.DeliveryPayment{}, err
	}
	if found {
		u.logger.Warn("[payment][usecase] payment already in progress",
			zap.String("order_id", order.ID),
			zap.String("payment_id", open.ID),
			zap.String("status", string(open.Status)),
		)
		return entities.DeliveryPayment{}, ErrPaymentInProgress
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
	}
	if err != nil {
		u.logger.Error("[payment][usecase] payment gateway failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.DeliveryPayment{}, mapGatewayError(err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("[payment][usecase] provider response unmarshal failed", zap.String("order_id", order.ID), zap.Error(err))
	}

	p := entities.DeliveryPayment{
		ID:           providerPaymentID,
		OrderID:      order.ID,
		Amount:       amount,
		Date:         u.now(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("[payment][usecase] payment repository create failed", zap.String("order_id", order.ID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.DeliveryPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusDelivered); err != nil {
			u.logger.Error("[payment][usecase] delivered status update failed", zap.String("order_id", order.ID), zap.Error(err))
			return entities.DeliveryPayment{}, err
		}
	}
	u.logger.Info("[payment][usecase] deliver success",
		zap.String("order_id", order.ID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.String("amount", amount.StringFixed(2)),
	)
	return created, nil
}

func (u *DeliveryPaymentUseCase) ListByOrderID(ctx context.Context, id string, role entities.Role) ([]entities.DeliveryPayment, error) {
	order, _, err := u.view(ctx, id, role)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOrderID(ctx, order.ID)
}

// openPayment returns a pending or approved payment already recorded for the order.
func (u *DeliveryPaymentUseCase) openPayment(ctx context.Context, orderID string) (entities.DeliveryPayment, bool, error) {
	payments, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.DeliveryPayment{}, false, err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusPending || p.Status == entities.PaymentStatusApproved {
			return p, true, nil
		}
	}
	return entities.DeliveryPayment{}, false, nil
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *DeliveryPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.settings.sandbox() {
			payer["email"] = "test_user_mx@testuser.com"
		}
	}
}

func (u *DeliveryPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.settings.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
