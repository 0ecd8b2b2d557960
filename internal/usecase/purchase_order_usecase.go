package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrPurchaseOrderAlreadyExists = errors.New("purchase order number already exists")

// SupplierSummary is the grouped view reviewed in the pre-purchase-order validation.
type SupplierSummary struct {
	OrderID    string                   `json:"order_id"`
	Groups     []entities.SupplierGroup `json:"groups"`
	GrandTotal decimal.Decimal          `json:"grand_total"`
}

// IPurchaseOrderUseCase gates and issues purchase-order numbers.
type IPurchaseOrderUseCase interface {
	GetSupplierSummary(ctx context.Context, id string, role entities.Role) (SupplierSummary, error)
	ApprovePreOC(ctx context.Context, id string, role entities.Role) (entities.Order, error)
	RejectPreOC(ctx context.Context, id string, role entities.Role, note string) (entities.Order, error)
	GeneratePurchaseOrderNumber(ctx context.Context, id string, role entities.Role) (entities.Order, error)
}

type PurchaseOrderUseCase struct {
	orderGuard
	lineItems interfaces.IInvoiceLineItemRepository
	sequences interfaces.ISequenceRepository
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

func NewPurchaseOrderUseCase(
	orders interfaces.IOrderRepository,
	lineItems interfaces.IInvoiceLineItemRepository,
	sequences interfaces.ISequenceRepository,
	machine *lifecycle.Machine,
	logger *zap.Logger,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		orderGuard: newOrderGuard(orders, machine, logger),
		lineItems:  lineItems,
		sequences:  sequences,
	}
}

func (u *PurchaseOrderUseCase) GetSupplierSummary(ctx context.Context, id string, role entities.Role) (SupplierSummary, error) {
	order, _, err := u.view(ctx, id, role)
	if err != nil {
		return SupplierSummary{}, err
	}
	items, err := u.lineItems.ListByOrderID(ctx, order.ID)
	if err != nil {
		return SupplierSummary{}, err
	}
	groups := classification.GroupBySupplier(items, order.Invoices)
	return SupplierSummary{OrderID: order.ID, Groups: groups, GrandTotal: classification.GrandTotal(groups)}, nil
}

func (u *PurchaseOrderUseCase) ApprovePreOC(ctx context.Context, id string, role entities.Role) (entities.Order, error) {
	return u.setPreOCValidation(ctx, id, role, entities.ValidationApproved, "")
}

func (u *PurchaseOrderUseCase) RejectPreOC(ctx context.Context, id string, role entities.Role, note string) (entities.Order, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.Order{}, ErrValidationNoteRequired
	}
	return u.setPreOCValidation(ctx, id, role, entities.ValidationRejected, note)
}

func (u *PurchaseOrderUseCase) setPreOCValidation(ctx context.Context, id string, role entities.Role, status entities.ValidationStatus, note string) (entities.Order, error) {
	order, err := u.require(ctx, id, role, entities.PhasePrePurchaseOrderValidation, lifecycle.ActionEdit)
	if err != nil {
		return entities.Order{}, err
	}
	order.PreOCValidationStatus = status
	order.PreOCValidationNote = note
	order.UpdatedAt = u.now()

	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("[purchase-order][usecase] pre-oc validation recorded",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.String("status", string(status)),
	)
	return updated, nil
}

// GeneratePurchaseOrderNumber issues OC-<year>-<seq> once. A second call on an order that
// already carries a number fails with ErrPurchaseOrderAlreadyExists.
func (u *PurchaseOrderUseCase) GeneratePurchaseOrderNumber(ctx context.Context, id string, role entities.Role) (entities.Order, error) {
	if !role.IsValid() {
		return entities.Order{}, ErrInvalidRole
	}
	order, phase, err := u.load(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.HasPurchaseOrder() {
		return entities.Order{}, ErrPurchaseOrderAlreadyExists
	}
	if phase != entities.PhasePurchaseOrderGeneration {
		return entities.Order{}, &WrongPhaseError{OrderID: order.ID, Current: phase, Required: entities.PhasePurchaseOrderGeneration}
	}
	if err := u.machine.Authorize(phase, role, lifecycle.ActionEdit); err != nil {
		return entities.Order{}, err
	}
	if order.PreOCValidationStatus != entities.ValidationApproved {
		return entities.Order{}, lifecycle.ErrPreOCNotApproved
	}

	year := u.now().Year()
	seq, err := u.sequences.Next(ctx, fmt.Sprintf("purchase_order:%d", year))
	if err != nil {
		u.logger.Error("[purchase-order][usecase] sequence failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}
	number := fmt.Sprintf("OC-%d-%04d", year, seq)

	updated, err := u.orders.SetPurchaseOrderNumber(ctx, order.ID, number, entities.OrderStatusPurchaseOrderIssued)
	if err != nil {
		if errors.Is(err, interfaces.ErrPurchaseOrderNumberTaken) {
			return entities.Order{}, ErrPurchaseOrderAlreadyExists
		}
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("[purchase-order][usecase] purchase order issued",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.String("purchase_order_number", number),
	)
	return updated, nil
}
