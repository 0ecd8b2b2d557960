package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taller_xpto/internal/domain/authorization"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/domain/pricing"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidCustomerID         = errors.New("invalid customer_id")
	ErrInvalidVehicleID          = errors.New("invalid vehicle_id")
	ErrInvalidItem               = errors.New("invalid item")
	ErrEmptyDiagnosis            = errors.New("diagnosis has no items")
	ErrValidationNoteRequired    = errors.New("rejection note is required")
	ErrAdvanceRequiresOperation  = errors.New("phase is completed by its own operation")
	ErrInvalidFindingSeverity    = errors.New("invalid finding severity")
	ErrNegativeFindingEstimation = errors.New("finding estimated cost cannot be negative")
)

// dedicatedExits are the phases left only through their own operation.
var dedicatedExits = map[entities.Phase]string{
	entities.PhaseCustomerAuthorization:   "submit authorization",
	entities.PhaseInvoiceUpload:           "ingest invoices",
	entities.PhaseProductProcessing:       "process line items",
	entities.PhasePurchaseOrderGeneration: "generate purchase order number",
}

type PartInput struct {
	Description string
	Category    string
	Quantity    int
	UnitCost    decimal.Decimal
	MarginTier  int
}

type ServiceInput struct {
	Description string
	Category    string
	Cost        decimal.Decimal
	MarginTier  int
}

type FindingInput struct {
	Description   string
	Category      string
	Severity      entities.Severity
	EstimatedCost decimal.Decimal
}

// CreateOrderCommand carries the items picked by staff in the order builder.
type CreateOrderCommand struct {
	CustomerID string
	VehicleID  string
	Parts      []PartInput
	Services   []ServiceInput
}

// DiagnosisCommand carries what the technician adds during diagnosis.
type DiagnosisCommand struct {
	Parts    []PartInput
	Services []ServiceInput
	Findings []FindingInput
}

// IOrderUseCase covers the order builder, diagnosis, generic phase moves and admin validation.
type IOrderUseCase interface {
	Create(ctx context.Context, role entities.Role, cmd CreateOrderCommand) (entities.Order, error)
	GetByID(ctx context.Context, id string, role entities.Role) (entities.Order, error)
	RecordDiagnosis(ctx context.Context, id string, role entities.Role, cmd DiagnosisCommand) (entities.Order, error)
	GetPermissions(ctx context.Context, id string, role entities.Role) (lifecycle.Permissions, error)
	AdvancePhase(ctx context.Context, id string, role entities.Role) (entities.Order, error)
	ApproveAdminValidation(ctx context.Context, id string, role entities.Role) (entities.Order, error)
	RejectAdminValidation(ctx context.Context, id string, role entities.Role, note string) (entities.Order, error)
}

type OrderUseCase struct {
	orderGuard
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, machine *lifecycle.Machine, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{orderGuard: newOrderGuard(orders, machine, logger)}
}

func (u *OrderUseCase) Create(ctx context.Context, role entities.Role, cmd CreateOrderCommand) (entities.Order, error) {
	if !role.IsValid() {
		return entities.Order{}, ErrInvalidRole
	}
	if err := u.machine.Authorize(lifecycle.InitialPhase, role, lifecycle.ActionEdit); err != nil {
		return entities.Order{}, err
	}
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}
	vehicleID := strings.TrimSpace(cmd.VehicleID)
	if vehicleID == "" {
		return entities.Order{}, ErrInvalidVehicleID
	}

	parts, err := u.buildParts(cmd.Parts, false)
	if err != nil {
		return entities.Order{}, err
	}
	services, err := u.buildServices(cmd.Services, false)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.now()
	order := entities.Order{
		ID:                    u.newID(),
		Status:                lifecycle.StatusForPhase(lifecycle.InitialPhase),
		CustomerID:            customerID,
		VehicleID:             vehicleID,
		Parts:                 parts,
		Services:              services,
		AdminValidationStatus: entities.ValidationPending,
		PreOCValidationStatus: entities.ValidationPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	order.BudgetTotal = budgetOf(order)

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		u.logger.Error("[order][usecase] create failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}
	u.logger.Info("[order][usecase] order created",
		zap.String("order_id", created.ID),
		zap.Int("parts", len(parts)),
		zap.Int("services", len(services)),
		zap.String("budget_total", created.BudgetTotal.StringFixed(2)),
	)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string, role entities.Role) (entities.Order, error) {
	order, _, err := u.view(ctx, id, role)
	return order, err
}

func (u *OrderUseCase) RecordDiagnosis(ctx context.Context, id string, role entities.Role, cmd DiagnosisCommand) (entities.Order, error) {
	order, err := u.require(ctx, id, role, entities.PhaseDiagnosis, lifecycle.ActionEdit)
	if err != nil {
		return entities.Order{}, err
	}
	if len(cmd.Parts)+len(cmd.Services)+len(cmd.Findings) == 0 {
		return entities.Order{}, ErrEmptyDiagnosis
	}

	parts, err := u.buildParts(cmd.Parts, true)
	if err != nil {
		return entities.Order{}, err
	}
	services, err := u.buildServices(cmd.Services, true)
	if err != nil {
		return entities.Order{}, err
	}
	findings, err := u.buildFindings(cmd.Findings)
	if err != nil {
		return entities.Order{}, err
	}

	order.Parts = append(order.Parts, parts...)
	order.Services = append(order.Services, services...)
	order.Findings = append(order.Findings, findings...)
	order.BudgetTotal = budgetOf(order)
	order.UpdatedAt = u.now()

	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		u.logger.Error("[order][usecase] diagnosis update failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("[order][usecase] diagnosis recorded",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.Int("findings", len(findings)),
	)
	return updated, nil
}

func (u *OrderUseCase) GetPermissions(ctx context.Context, id string, role entities.Role) (lifecycle.Permissions, error) {
	if !role.IsValid() {
		return lifecycle.Permissions{}, ErrInvalidRole
	}
	_, phase, err := u.load(ctx, id)
	if err != nil {
		return lifecycle.Permissions{}, err
	}
	return u.machine.Permissions(phase, role), nil
}

func (u *OrderUseCase) AdvancePhase(ctx context.Context, id string, role entities.Role) (entities.Order, error) {
	if !role.IsValid() {
		return entities.Order{}, ErrInvalidRole
	}
	order, phase, err := u.load(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if op, dedicated := dedicatedExits[phase]; dedicated {
		return entities.Order{}, fmt.Errorf("%w: %s", ErrAdvanceRequiresOperation, op)
	}
	if err := u.machine.Authorize(phase, role, lifecycle.ActionAdvance); err != nil {
		return entities.Order{}, err
	}
	next, err := u.machine.CanAdvanceToNextPhase(phase, order.AdminValidationStatus, order.PreOCValidationStatus)
	if err != nil {
		u.logger.Info("[order][usecase] advance refused",
			zap.String("order_id", order.ID),
			zap.String("phase", string(phase)),
			zap.Error(err),
		)
		return entities.Order{}, err
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, lifecycle.StatusForPhase(next))
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("[order][usecase] phase advanced",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.String("from", string(phase)),
		zap.String("to", string(next)),
	)
	return updated, nil
}

func (u *OrderUseCase) ApproveAdminValidation(ctx context.Context, id string, role entities.Role) (entities.Order, error) {
	return u.setAdminValidation(ctx, id, role, entities.ValidationApproved, "")
}

func (u *OrderUseCase) RejectAdminValidation(ctx context.Context, id string, role entities.Role, note string) (entities.Order, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.Order{}, ErrValidationNoteRequired
	}
	return u.setAdminValidation(ctx, id, role, entities.ValidationRejected, note)
}

func (u *OrderUseCase) setAdminValidation(ctx context.Context, id string, role entities.Role, status entities.ValidationStatus, note string) (entities.Order, error) {
	order, err := u.require(ctx, id, role, entities.PhaseProductValidation, lifecycle.ActionEdit)
	if err != nil {
		return entities.Order{}, err
	}
	order.AdminValidationStatus = status
	order.AdminValidationNote = note
	order.UpdatedAt = u.now()

	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.logger.Info("[order][usecase] admin validation recorded",
		zap.String("order_id", order.ID),
		zap.String("role", string(role)),
		zap.String("status", string(status)),
	)
	return updated, nil
}

func (u *OrderUseCase) buildParts(in []PartInput, fromDiagnostic bool) ([]entities.Part, error) {
	parts := make([]entities.Part, 0, len(in))
	for i, p := range in {
		desc := strings.TrimSpace(p.Description)
		if desc == "" || p.Quantity <= 0 {
			return nil, fmt.Errorf("%w: part %d needs a description and a positive quantity", ErrInvalidItem, i)
		}
		res, err := pricing.Price(p.UnitCost, p.MarginTier)
		if err != nil {
			return nil, err
		}
		part := entities.Part{
			ID:             u.newID(),
			Description:    desc,
			Category:       strings.TrimSpace(p.Category),
			Quantity:       p.Quantity,
			UnitCost:       p.UnitCost,
			MarginTier:     p.MarginTier,
			UnitPrice:      res.Price,
			Margin:         res.Margin,
			FromDiagnostic: fromDiagnostic,
			Decision:       initialDecision(fromDiagnostic),
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (u *OrderUseCase) buildServices(in []ServiceInput, fromDiagnostic bool) ([]entities.Service, error) {
	services := make([]entities.Service, 0, len(in))
	for i, s := range in {
		desc := strings.TrimSpace(s.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: service %d needs a description", ErrInvalidItem, i)
		}
		res, err := pricing.Price(s.Cost, s.MarginTier)
		if err != nil {
			return nil, err
		}
		services = append(services, entities.Service{
			ID:             u.newID(),
			Description:    desc,
			Category:       strings.TrimSpace(s.Category),
			Cost:           s.Cost,
			MarginTier:     s.MarginTier,
			Price:          res.Price,
			Margin:         res.Margin,
			FromDiagnostic: fromDiagnostic,
			Decision:       initialDecision(fromDiagnostic),
		})
	}
	return services, nil
}

func (u *OrderUseCase) buildFindings(in []FindingInput) ([]entities.DiagnosticFinding, error) {
	findings := make([]entities.DiagnosticFinding, 0, len(in))
	for i, f := range in {
		desc := strings.TrimSpace(f.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: finding %d needs a description", ErrInvalidItem, i)
		}
		if !f.Severity.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFindingSeverity, f.Severity)
		}
		if f.EstimatedCost.IsNegative() {
			return nil, ErrNegativeFindingEstimation
		}
		findings = append(findings, entities.DiagnosticFinding{
			ID:            u.newID(),
			Description:   desc,
			Category:      strings.TrimSpace(f.Category),
			Severity:      f.Severity,
			EstimatedCost: f.EstimatedCost,
			Decision:      entities.PendingDecision(),
		})
	}
	return findings, nil
}

func initialDecision(fromDiagnostic bool) entities.Decision {
	if fromDiagnostic {
		return entities.PendingDecision()
	}
	return entities.Decision{State: entities.DecisionAuthorized}
}

// budgetOf is the running total of every quoted item before the customer decides.
func budgetOf(o entities.Order) decimal.Decimal {
	return authorization.Partition(authorization.BuildUnifiedList(o.Parts, o.Services, o.Findings)).All
}
