package usecase

import (
	"context"
	"fmt"
	"strings"

	"taller_xpto/internal/domain/authorization"
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Reconciliation write steps, in the order they are applied.
const (
	StepSaveItems = "save_items"
	StepAudits    = "append_audits"
	StepLostSales = "append_lost_sales"
	StepStatus    = "transition_status"
)

// ReconciliationError reports a write failure in the middle of a submission. Steps listed in
// CompletedSteps were persisted and are not rolled back; the order status was not transitioned.
type ReconciliationError struct {
	OrderID        string
	CompletedSteps []string
	FailedStep     string
	Err            error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation of order %s failed at %s (completed: %s): %v",
		e.OrderID, e.FailedStep, strings.Join(e.CompletedSteps, ", "), e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// AuthorizationView is the decision surface shown to the customer.
type AuthorizationView struct {
	OrderID string                      `json:"order_id"`
	Phase   entities.Phase              `json:"phase"`
	Items   []entities.AuthorizableItem `json:"items"`
	Totals  authorization.Totals        `json:"totals"`
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	Order     entities.Order              `json:"order"`
	Items     []entities.AuthorizableItem `json:"items"`
	Totals    authorization.Totals        `json:"totals"`
	LostSales []entities.LostSaleRecord   `json:"lost_sales"`
}

// IAuthorizationUseCase reconciles customer decisions on parts, services and findings.
type IAuthorizationUseCase interface {
	GetItems(ctx context.Context, id string, role entities.Role) (AuthorizationView, error)
	Submit(ctx context.Context, id string, role entities.Role, decisions []authorization.DecisionInput) (SubmitResult, error)
	ListLostSales(ctx context.Context, id string, role entities.Role) ([]entities.LostSaleRecord, error)
	ListAudits(ctx context.Context, id string, role entities.Role) ([]entities.AuthorizationAudit, error)
}

type AuthorizationUseCase struct {
	orderGuard
	lostSales interfaces.ILostSaleRepository
	audits    interfaces.IAuthorizationAuditRepository
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(
	orders interfaces.IOrderRepository,
	lostSales interfaces.ILostSaleRepository,
	audits interfaces.IAuthorizationAuditRepository,
	machine *lifecycle.Machine,
	logger *zap.Logger,
) *AuthorizationUseCase {
	return &AuthorizationUseCase{
		orderGuard: newOrderGuard(orders, machine, logger),
		lostSales:  lostSales,
		audits:     audits,
	}
}

func (u *AuthorizationUseCase) GetItems(ctx context.Context, id string, role entities.Role) (AuthorizationView, error) {
	order, phase, err := u.view(ctx, id, role)
	if err != nil {
		return AuthorizationView{}, err
	}
	items := authorization.BuildUnifiedList(order.Parts, order.Services, order.Findings)
	return AuthorizationView{
		OrderID: order.ID,
		Phase:   phase,
		Items:   items,
		Totals:  authorization.Partition(items),
	}, nil
}

// Submit validates every decision before writing anything, then persists item flags, finding
// audits and lost sales, and moves the status to Authorized only after all of them succeeded.
func (u *AuthorizationUseCase) Submit(ctx context.Context, id string, role entities.Role, decisions []authorization.DecisionInput) (SubmitResult, error) {
	u.logger.Info("[authorization][usecase] submit start",
		zap.String("order_id", id),
		zap.String("role", string(role)),
		zap.Int("decisions", len(decisions)),
	)
	order, err := u.require(ctx, id, role, entities.PhaseCustomerAuthorization, lifecycle.ActionEdit)
	if err != nil {
		return SubmitResult{}, err
	}

	now := u.now()
	items, err := authorization.Apply(authorization.BuildUnifiedList(order.Parts, order.Services, order.Findings), decisions, now)
	if err != nil {
		return SubmitResult{}, err
	}
	if err := authorization.ValidateReasons(items); err != nil {
		u.logger.Info("[authorization][usecase] submit refused", zap.String("order_id", order.ID), zap.Error(err))
		return SubmitResult{}, err
	}

	origins, err := authorization.WriteBack(items, authorization.Origins{
		Parts:    order.Parts,
		Services: order.Services,
		Findings: order.Findings,
	})
	if err != nil {
		return SubmitResult{}, err
	}

	totals := authorization.Partition(items)
	round := order.AuthorizationRound + 1
	lost := authorization.LostSales(order.ID, round, items, now, u.newID)

	order.Parts = origins.Parts
	order.Services = origins.Services
	order.Findings = origins.Findings
	order.AuthorizedTotal = totals.Authorized
	order.RejectedTotal = totals.Rejected
	order.BudgetTotal = totals.Authorized
	order.AuthorizationRound = round
	order.AuthorizedAt = &now
	order.UpdatedAt = now

	var completed []string
	fail := func(step string, err error) (SubmitResult, error) {
		u.logger.Error("[authorization][usecase] reconciliation write failed",
			zap.String("order_id", order.ID),
			zap.String("step", step),
			zap.Strings("completed", completed),
			zap.Error(err),
		)
		return SubmitResult{}, &ReconciliationError{OrderID: order.ID, CompletedSteps: completed, FailedStep: step, Err: err}
	}

	saved, err := u.orders.Update(ctx, order)
	if err != nil {
		return fail(StepSaveItems, err)
	}
	if saved.ID == "" {
		return fail(StepSaveItems, ErrOrderNotFound)
	}
	completed = append(completed, StepSaveItems)

	for _, f := range order.Findings {
		if f.Decision.IsPending() {
			continue
		}
		audit := entities.AuthorizationAudit{
			ID:        u.newID(),
			OrderID:   order.ID,
			FindingID: f.ID,
			State:     f.Decision.State,
			Reason:    f.Decision.Reason,
			Round:     round,
			Role:      role,
			DecidedAt: now,
		}
		if f.Decision.DecidedAt != nil {
			audit.DecidedAt = *f.Decision.DecidedAt
		}
		if err := u.audits.Append(ctx, audit); err != nil {
			return fail(StepAudits, err)
		}
	}
	completed = append(completed, StepAudits)

	for _, rec := range lost {
		if err := u.lostSales.Append(ctx, rec); err != nil {
			return fail(StepLostSales, err)
		}
	}
	completed = append(completed, StepLostSales)

	updated, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusAuthorized)
	if err != nil {
		return fail(StepStatus, err)
	}
	if updated.ID == "" {
		return fail(StepStatus, ErrOrderNotFound)
	}

	u.logger.Info("[authorization][usecase] submit success",
		zap.String("order_id", order.ID),
		zap.Int("round", round),
		zap.String("authorized_total", totals.Authorized.StringFixed(2)),
		zap.String("rejected_total", totals.Rejected.StringFixed(2)),
		zap.Int("lost_sales", len(lost)),
	)
	return SubmitResult{Order: updated, Items: items, Totals: totals, LostSales: lost}, nil
}

func (u *AuthorizationUseCase) ListLostSales(ctx context.Context, id string, role entities.Role) ([]entities.LostSaleRecord, error) {
	order, _, err := u.view(ctx, id, role)
	if err != nil {
		return nil, err
	}
	return u.lostSales.ListByOrderID(ctx, order.ID)
}

func (u *AuthorizationUseCase) ListAudits(ctx context.Context, id string, role entities.Role) ([]entities.AuthorizationAudit, error) {
	order, _, err := u.view(ctx, id, role)
	if err != nil {
		return nil, err
	}
	return u.audits.ListByOrderID(ctx, order.ID)
}
