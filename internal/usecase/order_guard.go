package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidRole    = errors.New("invalid role")
)

// WrongPhaseError is returned when an operation is invoked outside the phase that owns it.
type WrongPhaseError struct {
	OrderID  string
	Current  entities.Phase
	Required entities.Phase
}

func (e *WrongPhaseError) Error() string {
	return fmt.Sprintf("order %s is in phase %s, operation requires %s", e.OrderID, e.Current, e.Required)
}

// orderGuard bundles what every order operation needs: loading, phase resolution and role checks.
type orderGuard struct {
	orders  interfaces.IOrderRepository
	machine *lifecycle.Machine
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

func newOrderGuard(orders interfaces.IOrderRepository, machine *lifecycle.Machine, logger *zap.Logger) orderGuard {
	if machine == nil {
		machine = lifecycle.NewMachine(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return orderGuard{
		orders:  orders,
		machine: machine,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// load fetches the order and resolves its phase. Unknown status labels are logged and resolved
// to the initial phase.
func (g orderGuard) load(ctx context.Context, id string) (entities.Order, entities.Phase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, "", ErrInvalidOrderID
	}
	order, err := g.orders.GetByID(ctx, id)
	if err != nil {
		g.logger.Error("[order][usecase] failed loading order", zap.String("order_id", id), zap.Error(err))
		return entities.Order{}, "", err
	}
	if order.ID == "" {
		return entities.Order{}, "", ErrOrderNotFound
	}
	phase, err := lifecycle.ResolvePhase(order.Status)
	if err != nil {
		g.logger.Warn("[order][usecase] unknown order status, using initial phase",
			zap.String("order_id", id),
			zap.String("status", string(order.Status)),
			zap.String("phase", string(phase)),
		)
	}
	return order, phase, nil
}

// require loads the order and checks that it sits in phase and that role may perform action there.
func (g orderGuard) require(ctx context.Context, id string, role entities.Role, phase entities.Phase, action lifecycle.Action) (entities.Order, error) {
	if !role.IsValid() {
		return entities.Order{}, ErrInvalidRole
	}
	order, current, err := g.load(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current != phase {
		return entities.Order{}, &WrongPhaseError{OrderID: order.ID, Current: current, Required: phase}
	}
	if err := g.machine.Authorize(current, role, action); err != nil {
		g.logger.Info("[order][usecase] permission denied",
			zap.String("order_id", order.ID),
			zap.String("role", string(role)),
			zap.String("phase", string(current)),
			zap.String("action", string(action)),
		)
		return entities.Order{}, err
	}
	return order, nil
}

// view loads the order and checks that role may look at its current phase.
func (g orderGuard) view(ctx context.Context, id string, role entities.Role) (entities.Order, entities.Phase, error) {
	if !role.IsValid() {
		return entities.Order{}, "", ErrInvalidRole
	}
	order, phase, err := g.load(ctx, id)
	if err != nil {
		return entities.Order{}, "", err
	}
	if err := g.machine.Authorize(phase, role, lifecycle.ActionView); err != nil {
		return entities.Order{}, "", err
	}
	return order, phase, nil
}
