package interfaces

import (
	"context"
	"errors"

	"taller_xpto/internal/domain/entities"
)

// ErrPurchaseOrderNumberTaken is returned by SetPurchaseOrderNumber when the order already carries a number.
var ErrPurchaseOrderNumberTaken = errors.New("purchase order number already assigned")

// IOrderRepository abstracts persistence for service orders.
//
// The engine must be able to:
//   - load an order by id (zero value when it does not exist)
//   - replace the order document (items, totals, validation sub-statuses)
//   - move the status as a separate, last write
//   - assign the purchase-order number exactly once
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	SetPurchaseOrderNumber(ctx context.Context, id, number string, status entities.OrderStatus) (entities.Order, error)
}
