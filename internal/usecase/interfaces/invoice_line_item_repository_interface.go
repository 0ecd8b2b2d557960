package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// IInvoiceLineItemRepository persists invoice line items. ListByOrderID returns them sorted by LineNumber.
type IInvoiceLineItemRepository interface {
	ListByOrderID(ctx context.Context, orderID string) ([]entities.InvoiceLineItem, error)
	SaveAll(ctx context.Context, items []entities.InvoiceLineItem) error
}
