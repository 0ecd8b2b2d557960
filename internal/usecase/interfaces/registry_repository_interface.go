package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// ICatalogRepository looks up known products by their description.
// A zero CatalogEntry (empty SKU) means no match.
type ICatalogRepository interface {
	FindByDescription(ctx context.Context, description string) (entities.CatalogEntry, error)
}

// ISupplierRepository answers whether a supplier RFC is registered and active.
type ISupplierRepository interface {
	IsActive(ctx context.Context, rfc string) (bool, error)
}

// ISequenceRepository hands out monotonically increasing numbers per counter name.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
