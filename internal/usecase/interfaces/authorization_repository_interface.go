package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// ILostSaleRepository is append-only: records are never updated or deleted.
type ILostSaleRepository interface {
	Append(ctx context.Context, r entities.LostSaleRecord) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.LostSaleRecord, error)
}

// IAuthorizationAuditRepository keeps the dated trail of decisions on diagnostic findings.
type IAuthorizationAuditRepository interface {
	Append(ctx context.Context, a entities.AuthorizationAudit) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.AuthorizationAudit, error)
}
