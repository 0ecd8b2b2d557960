package interfaces

import (
	"context"

	"taller_xpto/internal/domain/entities"
)

// IDeliveryPaymentRepository abstracts DynamoDB persistence for DeliveryPayment.

type IDeliveryPaymentRepository interface {
	Create(ctx context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.DeliveryPayment, error)
}
