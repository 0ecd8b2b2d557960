package response

import (
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"
)

// OrderResponse is the order document plus the phase its status resolves to.
type OrderResponse struct {
	entities.Order
	Phase entities.Phase `json:"phase"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{Order: o, Phase: lifecycle.PhaseFromStatus(o.Status)}
}
