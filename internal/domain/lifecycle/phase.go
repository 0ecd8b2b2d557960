// Package lifecycle maps order status labels to phases and decides who may act on each phase.
package lifecycle

import (
	"fmt"
	"strings"

	"taller_xpto/internal/domain/entities"
)

var phaseOrder = []entities.Phase{
	entities.PhaseDiagnosis,
	entities.PhaseCustomerAuthorization,
	entities.PhaseInvoiceUpload,
	entities.PhaseProductClassification,
	entities.PhaseProductValidation,
	entities.PhaseAdminValidation,
	entities.PhaseProductProcessing,
	entities.PhasePrePurchaseOrderValidation,
	entities.PhasePurchaseOrderGeneration,
	entities.PhaseDelivery,
}

// InitialPhase is where new orders start and where unknown labels resolve.
const InitialPhase = entities.PhaseDiagnosis

// TerminalPhase has no successor.
const TerminalPhase = entities.PhaseDelivery

var canonicalStatus = map[entities.Phase]entities.OrderStatus{
	entities.PhaseDiagnosis:                  entities.OrderStatusDiagnosis,
	entities.PhaseCustomerAuthorization:      entities.OrderStatusPendingAuthorization,
	entities.PhaseInvoiceUpload:              entities.OrderStatusAuthorized,
	entities.PhaseProductClassification:      entities.OrderStatusInvoicesUploaded,
	entities.PhaseProductValidation:          entities.OrderStatusProductsClassified,
	entities.PhaseAdminValidation:            entities.OrderStatusProductsValidated,
	entities.PhaseProductProcessing:          entities.OrderStatusAdminValidated,
	entities.PhasePrePurchaseOrderValidation: entities.OrderStatusProductsProcessed,
	entities.PhasePurchaseOrderGeneration:    entities.OrderStatusPreOCValidated,
	entities.PhaseDelivery:                   entities.OrderStatusPurchaseOrderIssued,
}

// statusPhases is keyed by the normalized label.
var statusPhases = func() map[string]entities.Phase {
	m := make(map[string]entities.Phase, len(canonicalStatus)+1)
	for phase, status := range canonicalStatus {
		m[normalize(string(status))] = phase
	}
	m[normalize(string(entities.OrderStatusDelivered))] = entities.PhaseDelivery
	return m
}()

// UnknownOrderStatusError reports a label outside the lookup table.
type UnknownOrderStatusError struct {
	Status entities.OrderStatus
}

func (e *UnknownOrderStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", string(e.Status))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phases returns the ordered phase list.
func Phases() []entities.Phase {
	out := make([]entities.Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// IsKnownPhase reports whether p belongs to the phase list.
func IsKnownPhase(p entities.Phase) bool {
	return Index(p) >= 0
}

// Index returns the position of p in the phase list, or -1.
func Index(p entities.Phase) int {
	for i, candidate := range phaseOrder {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Next returns the phase after p; false for the terminal or an unknown phase.
func Next(p entities.Phase) (entities.Phase, bool) {
	i := Index(p)
	if i < 0 || i == len(phaseOrder)-1 {
		return "", false
	}
	return phaseOrder[i+1], true
}

// ResolvePhase maps a status label to its phase. Unknown labels resolve to the initial phase
// together with an *UnknownOrderStatusError the caller is expected to log.
func ResolvePhase(status entities.OrderStatus) (entities.Phase, error) {
	if phase, ok := statusPhases[normalize(string(status))]; ok {
		return phase, nil
	}
	return InitialPhase, &UnknownOrderStatusError{Status: status}
}

// PhaseFromStatus is the total form of ResolvePhase.
func PhaseFromStatus(status entities.OrderStatus) entities.Phase {
	phase, _ := ResolvePhase(status)
	return phase
}

// StatusForPhase returns the canonical label written when an order enters p.
func StatusForPhase(p entities.Phase) entities.OrderStatus {
	return canonicalStatus[p]
}
