package usecase

import (
	"fmt"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixedClock() time.Time { return testNow }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// orderInAuthorization is the three-item order used across the authorization tests.
func orderInAuthorization() entities.Order {
	return entities.Order{
		ID:     "os-1",
		Status: entities.OrderStatusPendingAuthorization,
		Parts: []entities.Part{
			{ID: "A", Description: "Balatas delanteras", Category: "frenos", Quantity: 1, UnitCost: dec("300"), UnitPrice: dec("450"), Decision: entities.Decision{State: entities.DecisionAuthorized}},
		},
		Services: []entities.Service{
			{ID: "B", Description: "Cambio de amortiguadores", Category: "suspension", Cost: dec("600"), MarginTier: 50, Price: dec("1392"), FromDiagnostic: true},
		},
		Findings: []entities.DiagnosticFinding{
			{ID: "C", Description: "Fuga de aceite", Category: "motor", Severity: entities.SeverityUrgent, EstimatedCost: dec("1500")},
		},
		AdminValidationStatus: entities.ValidationPending,
		PreOCValidationStatus: entities.ValidationPending,
	}
}
