package request

import (
	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money fields accept both JSON numbers and strings ("161.11").

type PartRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	MarginTier  int             `json:"margin_tier" binding:"required"`
}

type ServiceRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	MarginTier  int             `json:"margin_tier" binding:"required"`
}

type FindingRequest struct {
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category"`
	Severity      string          `json:"severity" binding:"required"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// CreateOrderRequest is the order builder payload.
type CreateOrderRequest struct {
	CustomerID string           `json:"customer_id" binding:"required"`
	VehicleID  string           `json:"vehicle_id" binding:"required"`
	Parts      []PartRequest    `json:"parts"`
	Services   []ServiceRequest `json:"services"`
}

type DiagnosisRequest struct {
	Parts    []PartRequest    `json:"parts"`
	Services []ServiceRequest `json:"services"`
	Findings []FindingRequest `json:"findings"`
}

// ValidationNoteRequest carries the note of a rejected validation.
type ValidationNoteRequest struct {
	Note string `json:"note"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		Parts:      toPartInputs(r.Parts),
		Services:   toServiceInputs(r.Services),
	}
}

func (r DiagnosisRequest) ToCommand() usecase.DiagnosisCommand {
	findings := make([]usecase.FindingInput, 0, len(r.Findings))
	for _, f := range r.Findings {
		findings = append(findings, usecase.FindingInput{
			Description:   f.Description,
			Category:      f.Category,
			Severity:      entities.Severity(f.Severity),
			EstimatedCost: f.EstimatedCost,
		})
	}
	return usecase.DiagnosisCommand{
		Parts:    toPartInputs(r.Parts),
		Services: toServiceInputs(r.Services),
		Findings: findings,
	}
}

func toPartInputs(in []PartRequest) []usecase.PartInput {
	out := make([]usecase.PartInput, 0, len(in))
	for _, p := range in {
		out = append(out, usecase.PartInput{
			Description: p.Description,
			Category:    p.Category,
			Quantity:    p.Quantity,
			UnitCost:    p.UnitCost,
			MarginTier:  p.MarginTier,
		})
	}
	return out
}

func toServiceInputs(in []ServiceRequest) []usecase.ServiceInput {
	out := make([]usecase.ServiceInput, 0, len(in))
	for _, s := range in {
		out = append(out, usecase.ServiceInput{
			Description: s.Description,
			Category:    s.Category,
			Cost:        s.Cost,
			MarginTier:  s.MarginTier,
		})
	}
	return out
}
