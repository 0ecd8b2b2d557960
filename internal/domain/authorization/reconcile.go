// Package authorization unifies parts, services and diagnostic findings into one decision
// surface and reconciles the customer's decisions back into their origin collections.
package authorization

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"taller_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	urgentThreshold      = decimal.NewFromInt(1000)
	recommendedThreshold = decimal.NewFromInt(500)
)

// MissingRejectionReasonError lists rejected items submitted without a reason.
type MissingRejectionReasonError struct {
	ItemIDs []string
}

func (e *MissingRejectionReasonError) Error() string {
	return fmt.Sprintf("rejection reason required for: %s", strings.Join(e.ItemIDs, ", "))
}

// InconsistentDecisionError is returned when an item is marked both authorized and rejected.
type InconsistentDecisionError struct {
	ItemID string
}

func (e *InconsistentDecisionError) Error() string {
	return fmt.Sprintf("item %s cannot be both authorized and rejected", e.ItemID)
}

// UnknownItemError is returned for decisions on items that are not on the order.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("item %s is not part of the order", e.ItemID)
}

// OriginMismatchError means the unified list and an origin collection disagree on membership.
type OriginMismatchError struct {
	ItemID string
}

func (e *OriginMismatchError) Error() string {
	return fmt.Sprintf("item %s is missing from the unified list or its origin collection", e.ItemID)
}

// DecisionInput is one customer decision as submitted by the caller.
type DecisionInput struct {
	ItemID     string
	Authorized bool
	Rejected   bool
	Reason     string
}

// Totals partitions item amounts by decision.
type Totals struct {
	Authorized decimal.Decimal `json:"authorized"`
	Rejected   decimal.Decimal `json:"rejected"`
	Pending    decimal.Decimal `json:"pending"`
	All        decimal.Decimal `json:"all"`
}

// BuildUnifiedList concatenates parts, services and findings. Items not originated in the
// diagnosis default to authorized when still pending; duplicated origins are kept once.
func BuildUnifiedList(parts []entities.Part, services []entities.Service, findings []entities.DiagnosticFinding) []entities.AuthorizableItem {
	items := make([]entities.AuthorizableItem, 0, len(parts)+len(services)+len(findings))
	seen := make(map[string]struct{}, cap(items))
	add := func(it entities.AuthorizableItem) {
		if _, dup := seen[it.Key]; dup {
			return
		}
		seen[it.Key] = struct{}{}
		if it.Decision.IsPending() {
			if it.FromDiagnostic {
				it.Decision = entities.PendingDecision()
			} else {
				it.Decision = entities.Decision{State: entities.DecisionAuthorized}
			}
		}
		items = append(items, it)
	}

	for _, p := range parts {
		add(entities.AuthorizableItem{
			Key:            entities.ItemKey(entities.ItemKindPart, p.ID),
			Kind:           entities.ItemKindPart,
			OriginID:       p.ID,
			Description:    p.Description,
			Category:       p.Category,
			EstimatedCost:  p.EstimatedCost(),
			Amount:         p.Amount(),
			FromDiagnostic: p.FromDiagnostic,
			Decision:       p.Decision,
		})
	}
	for _, s := range services {
		add(entities.AuthorizableItem{
			Key:            entities.ItemKey(entities.ItemKindService, s.ID),
			Kind:           entities.ItemKindService,
			OriginID:       s.ID,
			Description:    s.Description,
			Category:       s.Category,
			EstimatedCost:  s.EstimatedCost(),
			Amount:         s.Amount(),
			FromDiagnostic: s.FromDiagnostic,
			Decision:       s.Decision,
		})
	}
	for _, f := range findings {
		add(entities.AuthorizableItem{
			Key:            entities.ItemKey(entities.ItemKindFinding, f.ID),
			Kind:           entities.ItemKindFinding,
			OriginID:       f.ID,
			Description:    f.Description,
			Category:       f.Category,
			EstimatedCost:  f.EstimatedCost,
			Amount:         f.EstimatedCost,
			FromDiagnostic: true,
			Severity:       f.Severity,
			Decision:       f.Decision,
		})
	}
	return items
}

// Toggle records a decision on item. Authorizing clears a rejection and vice versa.
func Toggle(item entities.AuthorizableItem, authorize bool, reason string, at time.Time) entities.AuthorizableItem {
	if authorize {
		item.Decision = entities.AuthorizedDecision(at)
	} else {
		item.Decision = entities.RejectedDecision(strings.TrimSpace(reason), at)
	}
	return item
}

// Apply returns a copy of items with the submitted decisions applied. Items without an input
// keep their current decision. An input with neither flag resets the item to pending.
func Apply(items []entities.AuthorizableItem, inputs []DecisionInput, at time.Time) ([]entities.AuthorizableItem, error) {
	out := make([]entities.AuthorizableItem, len(items))
	copy(out, items)

	index := make(map[string]int, len(out))
	for i, it := range out {
		index[it.Key] = i
	}

	for _, in := range inputs {
		key := strings.TrimSpace(in.ItemID)
		i, ok := index[key]
		if !ok {
			return nil, &UnknownItemError{ItemID: key}
		}
		switch {
		case in.Authorized && in.Rejected:
			return nil, &InconsistentDecisionError{ItemID: key}
		case in.Authorized:
			out[i] = Toggle(out[i], true, "", at)
		case in.Rejected:
			out[i] = Toggle(out[i], false, in.Reason, at)
		default:
			out[i].Decision = entities.PendingDecision()
		}
	}
	return out, nil
}

// ValidateReasons fails with every rejected item that lacks a reason.
func ValidateReasons(items []entities.AuthorizableItem) error {
	var missing []string
	for _, it := range items {
		if it.Decision.IsRejected() && strings.TrimSpace(it.Decision.Reason) == "" {
			missing = append(missing, it.Key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingRejectionReasonError{ItemIDs: missing}
}

// Partition sums item amounts per decision. Each item lands in exactly one bucket.
func Partition(items []entities.AuthorizableItem) Totals {
	t := Totals{Authorized: decimal.Zero, Rejected: decimal.Zero, Pending: decimal.Zero, All: decimal.Zero}
	for _, it := range items {
		t.All = t.All.Add(it.Amount)
		switch {
		case it.Decision.IsAuthorized():
			t.Authorized = t.Authorized.Add(it.Amount)
		case it.Decision.IsRejected():
			t.Rejected = t.Rejected.Add(it.Amount)
		default:
			t.Pending = t.Pending.Add(it.Amount)
		}
	}
	return t
}

// LostSaleSeverity derives the analytics severity of a rejected item. Services are graded on
// their shop cost, not on the customer price.
func LostSaleSeverity(item entities.AuthorizableItem) entities.Severity {
	switch item.Kind {
	case entities.ItemKindFinding:
		if item.Severity.IsValid() {
			return item.Severity
		}
		return entities.SeverityRecommended
	case entities.ItemKindService:
		switch {
		case item.EstimatedCost.GreaterThan(urgentThreshold):
			return entities.SeverityUrgent
		case item.EstimatedCost.GreaterThan(recommendedThreshold):
			return entities.SeverityRecommended
		default:
			return entities.SeverityGood
		}
	default:
		return entities.SeverityRecommended
	}
}

// LostSales emits one record per rejected item.
func LostSales(orderID string, round int, items []entities.AuthorizableItem, at time.Time, newID func() string) []entities.LostSaleRecord {
	var records []entities.LostSaleRecord
	for _, it := range items {
		if !it.Decision.IsRejected() {
			continue
		}
		records = append(records, entities.LostSaleRecord{
			ID:            newID(),
			OrderID:       orderID,
			ItemKey:       it.Key,
			ItemKind:      it.Kind,
			ItemName:      it.Description,
			Category:      it.Category,
			Severity:      LostSaleSeverity(it),
			Reason:        it.Decision.Reason,
			EstimatedCost: it.EstimatedCost,
			Round:         round,
			CreatedAt:     at,
		})
	}
	return records
}

// Origins are the three collections decisions are written back to.
type Origins struct {
	Parts    []entities.Part
	Services []entities.Service
	Findings []entities.DiagnosticFinding
}

// WriteBack copies every unified decision onto its origin item. Each collection is updated
// independently; membership must match exactly in both directions.
func WriteBack(items []entities.AuthorizableItem, origins Origins) (Origins, error) {
	decisions := make(map[string]entities.Decision, len(items))
	for _, it := range items {
		decisions[it.Key] = it.Decision
	}
	used := make(map[string]struct{}, len(items))

	lookup := func(kind entities.ItemKind, id string) (entities.Decision, error) {
		key := entities.ItemKey(kind, id)
		d, ok := decisions[key]
		if !ok {
			return entities.Decision{}, &OriginMismatchError{ItemID: key}
		}
		used[key] = struct{}{}
		return d, nil
	}

	out := Origins{
		Parts:    make([]entities.Part, len(origins.Parts)),
		Services: make([]entities.Service, len(origins.Services)),
		Findings: make([]entities.DiagnosticFinding, len(origins.Findings)),
	}
	for i, p := range origins.Parts {
		d, err := lookup(entities.ItemKindPart, p.ID)
		if err != nil {
			return Origins{}, err
		}
		p.Decision = d
		out.Parts[i] = p
	}
	for i, s := range origins.Services {
		d, err := lookup(entities.ItemKindService, s.ID)
		if err != nil {
			return Origins{}, err
		}
		s.Decision = d
		out.Services[i] = s
	}
	for i, f := range origins.Findings {
		d, err := lookup(entities.ItemKindFinding, f.ID)
		if err != nil {
			return Origins{}, err
		}
		f.Decision = d
		out.Findings[i] = f
	}

	for _, it := range items {
		if _, ok := used[it.Key]; !ok {
			return Origins{}, &OriginMismatchError{ItemID: it.Key}
		}
	}
	return out, nil
}
