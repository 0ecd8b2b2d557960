package request

import "taller_xpto/internal/domain/authorization"

// DecisionRequest is the customer's decision on one item, addressed by its key ("service:<id>").
type DecisionRequest struct {
	ItemID     string `json:"item_id" binding:"required"`
	Authorized bool   `json:"authorized"`
	Rejected   bool   `json:"rejected"`
	Reason     string `json:"reason"`
}

type SubmitAuthorizationRequest struct {
	Decisions []DecisionRequest `json:"decisions"`
}

func (r SubmitAuthorizationRequest) ToDecisions() []authorization.DecisionInput {
	out := make([]authorization.DecisionInput, 0, len(r.Decisions))
	for _, d := range r.Decisions {
		out = append(out, authorization.DecisionInput{
			ItemID:     d.ItemID,
			Authorized: d.Authorized,
			Rejected:   d.Rejected,
			Reason:     d.Reason,
		})
	}
	return out
}
