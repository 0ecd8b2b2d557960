package entities

import "time"

// DecisionState is the tri-state customer decision on an authorizable item.
type DecisionState string

const (
	DecisionPending    DecisionState = "pending"
	DecisionAuthorized DecisionState = "authorized"
	DecisionRejected   DecisionState = "rejected"
)

// Decision holds one customer decision. Authorized and rejected are states of the same
// field, so an item can never carry both. Reason is only set for rejections.
type Decision struct {
	State     DecisionState `json:"state"`
	Reason    string        `json:"reason,omitempty"`
	DecidedAt *time.Time    `json:"decided_at,omitempty"`
}

func PendingDecision() Decision {
	return Decision{State: DecisionPending}
}

func AuthorizedDecision(at time.Time) Decision {
	return Decision{State: DecisionAuthorized, DecidedAt: &at}
}

func RejectedDecision(reason string, at time.Time) Decision {
	return Decision{State: DecisionRejected, Reason: reason, DecidedAt: &at}
}

// IsPending treats the zero value as pending so decoded records without a state behave.
func (d Decision) IsPending() bool {
	return d.State == "" || d.State == DecisionPending
}

func (d Decision) IsAuthorized() bool {
	return d.State == DecisionAuthorized
}

func (d Decision) IsRejected() bool {
	return d.State == DecisionRejected
}
