// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Outcome is the terminal state of a single channel evaluation.
type Outcome string

const (
	// OutcomeEligible means every policy gate passed; a send was attempted
	// but the dispatcher did not accept it.
	OutcomeEligible Outcome = "eligible"
	// OutcomeSuppressed means a policy gate failed; no side effect occurred.
	OutcomeSuppressed Outcome = "suppressed"
	// OutcomeSent means the dispatcher accepted the send request.
	OutcomeSent Outcome = "sent"
)

// SuppressReason names the first policy gate that failed. Gates are checked
// in a fixed short-circuit order, so exactly one reason applies.
type SuppressReason string

const (
	SuppressLocationInactive SuppressReason = "location_inactive"
	SuppressNoGeofence       SuppressReason = "no_geofence"
	SuppressOutsideFence     SuppressReason = "outside_fence"
	SuppressChannelDisabled  SuppressReason = "channel_disabled"
	SuppressOutsideWindow    SuppressReason = "outside_window"
	SuppressCooldownActive   SuppressReason = "cooldown_active"
	// SuppressNoRecipient covers visitors with no contact registered for the
	// channel. Not part of the original reason set; treated like any other
	// configuration absence (suppress, never error).
	SuppressNoRecipient SuppressReason = "no_recipient"
)

// ChannelDecision is the evaluation result for one channel of one location.
type ChannelDecision struct {
	Channel Channel        `json:"channel"`
	Outcome Outcome        `json:"outcome"`
	Reason  SuppressReason `json:"reason,omitempty"` // Set only when Outcome is suppressed.
	Error   string         `json:"error,omitempty"`  // Dispatcher error detail when Outcome is eligible (attempted but not accepted).
}

// LocationEvaluation is the full result of evaluating one position update
// against one location: whether the fence was entered plus the independent
// per-channel decisions.
type LocationEvaluation struct {
	LocationID   uuid.UUID         `json:"location_id"`
	VisitorID    uuid.UUID         `json:"visitor_id"`
	EnteredFence bool              `json:"entered_fence"`
	Decisions    []ChannelDecision `json:"decisions"`
}

// SentCount returns how many channels dispatched successfully.
func (e *LocationEvaluation) SentCount() int {
	count := 0
	for _, d := range e.Decisions {
		if d.Outcome == OutcomeSent {
			count++
		}
	}

	return count
}
