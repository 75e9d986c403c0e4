package usecase

import (
	"time"

	"workshop_flow/internal/domain/entities"
)

// CommandKind tags the Execute variant.
type CommandKind string

const (
	CommandAdvanceJob     CommandKind = "advance_job"
	CommandAdvanceOrder   CommandKind = "advance_order"
	CommandProposeQuote   CommandKind = "propose_quote"
	CommandResolveQuote   CommandKind = "resolve_quote"
	CommandAttachDispatch CommandKind = "attach_dispatch"
	CommandAmendDispatch  CommandKind = "amend_dispatch"
)

// EntityKind selects which aggregate a quote command targets. Advance and
// dispatch commands imply it.
type EntityKind string

const (
	EntityServiceJob EntityKind = "service_job"
	EntityPartsOrder EntityKind = "parts_order"
)

// QuoteDecision is the ResolveQuote verdict.
type QuoteDecision string

const (
	QuoteDecisionAccept QuoteDecision = "accept"
	QuoteDecisionReject QuoteDecision = "reject"
)

// Command is the single entry surface of the workflow engine. Kind decides
// which of the optional payload fields are read; the rest are ignored.
type Command struct {
	Kind            CommandKind
	EntityKind      EntityKind
	EntityID        string
	ActorID         string
	ActorRole       entities.Role
	ExpectedVersion int64

	// advance
	ToStatus string
	Bill     *entities.Bill     // required entering billing_pending
	Dispatch *entities.Dispatch // optional inline attach entering out_for_delivery

	// quotes
	Items          []entities.LineItem
	OverrideAmount *float64 // negotiated discount; logged in history
	ValidUntil     *time.Time
	Decision       QuoteDecision

	// dispatch amend
	DispatchUpdate *entities.DispatchUpdate
}

// Result carries the committed snapshot (exactly one of Job/Order set) and
// the events published for it.
type Result struct {
	Job    *entities.ServiceJob
	Order  *entities.PartsOrder
	Events []entities.Event
}
