package entities

import "time"

// EventKind names the intents the engine emits for downstream consumers
// (notifications, wallet, inventory). The kind doubles as the routing key on
// the message-broker sink.

type EventKind string

const (
	EventJobStateChanged          EventKind = "job.state_changed"
	EventOrderStateChanged        EventKind = "order.state_changed"
	EventSettleTechnicianEarnings EventKind = "wallet.settle_technician_earnings"
	EventCreditSupplierWallet     EventKind = "wallet.credit_supplier"
	EventAdjustSupplierInventory  EventKind = "inventory.adjust_supplier"
)

// Event is published after a successful commit, never before. Consumers
// reconcile cross-entity consistency from these; the engine itself commits
// one entity at a time.
type Event struct {
	Kind       EventKind `json:"kind"`
	EntityID   string    `json:"entity_id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
