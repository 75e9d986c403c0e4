package entities

import "time"

// TransitionRecord is one append-only history entry. Exactly one record is
// appended per committed workflow command; failed commands append nothing.
//
// From and To are stored as plain strings so ServiceJob and PartsOrder can
// share the same history shape. From equals To for commands that mutate the
// entity without moving it (quote proposed in place, dispatch attached).

type TransitionRecord struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   string    `json:"actor_id"`
	ActorRole Role      `json:"actor_role"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}
