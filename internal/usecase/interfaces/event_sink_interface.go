package interfaces

import (
	"context"

	"workshop_flow/internal/domain/entities"
)

// IEventSink abstracts the outbound event channel (message broker, in-memory
// recorder). Publish is called only after a successful commit; a publish
// failure is logged by the engine, not surfaced to the workflow caller.
type IEventSink interface {
	Publish(ctx context.Context, event entities.Event) error
}
