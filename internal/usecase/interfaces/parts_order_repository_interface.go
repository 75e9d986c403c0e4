package interfaces

import (
	"context"

	"workshop_flow/internal/domain/entities"
)

// IPartsOrderRepository abstracts PartsOrder persistence. Same contract as
// IServiceJobRepository: zero value + nil for unknown ids, ErrVersionConflict
// on a lost optimistic-concurrency race.

type IPartsOrderRepository interface {
	Create(ctx context.Context, order entities.PartsOrder) (entities.PartsOrder, error)
	Load(ctx context.Context, id string) (entities.PartsOrder, error)
	CommitIfVersion(ctx context.Context, id string, expectedVersion int64, order entities.PartsOrder) (entities.PartsOrder, error)
}
