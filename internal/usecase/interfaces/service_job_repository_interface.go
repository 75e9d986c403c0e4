package interfaces

import (
	"context"
	"errors"

	"workshop_flow/internal/domain/entities"
)

// ErrVersionConflict is returned by CommitIfVersion when the stored version
// no longer matches the expected one. The caller reloads and retries.
var ErrVersionConflict = errors.New("version conflict")

// IServiceJobRepository abstracts ServiceJob persistence.
//
// Load returns the zero value with a nil error when the id is unknown, in
// line with the other repositories in this module. CommitIfVersion is the
// only write path after creation and must be atomic: state, version and the
// appended history entry land together or not at all.

type IServiceJobRepository interface {
	Create(ctx context.Context, job entities.ServiceJob) (entities.ServiceJob, error)
	Load(ctx context.Context, id string) (entities.ServiceJob, error)
	CommitIfVersion(ctx context.Context, id string, expectedVersion int64, job entities.ServiceJob) (entities.ServiceJob, error)
}
