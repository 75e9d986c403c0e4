// Package memory holds the in-memory reference implementation of the
// repository contracts. It is the substitutability proof for the storage
// interface and the default store for tests and local runs.
package memory

import (
	"context"
	"sync"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase/interfaces"
)

// JobRepository keeps ServiceJob snapshots guarded by a mutex. Values are
// cloned on the way in and out so callers can never mutate shared state, and
// the version compare inside the lock gives the same commit-if-version
// guarantee as the conditional write in DynamoDB.

type JobRepository struct {
	mu   sync.Mutex
	jobs map[string]entities.ServiceJob
}

var _ interfaces.IServiceJobRepository = (*JobRepository)(nil)

func NewJobRepository() *JobRepository {
	return &JobRepository{jobs: make(map[string]entities.ServiceJob)}
}

func (r *JobRepository) Create(_ context.Context, job entities.ServiceJob) (entities.ServiceJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job.Clone()
	return job, nil
}

func (r *JobRepository) Load(_ context.Context, id string) (entities.ServiceJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return entities.ServiceJob{}, nil
	}
	return job.Clone(), nil
}

func (r *JobRepository) CommitIfVersion(_ context.Context, id string, expectedVersion int64, job entities.ServiceJob) (entities.ServiceJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[id]
	if !ok || stored.Version != expectedVersion {
		return entities.ServiceJob{}, interfaces.ErrVersionConflict
	}
	r.jobs[id] = job.Clone()
	return job, nil
}

// OrderRepository is the PartsOrder counterpart of JobRepository.
type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]entities.PartsOrder
}

var _ interfaces.IPartsOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]entities.PartsOrder)}
}

func (r *OrderRepository) Create(_ context.Context, order entities.PartsOrder) (entities.PartsOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order.Clone()
	return order, nil
}

func (r *OrderRepository) Load(_ context.Context, id string) (entities.PartsOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return entities.PartsOrder{}, nil
	}
	return order.Clone(), nil
}

func (r *OrderRepository) CommitIfVersion(_ context.Context, id string, expectedVersion int64, order entities.PartsOrder) (entities.PartsOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[id]
	if !ok || stored.Version != expectedVersion {
		return entities.PartsOrder{}, interfaces.ErrVersionConflict
	}
	r.orders[id] = order.Clone()
	return order, nil
}
