package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IWorkflowUseCase exposes the workflow engine to transport adapters.
//
// Execute is the single mutation surface: every lifecycle change of a
// ServiceJob or PartsOrder goes through one of its six command variants.
// Creation and reads sit next to it so the HTTP layer needs nothing else.

type IWorkflowUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.ServiceJob, error)
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.PartsOrder, error)
	Execute(ctx context.Context, cmd Command) (Result, error)
	GetJob(ctx context.Context, id string) (entities.ServiceJob, error)
	GetOrder(ctx context.Context, id string) (entities.PartsOrder, error)
}

// WorkflowEngine validates a command against the transition graph, the role
// tables and the sub-workflow gates, commits the new snapshot with an
// optimistic version check, then publishes the resulting events.
//
// Validation always runs before any persistence, so a failed call leaves the
// stored entity byte-for-byte unchanged and a retry is safe.

type WorkflowEngine struct {
	jobs   interfaces.IServiceJobRepository
	orders interfaces.IPartsOrderRepository
	auth   Authorizer
	sink   interfaces.IEventSink
}

var _ IWorkflowUseCase = (*WorkflowEngine)(nil)

func NewWorkflowEngine(jobs interfaces.IServiceJobRepository, orders interfaces.IPartsOrderRepository, sink interfaces.IEventSink) *WorkflowEngine {
	return &WorkflowEngine{jobs: jobs, orders: orders, auth: NewAuthorizer(), sink: sink}
}

func (e *WorkflowEngine) Execute(ctx context.Context, cmd Command) (Result, error) {
	cmd.EntityID = strings.TrimSpace(cmd.EntityID)
	cmd.ActorID = strings.TrimSpace(cmd.ActorID)
	if cmd.EntityID == "" {
		return Result{}, ErrInvalidEntityID
	}
	if cmd.ActorID == "" || !entities.ValidRole(cmd.ActorRole) {
		return Result{}, ErrInvalidActor
	}

	switch cmd.Kind {
	case CommandAdvanceJob:
		return e.advanceJob(ctx, cmd)
	case CommandAdvanceOrder:
		return e.advanceOrder(ctx, cmd)
	case CommandProposeQuote:
		return e.proposeQuote(ctx, cmd)
	case CommandResolveQuote:
		return e.resolveQuote(ctx, cmd)
	case CommandAttachDispatch:
		return e.attachDispatch(ctx, cmd)
	case CommandAmendDispatch:
		return e.amendDispatch(ctx, cmd)
	default:
		return Result{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidCommand, cmd.Kind)
	}
}

// CreateJobInput seeds a new repair job. Broadcast offers the job to any
// technician; otherwise TechnicianID carries the direct assignment (the two
// are mutually exclusive).
type CreateJobInput struct {
	CustomerID   string
	TechnicianID string
	Broadcast    bool
}

func (e *WorkflowEngine) CreateJob(ctx context.Context, in CreateJobInput) (entities.ServiceJob, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.TechnicianID = strings.TrimSpace(in.TechnicianID)
	if in.CustomerID == "" {
		return entities.ServiceJob{}, fmt.Errorf("%w: customer id required", ErrInvalidCommand)
	}
	if in.Broadcast && in.TechnicianID != "" {
		return entities.ServiceJob{}, fmt.Errorf("%w: broadcast job cannot carry a direct assignment", ErrInvalidCommand)
	}

	now := time.Now().UTC()
	job := entities.ServiceJob{
		ID:           uuid.NewString(),
		CustomerID:   in.CustomerID,
		TechnicianID: in.TechnicianID,
		Status:       entities.JobStatusPending,
		Broadcast:    in.Broadcast,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return e.jobs.Create(ctx, job)
}

// CreateOrderInput seeds a parts order. Priced orders start in pending with
// fully priced items; unpriced ones start in inquiry awaiting a quote.
type CreateOrderInput struct {
	BuyerID    string
	BuyerRole  entities.Role
	SupplierID string
	Items      []entities.LineItem
	Priced     bool
}

func (e *WorkflowEngine) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.PartsOrder, error) {
	in.BuyerID = strings.TrimSpace(in.BuyerID)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	if in.BuyerID == "" || in.SupplierID == "" {
		return entities.PartsOrder{}, fmt.Errorf("%w: buyer and supplier ids required", ErrInvalidCommand)
	}
	if !entities.ValidBuyerRole(in.BuyerRole) {
		return entities.PartsOrder{}, fmt.Errorf("%w: buyer role must be customer or technician", ErrInvalidCommand)
	}
	if len(in.Items) == 0 {
		return entities.PartsOrder{}, fmt.Errorf("%w: order needs at least one item", ErrInvalidCommand)
	}

	status := entities.OrderStatusInquiry
	if in.Priced {
		if entities.ItemsTotal(in.Items) <= 0 {
			return entities.PartsOrder{}, fmt.Errorf("%w: priced order needs a positive total", ErrInvalidCommand)
		}
		status = entities.OrderStatusPending
	}

	now := time.Now().UTC()
	order := entities.PartsOrder{
		ID:         uuid.NewString(),
		BuyerID:    in.BuyerID,
		BuyerRole:  in.BuyerRole,
		SupplierID: in.SupplierID,
		Status:     status,
		Items:      append([]entities.LineItem(nil), in.Items...),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return e.orders.Create(ctx, order)
}

func (e *WorkflowEngine) GetJob(ctx context.Context, id string) (entities.ServiceJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceJob{}, ErrInvalidEntityID
	}
	return e.loadJob(ctx, id)
}

func (e *WorkflowEngine) GetOrder(ctx context.Context, id string) (entities.PartsOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PartsOrder{}, ErrInvalidEntityID
	}
	return e.loadOrder(ctx, id)
}

func (e *WorkflowEngine) loadJob(ctx context.Context, id string) (entities.ServiceJob, error) {
	job, err := e.jobs.Load(ctx, id)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	if job.ID == "" {
		return entities.ServiceJob{}, fmt.Errorf("%w: job %s", ErrNotFound, id)
	}
	return job, nil
}

func (e *WorkflowEngine) loadOrder(ctx context.Context, id string) (entities.PartsOrder, error) {
	order, err := e.orders.Load(ctx, id)
	if err != nil {
		return entities.PartsOrder{}, err
	}
	if order.ID == "" {
		return entities.PartsOrder{}, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return order, nil
}

// guardJob runs the checks shared by every job command: terminal state first
// (terminal entities refuse everything), then the optimistic version.
func guardJob(job entities.ServiceJob, expectedVersion int64) error {
	if entities.JobTerminal(job.Status) {
		return fmt.Errorf("%w: job %s is %s", ErrTerminalState, job.ID, job.Status)
	}
	if job.Version != expectedVersion {
		return fmt.Errorf("%w: job %s at version %d, expected %d", ErrStaleVersion, job.ID, job.Version, expectedVersion)
	}
	return nil
}

func guardOrder(order entities.PartsOrder, expectedVersion int64) error {
	if entities.OrderTerminal(order.Status) {
		return fmt.Errorf("%w: order %s is %s", ErrTerminalState, order.ID, order.Status)
	}
	if order.Version != expectedVersion {
		return fmt.Errorf("%w: order %s at version %d, expected %d", ErrStaleVersion, order.ID, order.Version, expectedVersion)
	}
	return nil
}

// applyJob moves the snapshot and appends the single history record for this
// command. From may equal to for in-place mutations (quote proposed,
// dispatch attached).
func applyJob(job *entities.ServiceJob, to entities.JobStatus, cmd Command, note string, now time.Time) {
	job.History = append(job.History, entities.TransitionRecord{
		From:      string(job.Status),
		To:        string(to),
		ActorID:   cmd.ActorID,
		ActorRole: cmd.ActorRole,
		Timestamp: now,
		Note:      note,
	})
	job.Status = to
	job.Version++
	job.UpdatedAt = now
}

func applyOrder(order *entities.PartsOrder, to entities.OrderStatus, cmd Command, note string, now time.Time) {
	order.History = append(order.History, entities.TransitionRecord{
		From:      string(order.Status),
		To:        string(to),
		ActorID:   cmd.ActorID,
		ActorRole: cmd.ActorRole,
		Timestamp: now,
		Note:      note,
	})
	order.Status = to
	order.Version++
	order.UpdatedAt = now
}

func (e *WorkflowEngine) commitJob(ctx context.Context, cmd Command, job entities.ServiceJob, events []entities.Event) (Result, error) {
	saved, err := e.jobs.CommitIfVersion(ctx, job.ID, cmd.ExpectedVersion, job)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return Result{}, fmt.Errorf("%w: job %s", ErrStaleVersion, job.ID)
		}
		return Result{}, err
	}
	e.publish(ctx, events)
	return Result{Job: &saved, Events: events}, nil
}

func (e *WorkflowEngine) commitOrder(ctx context.Context, cmd Command, order entities.PartsOrder, events []entities.Event) (Result, error) {
	saved, err := e.orders.CommitIfVersion(ctx, order.ID, cmd.ExpectedVersion, order)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return Result{}, fmt.Errorf("%w: order %s", ErrStaleVersion, order.ID)
		}
		return Result{}, err
	}
	e.publish(ctx, events)
	return Result{Order: &saved, Events: events}, nil
}

// publish is best-effort: the commit already happened, consumers reconcile
// eventually. Failures are logged, never surfaced to the workflow caller.
func (e *WorkflowEngine) publish(ctx context.Context, events []entities.Event) {
	if e.sink == nil {
		return
	}
	for _, ev := range events {
		if err := e.sink.Publish(ctx, ev); err != nil {
			log.Printf("[workflow][engine] event publish failed kind=%s entity=%s err=%v", ev.Kind, ev.EntityID, err)
		}
	}
}
