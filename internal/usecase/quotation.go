package usecase

import (
	"context"
	"fmt"
	"time"

	"workshop_flow/internal/domain/entities"

	"github.com/google/uuid"
)

// Quotation sub-workflow: propose/accept/reject gates entry into the main
// fulfilment path. Proposing moves pending->quote_pending (job) or
// inquiry->quoted (order); resolving walks the accept/reject edge for the
// counter-party of the issuer.

func (e *WorkflowEngine) proposeQuote(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Items) == 0 {
		return Result{}, fmt.Errorf("%w: a quote needs at least one line item", ErrEmptyQuote)
	}
	total := entities.ItemsTotal(cmd.Items)
	note := "quote proposed"
	if cmd.OverrideAmount != nil {
		if *cmd.OverrideAmount <= 0 {
			return Result{}, fmt.Errorf("%w: override amount must be positive", ErrInvalidCommand)
		}
		total = *cmd.OverrideAmount
		note = fmt.Sprintf("quote proposed with negotiated total %.2f", total)
	}

	switch cmd.EntityKind {
	case EntityServiceJob:
		return e.proposeJobQuote(ctx, cmd, total, note)
	case EntityPartsOrder:
		return e.proposeOrderQuote(ctx, cmd, total, note)
	default:
		return Result{}, fmt.Errorf("%w: unknown entity kind %q", ErrInvalidCommand, cmd.EntityKind)
	}
}

func (e *WorkflowEngine) proposeJobQuote(ctx context.Context, cmd Command, total float64, note string) (Result, error) {
	job, err := e.loadJob(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardJob(job, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}
	if job.Status != entities.JobStatusPending && job.Status != entities.JobStatusQuotePending {
		return Result{}, fmt.Errorf("%w: job in %s is not quote-eligible", ErrIllegalTransition, job.Status)
	}
	if cmd.ActorRole != entities.RoleTechnician {
		return Result{}, fmt.Errorf("%w: only a technician quotes a repair job", ErrForbiddenRole)
	}
	if job.TechnicianID != "" && job.TechnicianID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: job %s is assigned to another technician", ErrForbiddenRole, job.ID)
	}

	if job.Quote != nil && !job.Quote.Resolved() {
		job.Quote.Status = entities.QuoteStatusExpired
		note = note + "; supersedes quote " + job.Quote.ID
	}
	quote := newQuote(cmd, total)
	job.Quote = &quote

	now := time.Now().UTC()
	from := job.Status
	applyJob(&job, entities.JobStatusQuotePending, cmd, note, now)

	var events []entities.Event
	if from != entities.JobStatusQuotePending {
		events = append(events, entities.Event{
			Kind:       entities.EventJobStateChanged,
			EntityID:   job.ID,
			FromStatus: string(from),
			ToStatus:   string(entities.JobStatusQuotePending),
			OccurredAt: now,
		})
	}
	return e.commitJob(ctx, cmd, job, events)
}

func (e *WorkflowEngine) proposeOrderQuote(ctx context.Context, cmd Command, total float64, note string) (Result, error) {
	order, err := e.loadOrder(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardOrder(order, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}
	if order.Status != entities.OrderStatusInquiry && order.Status != entities.OrderStatusQuoted {
		return Result{}, fmt.Errorf("%w: order in %s is not quote-eligible", ErrIllegalTransition, order.Status)
	}
	if cmd.ActorRole != entities.RoleSupplier {
		return Result{}, fmt.Errorf("%w: only the supplier quotes a parts order", ErrForbiddenRole)
	}
	if order.SupplierID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: order %s belongs to another supplier", ErrForbiddenRole, order.ID)
	}

	if order.Quote != nil && !order.Quote.Resolved() {
		order.Quote.Status = entities.QuoteStatusExpired
		note = note + "; supersedes quote " + order.Quote.ID
	}
	quote := newQuote(cmd, total)
	order.Quote = &quote

	now := time.Now().UTC()
	from := order.Status
	applyOrder(&order, entities.OrderStatusQuoted, cmd, note, now)

	var events []entities.Event
	if from != entities.OrderStatusQuoted {
		events = append(events, entities.Event{
			Kind:       entities.EventOrderStateChanged,
			EntityID:   order.ID,
			FromStatus: string(from),
			ToStatus:   string(entities.OrderStatusQuoted),
			OccurredAt: now,
		})
	}
	return e.commitOrder(ctx, cmd, order, events)
}

func newQuote(cmd Command, total float64) entities.Quote {
	return entities.Quote{
		ID:           uuid.NewString(),
		Items:        append([]entities.LineItem(nil), cmd.Items...),
		TotalAmount:  total,
		IssuedBy:     cmd.ActorID,
		IssuedByRole: cmd.ActorRole,
		IssuedAt:     time.Now().UTC(),
		Status:       entities.QuoteStatusProposed,
		ValidUntil:   cmd.ValidUntil,
	}
}

func (e *WorkflowEngine) resolveQuote(ctx context.Context, cmd Command) (Result, error) {
	if cmd.Decision != QuoteDecisionAccept && cmd.Decision != QuoteDecisionReject {
		return Result{}, fmt.Errorf("%w: decision must be accept or reject", ErrInvalidCommand)
	}

	switch cmd.EntityKind {
	case EntityServiceJob:
		return e.resolveJobQuote(ctx, cmd)
	case EntityPartsOrder:
		return e.resolveOrderQuote(ctx, cmd)
	default:
		return Result{}, fmt.Errorf("%w: unknown entity kind %q", ErrInvalidCommand, cmd.EntityKind)
	}
}

func (e *WorkflowEngine) resolveJobQuote(ctx context.Context, cmd Command) (Result, error) {
	job, err := e.loadJob(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardJob(job, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}
	if job.Quote == nil {
		return Result{}, fmt.Errorf("%w: job %s has no quote to resolve", ErrMissingPayload, job.ID)
	}
	if job.Quote.Resolved() {
		return Result{}, fmt.Errorf("%w: quote %s is %s", ErrAlreadyResolved, job.Quote.ID, job.Quote.Status)
	}
	if job.Status != entities.JobStatusQuotePending {
		return Result{}, fmt.Errorf("%w: job in %s has no pending quote decision", ErrIllegalTransition, job.Status)
	}
	// Only the counter-party of the issuer resolves: job quotes are issued by
	// the technician, so the owning customer decides.
	if cmd.ActorRole != entities.RoleCustomer || job.CustomerID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: only the job's customer resolves its quote", ErrForbiddenRole)
	}

	to := entities.JobStatusAccepted
	note := "quote accepted"
	quoteStatus := entities.QuoteStatusAccepted
	if cmd.Decision == QuoteDecisionReject {
		to = entities.JobStatusQuoteRejected
		note = "quote rejected"
		quoteStatus = entities.QuoteStatusRejected
	}
	job.Quote.Status = quoteStatus

	now := time.Now().UTC()
	from := job.Status
	applyJob(&job, to, cmd, note, now)

	events := []entities.Event{{
		Kind:       entities.EventJobStateChanged,
		EntityID:   job.ID,
		FromStatus: string(from),
		ToStatus:   string(to),
		OccurredAt: now,
	}}
	return e.commitJob(ctx, cmd, job, events)
}

func (e *WorkflowEngine) resolveOrderQuote(ctx context.Context, cmd Command) (Result, error) {
	order, err := e.loadOrder(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardOrder(order, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}
	if order.Quote == nil {
		return Result{}, fmt.Errorf("%w: order %s has no quote to resolve", ErrMissingPayload, order.ID)
	}
	if order.Quote.Resolved() {
		return Result{}, fmt.Errorf("%w: quote %s is %s", ErrAlreadyResolved, order.Quote.ID, order.Quote.Status)
	}
	if order.Status != entities.OrderStatusQuoted {
		return Result{}, fmt.Errorf("%w: order in %s has no pending quote decision", ErrIllegalTransition, order.Status)
	}
	// Supplier-issued quotes are resolved by the buyer.
	if cmd.ActorRole != order.BuyerRole || order.BuyerID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: only the order's buyer resolves its quote", ErrForbiddenRole)
	}

	to := entities.OrderStatusAccepted
	note := "quote accepted"
	quoteStatus := entities.QuoteStatusAccepted
	if cmd.Decision == QuoteDecisionReject {
		to = entities.OrderStatusRejected
		note = "quote rejected"
		quoteStatus = entities.QuoteStatusRejected
	}
	order.Quote.Status = quoteStatus

	now := time.Now().UTC()
	from := order.Status
	applyOrder(&order, to, cmd, note, now)

	events := []entities.Event{{
		Kind:       entities.EventOrderStateChanged,
		EntityID:   order.ID,
		FromStatus: string(from),
		ToStatus:   string(to),
		OccurredAt: now,
	}}
	return e.commitOrder(ctx, cmd, order, events)
}
