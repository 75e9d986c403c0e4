package usecase

import (
	"context"
	"fmt"
	"time"

	"workshop_flow/internal/domain/entities"
)

// Quote-gated edges may only be walked by the quotation commands, so the
// quote status and the parent state can never disagree.
func quoteGatedJobEdge(from, to entities.JobStatus) bool {
	if from == entities.JobStatusPending && to == entities.JobStatusQuotePending {
		return true
	}
	return from == entities.JobStatusQuotePending &&
		(to == entities.JobStatusAccepted || to == entities.JobStatusQuoteRejected)
}

func quoteGatedOrderEdge(from, to entities.OrderStatus) bool {
	if from == entities.OrderStatusInquiry && to == entities.OrderStatusQuoted {
		return true
	}
	return from == entities.OrderStatusQuoted &&
		(to == entities.OrderStatusAccepted || to == entities.OrderStatusRejected)
}

func (e *WorkflowEngine) advanceJob(ctx context.Context, cmd Command) (Result, error) {
	job, err := e.loadJob(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardJob(job, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}

	to := entities.JobStatus(cmd.ToStatus)
	if !entities.ValidJobStatus(to) || !entities.CanJobTransition(job.Status, to) {
		return Result{}, fmt.Errorf("%w: job %s->%s", ErrIllegalTransition, job.Status, cmd.ToStatus)
	}
	if quoteGatedJobEdge(job.Status, to) {
		return Result{}, fmt.Errorf("%w: %s->%s requires the quotation sub-workflow", ErrMissingPayload, job.Status, to)
	}
	if err := e.auth.AuthorizeJob(job.Status, to, cmd.ActorRole); err != nil {
		return Result{}, err
	}
	if cmd.ActorRole == entities.RoleTechnician {
		if job.TechnicianID != "" && job.TechnicianID != cmd.ActorID {
			return Result{}, fmt.Errorf("%w: job %s is assigned to another technician", ErrForbiddenRole, job.ID)
		}
		// A broadcast job binds its technician at acceptance time.
		if job.TechnicianID == "" {
			job.TechnicianID = cmd.ActorID
		}
	}
	if cmd.ActorRole == entities.RoleCustomer && job.CustomerID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: job %s belongs to another customer", ErrForbiddenRole, job.ID)
	}

	note := ""
	if to == entities.JobStatusBillingPending {
		if cmd.Bill == nil {
			return Result{}, fmt.Errorf("%w: bill required entering billing_pending", ErrMissingPayload)
		}
		if !cmd.Bill.Consistent() {
			return Result{}, fmt.Errorf("%w: bill total %.2f does not match labor %.2f + parts %.2f",
				ErrMissingPayload, cmd.Bill.Total, cmd.Bill.Labor, cmd.Bill.Parts)
		}
		bill := *cmd.Bill
		job.Bill = &bill
		note = fmt.Sprintf("bill submitted, total %.2f", bill.Total)
	}

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
	if to == entities.JobStatusCompleted && job.Bill != nil {
		events = append(events, entities.Event{
			Kind:       entities.EventSettleTechnicianEarnings,
			EntityID:   job.ID,
			Amount:     job.Bill.Total,
			OccurredAt: now,
		})
	}

	return e.commitJob(ctx, cmd, job, events)
}

func (e *WorkflowEngine) advanceOrder(ctx context.Context, cmd Command) (Result, error) {
	order, err := e.loadOrder(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardOrder(order, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}

	to := entities.OrderStatus(cmd.ToStatus)
	if !entities.ValidOrderStatus(to) || !entities.CanOrderTransition(order.Status, to) {
		return Result{}, fmt.Errorf("%w: order %s->%s", ErrIllegalTransition, order.Status, cmd.ToStatus)
	}
	if quoteGatedOrderEdge(order.Status, to) {
		return Result{}, fmt.Errorf("%w: %s->%s requires the quotation sub-workflow", ErrMissingPayload, order.Status, to)
	}
	if err := e.auth.AuthorizeOrder(order.Status, to, cmd.ActorRole); err != nil {
		return Result{}, err
	}
	if cmd.ActorRole == entities.RoleSupplier && order.SupplierID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: order %s belongs to another supplier", ErrForbiddenRole, order.ID)
	}

	note := ""
	if to == entities.OrderStatusOutForDelivery {
		if order.Dispatch == nil && cmd.Dispatch != nil {
			d := *cmd.Dispatch
			if err := validateDispatch(d); err != nil {
				return Result{}, err
			}
			order.Dispatch = &d
			note = "dispatch attached on departure"
		}
		if order.Dispatch == nil {
			return Result{}, fmt.Errorf("%w: dispatch details required entering out_for_delivery", ErrMissingPayload)
		}
	}

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
	if to == entities.OrderStatusDelivered {
		events = append(events,
			entities.Event{
				Kind:       entities.EventAdjustSupplierInventory,
				EntityID:   order.ID,
				Amount:     orderQuantity(order),
				OccurredAt: now,
			},
			entities.Event{
				Kind:       entities.EventCreditSupplierWallet,
				EntityID:   order.ID,
				Amount:     order.Total(),
				OccurredAt: now,
			},
		)
	}

	return e.commitOrder(ctx, cmd, order, events)
}

func orderQuantity(order entities.PartsOrder) float64 {
	items := order.Items
	if order.Quote != nil && order.Quote.Status == entities.QuoteStatusAccepted {
		items = order.Quote.Items
	}
	qty := 0
	for _, it := range items {
		qty += it.Quantity
	}
	return float64(qty)
}
