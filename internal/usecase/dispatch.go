package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workshop_flow/internal/domain/entities"
)

// Delivery dispatch sub-workflow: a dispatch record is attached once while
// the order is being prepared, amended field by field while it moves, and
// frozen the moment the order is delivered.

// Attach window: after the supplier committed to fulfil, before the parcel
// leaves. Once out_for_delivery is reached a dispatch necessarily exists and
// changes go through amend.
var dispatchAttachStatuses = map[entities.OrderStatus]bool{
	entities.OrderStatusAccepted: true,
	entities.OrderStatusPacked:   true,
}

var dispatchAmendStatuses = map[entities.OrderStatus]bool{
	entities.OrderStatusPacked:         true,
	entities.OrderStatusOutForDelivery: true,
	entities.OrderStatusShipped:        true,
}

func validateDispatch(d entities.Dispatch) error {
	switch d.Mode {
	case entities.DispatchModeLocal:
		if strings.TrimSpace(d.DriverName) == "" || strings.TrimSpace(d.VehicleNumber) == "" {
			return fmt.Errorf("%w: local dispatch needs driver_name and vehicle_number", ErrIncompleteDispatch)
		}
	case entities.DispatchModeCourier:
		if strings.TrimSpace(d.CourierName) == "" || strings.TrimSpace(d.TrackingID) == "" {
			return fmt.Errorf("%w: courier dispatch needs courier_name and tracking_id", ErrIncompleteDispatch)
		}
	default:
		return fmt.Errorf("%w: unknown dispatch mode %q", ErrIncompleteDispatch, d.Mode)
	}
	return nil
}

func (e *WorkflowEngine) attachDispatch(ctx context.Context, cmd Command) (Result, error) {
	order, err := e.loadOrder(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	if err := guardOrder(order, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}
	if cmd.ActorRole != entities.RoleSupplier || order.SupplierID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: only the order's supplier records dispatch details", ErrForbiddenRole)
	}
	if order.Dispatch != nil {
		return Result{}, fmt.Errorf("%w: order %s", ErrDispatchAttached, order.ID)
	}
	if !dispatchAttachStatuses[order.Status] {
		return Result{}, fmt.Errorf("%w: dispatch cannot be attached while order is %s", ErrIllegalTransition, order.Status)
	}
	if cmd.Dispatch == nil {
		return Result{}, fmt.Errorf("%w: dispatch details required", ErrMissingPayload)
	}
	d := *cmd.Dispatch
	if err := validateDispatch(d); err != nil {
		return Result{}, err
	}
	order.Dispatch = &d

	now := time.Now().UTC()
	applyOrder(&order, order.Status, cmd, fmt.Sprintf("dispatch attached (%s)", d.Mode), now)
	return e.commitOrder(ctx, cmd, order, nil)
}

func (e *WorkflowEngine) amendDispatch(ctx context.Context, cmd Command) (Result, error) {
	order, err := e.loadOrder(ctx, cmd.EntityID)
	if err != nil {
		return Result{}, err
	}
	// Delivered freezes the dispatch record for good; guardOrder reports it
	// (and the other terminal states) as TerminalState.
	if err := guardOrder(order, cmd.ExpectedVersion); err != nil {
		return Result{}, err
	}
	if cmd.ActorRole != entities.RoleSupplier || order.SupplierID != cmd.ActorID {
		return Result{}, fmt.Errorf("%w: only the order's supplier amends dispatch details", ErrForbiddenRole)
	}
	if !dispatchAmendStatuses[order.Status] {
		return Result{}, fmt.Errorf("%w: dispatch cannot be amended while order is %s", ErrIllegalTransition, order.Status)
	}
	if order.Dispatch == nil {
		return Result{}, fmt.Errorf("%w: order %s has no dispatch to amend", ErrMissingPayload, order.ID)
	}
	if cmd.DispatchUpdate == nil {
		return Result{}, fmt.Errorf("%w: dispatch update required", ErrInvalidCommand)
	}

	amended := *order.Dispatch
	amended.Merge(*cmd.DispatchUpdate)
	if err := validateDispatch(amended); err != nil {
		return Result{}, err
	}
	order.Dispatch = &amended

	now := time.Now().UTC()
	applyOrder(&order, order.Status, cmd, "dispatch amended", now)
	return e.commitOrder(ctx, cmd, order, nil)
}
