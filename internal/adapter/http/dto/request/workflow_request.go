package request

import (
	"strings"
	"time"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase"
)

// Actor carries the verified (actorId, role) pair on every workflow request.
// Authentication happens upstream; this layer only shapes the payload.
type Actor struct {
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role" binding:"required"`
}

func (a Actor) Role() entities.Role {
	return entities.Role(strings.TrimSpace(strings.ToLower(a.ActorRole)))
}

type LineItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	PhotoURI  string  `json:"photo_uri"`
	VoiceURI  string  `json:"voice_uri"`
	Notes     string  `json:"notes"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			PhotoURI:  it.PhotoURI,
			VoiceURI:  it.VoiceURI,
			Notes:     it.Notes,
		})
	}
	return out
}

type CreateJobRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	TechnicianID string `json:"technician_id"`
	Broadcast    bool   `json:"broadcast"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		Broadcast:    r.Broadcast,
	}
}

type CreateOrderRequest struct {
	BuyerID    string            `json:"buyer_id" binding:"required"`
	BuyerRole  string            `json:"buyer_role" binding:"required"`
	SupplierID string            `json:"supplier_id" binding:"required"`
	Items      []LineItemRequest `json:"items" binding:"required"`
	Priced     bool              `json:"priced"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		BuyerID:    r.BuyerID,
		BuyerRole:  entities.Role(strings.TrimSpace(strings.ToLower(r.BuyerRole))),
		SupplierID: r.SupplierID,
		Items:      toLineItems(r.Items),
		Priced:     r.Priced,
	}
}

type BillRequest struct {
	Labor float64 `json:"labor"`
	Parts float64 `json:"parts"`
	Total float64 `json:"total"`
}

type DispatchRequest struct {
	Mode          string `json:"mode" binding:"required"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
	VehicleNumber string `json:"vehicle_number"`
	CourierName   string `json:"courier_name"`
	TrackingID    string `json:"tracking_id"`
	TrackingURL   string `json:"tracking_url"`
}

func (r DispatchRequest) ToDispatch() entities.Dispatch {
	return entities.Dispatch{
		Mode:          entities.DispatchMode(strings.TrimSpace(strings.ToLower(r.Mode))),
		DriverName:    r.DriverName,
		DriverPhone:   r.DriverPhone,
		VehicleNumber: r.VehicleNumber,
		CourierName:   r.CourierName,
		TrackingID:    r.TrackingID,
		TrackingURL:   r.TrackingURL,
	}
}

// AdvanceRequest moves a job or an order one edge along its graph.
type AdvanceRequest struct {
	Actor
	ToStatus        string           `json:"to_status" binding:"required"`
	ExpectedVersion int64            `json:"expected_version" binding:"required"`
	Bill            *BillRequest     `json:"bill"`
	Dispatch        *DispatchRequest `json:"dispatch"`
}

func (r AdvanceRequest) ToCommand(kind usecase.CommandKind, entityID string) usecase.Command {
	cmd := usecase.Command{
		Kind:            kind,
		EntityID:        entityID,
		ActorID:         r.ActorID,
		ActorRole:       r.Role(),
		ExpectedVersion: r.ExpectedVersion,
		ToStatus:        strings.TrimSpace(strings.ToLower(r.ToStatus)),
	}
	if r.Bill != nil {
		cmd.Bill = &entities.Bill{Labor: r.Bill.Labor, Parts: r.Bill.Parts, Total: r.Bill.Total}
	}
	if r.Dispatch != nil {
		d := r.Dispatch.ToDispatch()
		cmd.Dispatch = &d
	}
	return cmd
}

type ProposeQuoteRequest struct {
	Actor
	ExpectedVersion int64             `json:"expected_version" binding:"required"`
	Items           []LineItemRequest `json:"items" binding:"required"`
	OverrideAmount  *float64          `json:"override_amount"`
	ValidUntil      *time.Time        `json:"valid_until"`
}

func (r ProposeQuoteRequest) ToCommand(entityKind usecase.EntityKind, entityID string) usecase.Command {
	return usecase.Command{
		Kind:            usecase.CommandProposeQuote,
		EntityKind:      entityKind,
		EntityID:        entityID,
		ActorID:         r.ActorID,
		ActorRole:       r.Role(),
		ExpectedVersion: r.ExpectedVersion,
		Items:           toLineItems(r.Items),
		OverrideAmount:  r.OverrideAmount,
		ValidUntil:      r.ValidUntil,
	}
}

type ResolveQuoteRequest struct {
	Actor
	ExpectedVersion int64  `json:"expected_version" binding:"required"`
	Decision        string `json:"decision" binding:"required,oneof=accept reject"`
}

func (r ResolveQuoteRequest) ToCommand(entityKind usecase.EntityKind, entityID string) usecase.Command {
	return usecase.Command{
		Kind:            usecase.CommandResolveQuote,
		EntityKind:      entityKind,
		EntityID:        entityID,
		ActorID:         r.ActorID,
		ActorRole:       r.Role(),
		ExpectedVersion: r.ExpectedVersion,
		Decision:        usecase.QuoteDecision(r.Decision),
	}
}

type AttachDispatchRequest struct {
	Actor
	ExpectedVersion int64           `json:"expected_version" binding:"required"`
	Dispatch        DispatchRequest `json:"dispatch" binding:"required"`
}

func (r AttachDispatchRequest) ToCommand(entityID string) usecase.Command {
	d := r.Dispatch.ToDispatch()
	return usecase.Command{
		Kind:            usecase.CommandAttachDispatch,
		EntityKind:      usecase.EntityPartsOrder,
		EntityID:        entityID,
		ActorID:         r.ActorID,
		ActorRole:       r.Role(),
		ExpectedVersion: r.ExpectedVersion,
		Dispatch:        &d,
	}
}

type AmendDispatchRequest struct {
	Actor
	ExpectedVersion int64   `json:"expected_version" binding:"required"`
	DriverName      *string `json:"driver_name"`
	DriverPhone     *string `json:"driver_phone"`
	VehicleNumber   *string `json:"vehicle_number"`
	CourierName     *string `json:"courier_name"`
	TrackingID      *string `json:"tracking_id"`
	TrackingURL     *string `json:"tracking_url"`
}

func (r AmendDispatchRequest) ToCommand(entityID string) usecase.Command {
	return usecase.Command{
		Kind:            usecase.CommandAmendDispatch,
		EntityKind:      usecase.EntityPartsOrder,
		EntityID:        entityID,
		ActorID:         r.ActorID,
		ActorRole:       r.Role(),
		ExpectedVersion: r.ExpectedVersion,
		DispatchUpdate: &entities.DispatchUpdate{
			DriverName:    r.DriverName,
			DriverPhone:   r.DriverPhone,
			VehicleNumber: r.VehicleNumber,
			CourierName:   r.CourierName,
			TrackingID:    r.TrackingID,
			TrackingURL:   r.TrackingURL,
		},
	}
}
