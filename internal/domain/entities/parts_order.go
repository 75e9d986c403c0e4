package entities

import "time"

// OrderStatus represents the lifecycle of a PartsOrder.
//
// Two entry shapes share one downstream chain:
//   - priced:  pending -> accepted|rejected
//   - inquiry: inquiry -> quoted -> accepted|rejected
//
// then accepted -> packed -> out_for_delivery -> shipped -> delivered.

type OrderStatus string

const (
	OrderStatusInquiry        OrderStatus = "inquiry"
	OrderStatusQuoted         OrderStatus = "quoted"
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusRejected       OrderStatus = "rejected"
	OrderStatusPacked         OrderStatus = "packed"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Packing is a mandatory step: there is deliberately no accepted ->
// out_for_delivery edge, so a supplier cannot skip the packed audit record.
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusInquiry:        {OrderStatusQuoted: true, OrderStatusRejected: true, OrderStatusCancelled: true},
	OrderStatusQuoted:         {OrderStatusAccepted: true, OrderStatusRejected: true, OrderStatusCancelled: true},
	OrderStatusPending:        {OrderStatusAccepted: true, OrderStatusRejected: true, OrderStatusCancelled: true},
	OrderStatusAccepted:       {OrderStatusPacked: true, OrderStatusCancelled: true},
	OrderStatusPacked:         {OrderStatusOutForDelivery: true, OrderStatusCancelled: true},
	OrderStatusOutForDelivery: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:        {OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusDelivered:      {},
	OrderStatusRejected:       {},
	OrderStatusCancelled:      {},
}

type orderEdge struct{ from, to OrderStatus }

// The supplier drives fulfilment; the buyer resolves quotes. Once the
// supplier has accepted, the buyer has no reject edge (cancellation policy is
// a separate concern, admin-forced here).
var orderEdgeRoles = map[orderEdge][]Role{
	{OrderStatusInquiry, OrderStatusQuoted}:           {RoleSupplier},
	{OrderStatusInquiry, OrderStatusRejected}:         {RoleSupplier},
	{OrderStatusQuoted, OrderStatusAccepted}:          {RoleCustomer, RoleTechnician},
	{OrderStatusQuoted, OrderStatusRejected}:          {RoleCustomer, RoleTechnician},
	{OrderStatusPending, OrderStatusAccepted}:         {RoleSupplier},
	{OrderStatusPending, OrderStatusRejected}:         {RoleSupplier},
	{OrderStatusAccepted, OrderStatusPacked}:          {RoleSupplier},
	{OrderStatusPacked, OrderStatusOutForDelivery}:    {RoleSupplier},
	{OrderStatusOutForDelivery, OrderStatusShipped}:   {RoleSupplier},
	{OrderStatusShipped, OrderStatusDelivered}:        {RoleSupplier},
}

func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

func CanOrderTransition(from, to OrderStatus) bool {
	next, ok := orderTransitions[from]
	return ok && next[to]
}

// OrderTerminal reports whether no further transitions are accepted.
func OrderTerminal(s OrderStatus) bool {
	return s == OrderStatusDelivered || s == OrderStatusRejected || s == OrderStatusCancelled
}

func NextOrderStatuses(s OrderStatus) []OrderStatus {
	next := orderTransitions[s]
	out := make([]OrderStatus, 0, len(next))
	for _, candidate := range orderStatusOrder {
		if next[candidate] {
			out = append(out, candidate)
		}
	}
	return out
}

func OrderEdgeRoles(from, to OrderStatus) []Role {
	if to == OrderStatusCancelled {
		return []Role{RoleAdmin}
	}
	return orderEdgeRoles[orderEdge{from, to}]
}

var orderStatusOrder = []OrderStatus{
	OrderStatusInquiry, OrderStatusQuoted, OrderStatusPending,
	OrderStatusAccepted, OrderStatusRejected, OrderStatusPacked,
	OrderStatusOutForDelivery, OrderStatusShipped, OrderStatusDelivered,
	OrderStatusCancelled,
}

func OrderStatuses() []OrderStatus {
	return append([]OrderStatus(nil), orderStatusOrder...)
}

// PartsOrder is a parts request fulfilled by a supplier. Never deleted;
// retained indefinitely as an audit record.
type PartsOrder struct {
	ID         string             `json:"id"`
	BuyerID    string             `json:"buyer_id"`
	BuyerRole  Role               `json:"buyer_role"`
	SupplierID string             `json:"supplier_id"`
	Status     OrderStatus        `json:"status"`
	Items      []LineItem         `json:"items"`
	Quote      *Quote             `json:"quote,omitempty"`
	Dispatch   *Dispatch          `json:"dispatch,omitempty"`
	Version    int64              `json:"version"`
	History    []TransitionRecord `json:"history"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Total is the order amount: the confirmed quote total when one was
// accepted, otherwise the sum over items.
func (o PartsOrder) Total() float64 {
	if o.Quote != nil && o.Quote.Status == QuoteStatusAccepted {
		return o.Quote.TotalAmount
	}
	return ItemsTotal(o.Items)
}

func (o PartsOrder) Clone() PartsOrder {
	out := o
	if o.Items != nil {
		out.Items = append([]LineItem(nil), o.Items...)
	}
	if o.Quote != nil {
		q := o.Quote.Clone()
		out.Quote = &q
	}
	if o.Dispatch != nil {
		d := *o.Dispatch
		out.Dispatch = &d
	}
	if o.History != nil {
		out.History = append([]TransitionRecord(nil), o.History...)
	}
	return out
}
