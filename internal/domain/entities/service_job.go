package entities

import "time"

// JobStatus represents the lifecycle of a ServiceJob (vehicle repair
// engagement between one customer and one technician).
//
// Domain notes:
//   - The workflow engine is the source of truth for job state.
//   - Transitions happen only through the declared graph below; the same
//     table backs the engine checks and any "what's next" rendering.

type JobStatus string

const (
	JobStatusPending          JobStatus = "pending"
	JobStatusQuotePending     JobStatus = "quote_pending"
	JobStatusQuoteRejected    JobStatus = "quote_rejected"
	JobStatusAccepted         JobStatus = "accepted"
	JobStatusArrived          JobStatus = "arrived"
	JobStatusDiagnosing       JobStatus = "diagnosing"
	JobStatusPartsRequired    JobStatus = "parts_required"
	JobStatusPartsOrdered     JobStatus = "parts_ordered"
	JobStatusQualityCheck     JobStatus = "quality_check"
	JobStatusBillingPending   JobStatus = "billing_pending"
	JobStatusBillRejected     JobStatus = "bill_rejected"
	JobStatusReadyForDelivery JobStatus = "ready_for_delivery"
	JobStatusVehicleDelivered JobStatus = "vehicle_delivered"
	JobStatusCompleted        JobStatus = "completed"
	JobStatusCancelled        JobStatus = "cancelled"
)

// jobTransitions is the legal edge set. Cancellation is reachable from every
// non-terminal state; quote_rejected has no out-edges (a re-request is a new
// job, created externally).
var jobTransitions = map[JobStatus]map[JobStatus]bool{
	JobStatusPending:          {JobStatusAccepted: true, JobStatusQuotePending: true, JobStatusCancelled: true},
	JobStatusQuotePending:     {JobStatusAccepted: true, JobStatusQuoteRejected: true, JobStatusCancelled: true},
	JobStatusQuoteRejected:    {},
	JobStatusAccepted:         {JobStatusArrived: true, JobStatusCancelled: true},
	JobStatusArrived:          {JobStatusDiagnosing: true, JobStatusCancelled: true},
	JobStatusDiagnosing:       {JobStatusPartsRequired: true, JobStatusQualityCheck: true, JobStatusCancelled: true},
	JobStatusPartsRequired:    {JobStatusPartsOrdered: true, JobStatusCancelled: true},
	JobStatusPartsOrdered:     {JobStatusQualityCheck: true, JobStatusCancelled: true},
	JobStatusQualityCheck:     {JobStatusBillingPending: true, JobStatusCancelled: true},
	JobStatusBillingPending:   {JobStatusReadyForDelivery: true, JobStatusBillRejected: true, JobStatusCancelled: true},
	JobStatusBillRejected:     {JobStatusBillingPending: true, JobStatusCancelled: true},
	JobStatusReadyForDelivery: {JobStatusVehicleDelivered: true, JobStatusCancelled: true},
	JobStatusVehicleDelivered: {JobStatusCompleted: true, JobStatusCancelled: true},
	JobStatusCompleted:        {},
	JobStatusCancelled:        {},
}

type jobEdge struct{ from, to JobStatus }

// jobEdgeRoles lists who may walk each edge. The technician drives the work;
// the customer resolves quotes, bills and final acceptance; the admin owns
// forced cancellation.
var jobEdgeRoles = map[jobEdge][]Role{
	{JobStatusPending, JobStatusAccepted}:                  {RoleTechnician},
	{JobStatusPending, JobStatusQuotePending}:              {RoleTechnician},
	{JobStatusQuotePending, JobStatusAccepted}:             {RoleCustomer},
	{JobStatusQuotePending, JobStatusQuoteRejected}:        {RoleCustomer},
	{JobStatusAccepted, JobStatusArrived}:                  {RoleTechnician},
	{JobStatusArrived, JobStatusDiagnosing}:                {RoleTechnician},
	{JobStatusDiagnosing, JobStatusPartsRequired}:          {RoleTechnician},
	{JobStatusDiagnosing, JobStatusQualityCheck}:           {RoleTechnician},
	{JobStatusPartsRequired, JobStatusPartsOrdered}:        {RoleTechnician},
	{JobStatusPartsOrdered, JobStatusQualityCheck}:         {RoleTechnician},
	{JobStatusQualityCheck, JobStatusBillingPending}:       {RoleTechnician},
	{JobStatusBillingPending, JobStatusReadyForDelivery}:   {RoleCustomer},
	{JobStatusBillingPending, JobStatusBillRejected}:       {RoleCustomer},
	{JobStatusBillRejected, JobStatusBillingPending}:       {RoleTechnician},
	{JobStatusReadyForDelivery, JobStatusVehicleDelivered}: {RoleTechnician},
	{JobStatusVehicleDelivered, JobStatusCompleted}:        {RoleCustomer},
}

func ValidJobStatus(s JobStatus) bool {
	_, ok := jobTransitions[s]
	return ok
}

// CanJobTransition checks if from->to is a declared edge. Cancellation is
// allowed from any non-terminal state.
func CanJobTransition(from, to JobStatus) bool {
	next, ok := jobTransitions[from]
	return ok && next[to]
}

// JobTerminal reports whether no further transitions are accepted.
func JobTerminal(s JobStatus) bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// NextJobStatuses lists the out-edges of s, in a stable order.
func NextJobStatuses(s JobStatus) []JobStatus {
	next := jobTransitions[s]
	out := make([]JobStatus, 0, len(next))
	for _, candidate := range jobStatusOrder {
		if next[candidate] {
			out = append(out, candidate)
		}
	}
	return out
}

// JobEdgeRoles returns the roles permitted on the from->to edge. Cancellation
// edges are admin-only regardless of origin state.
func JobEdgeRoles(from, to JobStatus) []Role {
	if to == JobStatusCancelled {
		return []Role{RoleAdmin}
	}
	return jobEdgeRoles[jobEdge{from, to}]
}

var jobStatusOrder = []JobStatus{
	JobStatusPending, JobStatusQuotePending, JobStatusQuoteRejected,
	JobStatusAccepted, JobStatusArrived, JobStatusDiagnosing,
	JobStatusPartsRequired, JobStatusPartsOrdered, JobStatusQualityCheck,
	JobStatusBillingPending, JobStatusBillRejected, JobStatusReadyForDelivery,
	JobStatusVehicleDelivered, JobStatusCompleted, JobStatusCancelled,
}

// JobStatuses returns the full vocabulary.
func JobStatuses() []JobStatus {
	return append([]JobStatus(nil), jobStatusOrder...)
}

// Bill is the final labor + parts statement attached before the customer
// approves delivery.
type Bill struct {
	Labor float64 `json:"labor"`
	Parts float64 `json:"parts"`
	Total float64 `json:"total"`
}

// Consistent reports whether the total matches its components.
func (b Bill) Consistent() bool {
	return b.Total == b.Labor+b.Parts
}

// ServiceJob is a single vehicle-repair engagement.
//
// Invariants:
//   - Status moves only along jobTransitions.
//   - TechnicianID is set no later than the pending->accepted commit.
//   - Bill exists and is consistent before entering billing_pending.
//   - Version increments exactly once per committed transition.

type ServiceJob struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	TechnicianID string             `json:"technician_id,omitempty"`
	SupplierIDs  []string           `json:"supplier_ids,omitempty"`
	Status       JobStatus          `json:"status"`
	Broadcast    bool               `json:"broadcast"`
	Quote        *Quote             `json:"quote,omitempty"`
	Bill         *Bill              `json:"bill,omitempty"`
	Version      int64              `json:"version"`
	History      []TransitionRecord `json:"history"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (j ServiceJob) Clone() ServiceJob {
	out := j
	if j.SupplierIDs != nil {
		out.SupplierIDs = append([]string(nil), j.SupplierIDs...)
	}
	if j.Quote != nil {
		q := j.Quote.Clone()
		out.Quote = &q
	}
	if j.Bill != nil {
		b := *j.Bill
		out.Bill = &b
	}
	if j.History != nil {
		out.History = append([]TransitionRecord(nil), j.History...)
	}
	return out
}
