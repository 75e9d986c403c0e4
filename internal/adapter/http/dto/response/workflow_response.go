package response

import (
	"time"

	"workshop_flow/internal/domain/entities"
)

type LineItemResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	PhotoURI  string  `json:"photo_uri,omitempty"`
	VoiceURI  string  `json:"voice_uri,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	if items == nil {
		return nil
	}
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
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

type QuoteResponse struct {
	ID           string             `json:"id"`
	Items        []LineItemResponse `json:"items"`
	TotalAmount  float64            `json:"total_amount"`
	IssuedBy     string             `json:"issued_by"`
	IssuedByRole string             `json:"issued_by_role"`
	IssuedAt     time.Time          `json:"issued_at"`
	Status       string             `json:"status"`
	ValidUntil   *time.Time         `json:"valid_until,omitempty"`
}

func fromQuote(q *entities.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}
	return &QuoteResponse{
		ID:           q.ID,
		Items:        fromLineItems(q.Items),
		TotalAmount:  q.TotalAmount,
		IssuedBy:     q.IssuedBy,
		IssuedByRole: string(q.IssuedByRole),
		IssuedAt:     q.IssuedAt,
		Status:       string(q.Status),
		ValidUntil:   q.ValidUntil,
	}
}

type BillResponse struct {
	Labor float64 `json:"labor"`
	Parts float64 `json:"parts"`
	Total float64 `json:"total"`
}

type DispatchResponse struct {
	Mode          string `json:"mode"`
	DriverName    string `json:"driver_name,omitempty"`
	DriverPhone   string `json:"driver_phone,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	CourierName   string `json:"courier_name,omitempty"`
	TrackingID    string `json:"tracking_id,omitempty"`
	TrackingURL   string `json:"tracking_url,omitempty"`
}

type HistoryEntryResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

func fromHistory(records []entities.TransitionRecord) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, HistoryEntryResponse{
			From:      r.From,
			To:        r.To,
			ActorID:   r.ActorID,
			ActorRole: string(r.ActorRole),
			Timestamp: r.Timestamp,
			Note:      r.Note,
		})
	}
	return out
}

type JobResponse struct {
	ID           string                 `json:"id"`
	CustomerID   string                 `json:"customer_id"`
	TechnicianID string                 `json:"technician_id,omitempty"`
	Status       string                 `json:"status"`
	Broadcast    bool                   `json:"broadcast"`
	Quote        *QuoteResponse         `json:"quote,omitempty"`
	Bill         *BillResponse          `json:"bill,omitempty"`
	Version      int64                  `json:"version"`
	History      []HistoryEntryResponse `json:"history"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func FromServiceJob(j entities.ServiceJob) JobResponse {
	resp := JobResponse{
		ID:           j.ID,
		CustomerID:   j.CustomerID,
		TechnicianID: j.TechnicianID,
		Status:       string(j.Status),
		Broadcast:    j.Broadcast,
		Quote:        fromQuote(j.Quote),
		Version:      j.Version,
		History:      fromHistory(j.History),
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Bill != nil {
		resp.Bill = &BillResponse{Labor: j.Bill.Labor, Parts: j.Bill.Parts, Total: j.Bill.Total}
	}
	return resp
}

type OrderResponse struct {
	ID         string                 `json:"id"`
	BuyerID    string                 `json:"buyer_id"`
	BuyerRole  string                 `json:"buyer_role"`
	SupplierID string                 `json:"supplier_id"`
	Status     string                 `json:"status"`
	Items      []LineItemResponse     `json:"items"`
	Total      float64                `json:"total"`
	Quote      *QuoteResponse         `json:"quote,omitempty"`
	Dispatch   *DispatchResponse      `json:"dispatch,omitempty"`
	Version    int64                  `json:"version"`
	History    []HistoryEntryResponse `json:"history"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func FromPartsOrder(o entities.PartsOrder) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		BuyerRole:  string(o.BuyerRole),
		SupplierID: o.SupplierID,
		Status:     string(o.Status),
		Items:      fromLineItems(o.Items),
		Total:      o.Total(),
		Quote:      fromQuote(o.Quote),
		Version:    o.Version,
		History:    fromHistory(o.History),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.Dispatch != nil {
		resp.Dispatch = &DispatchResponse{
			Mode:          string(o.Dispatch.Mode),
			DriverName:    o.Dispatch.DriverName,
			DriverPhone:   o.Dispatch.DriverPhone,
			VehicleNumber: o.Dispatch.VehicleNumber,
			CourierName:   o.Dispatch.CourierName,
			TrackingID:    o.Dispatch.TrackingID,
			TrackingURL:   o.Dispatch.TrackingURL,
		}
	}
	return resp
}

// TransitionsResponse lists the legal next statuses from the current one,
// so a client can render "what's next" without duplicating the graph.
type TransitionsResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Next   []string `json:"next"`
}
