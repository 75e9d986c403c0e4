package repository

import (
	"os"
	"strconv"
	"time"

	"workshop_flow/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary values are stored as string attributes to avoid float drift in
// the table; timestamps as RFC3339Nano strings.

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// Shared nested item shapes for both tables.

type lineItemItem struct {
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	PhotoURI  string `dynamodbav:"photo_uri,omitempty"`
	VoiceURI  string `dynamodbav:"voice_uri,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

func toLineItems(items []entities.LineItem) []lineItemItem {
	if items == nil {
		return nil
	}
	out := make([]lineItemItem, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: floatToString(it.UnitPrice),
			PhotoURI:  it.PhotoURI,
			VoiceURI:  it.VoiceURI,
			Notes:     it.Notes,
		})
	}
	return out
}

func fromLineItems(items []lineItemItem) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: stringToFloat(it.UnitPrice),
			PhotoURI:  it.PhotoURI,
			VoiceURI:  it.VoiceURI,
			Notes:     it.Notes,
		})
	}
	return out
}

type quoteItem struct {
	ID           string         `dynamodbav:"id"`
	Items        []lineItemItem `dynamodbav:"items"`
	TotalAmount  string         `dynamodbav:"total_amount"`
	IssuedBy     string         `dynamodbav:"issued_by"`
	IssuedByRole string         `dynamodbav:"issued_by_role"`
	IssuedAt     string         `dynamodbav:"issued_at"`
	Status       string         `dynamodbav:"status"`
	ValidUntil   string         `dynamodbav:"valid_until,omitempty"`
}

func toQuoteItem(q *entities.Quote) *quoteItem {
	if q == nil {
		return nil
	}
	it := &quoteItem{
		ID:           q.ID,
		Items:        toLineItems(q.Items),
		TotalAmount:  floatToString(q.TotalAmount),
		IssuedBy:     q.IssuedBy,
		IssuedByRole: string(q.IssuedByRole),
		IssuedAt:     timeToString(q.IssuedAt),
		Status:       string(q.Status),
	}
	if q.ValidUntil != nil {
		it.ValidUntil = timeToString(*q.ValidUntil)
	}
	return it
}

func fromQuoteItem(it *quoteItem) *entities.Quote {
	if it == nil {
		return nil
	}
	q := &entities.Quote{
		ID:           it.ID,
		Items:        fromLineItems(it.Items),
		TotalAmount:  stringToFloat(it.TotalAmount),
		IssuedBy:     it.IssuedBy,
		IssuedByRole: entities.Role(it.IssuedByRole),
		IssuedAt:     stringToTime(it.IssuedAt),
		Status:       entities.QuoteStatus(it.Status),
	}
	if it.ValidUntil != "" {
		t := stringToTime(it.ValidUntil)
		q.ValidUntil = &t
	}
	return q
}

type billItem struct {
	Labor string `dynamodbav:"labor"`
	Parts string `dynamodbav:"parts"`
	Total string `dynamodbav:"total"`
}

func toBillItem(b *entities.Bill) *billItem {
	if b == nil {
		return nil
	}
	return &billItem{Labor: floatToString(b.Labor), Parts: floatToString(b.Parts), Total: floatToString(b.Total)}
}

func fromBillItem(it *billItem) *entities.Bill {
	if it == nil {
		return nil
	}
	return &entities.Bill{Labor: stringToFloat(it.Labor), Parts: stringToFloat(it.Parts), Total: stringToFloat(it.Total)}
}

type dispatchItem struct {
	Mode          string `dynamodbav:"mode"`
	DriverName    string `dynamodbav:"driver_name,omitempty"`
	DriverPhone   string `dynamodbav:"driver_phone,omitempty"`
	VehicleNumber string `dynamodbav:"vehicle_number,omitempty"`
	CourierName   string `dynamodbav:"courier_name,omitempty"`
	TrackingID    string `dynamodbav:"tracking_id,omitempty"`
	TrackingURL   string `dynamodbav:"tracking_url,omitempty"`
}

func toDispatchItem(d *entities.Dispatch) *dispatchItem {
	if d == nil {
		return nil
	}
	return &dispatchItem{
		Mode:          string(d.Mode),
		DriverName:    d.DriverName,
		DriverPhone:   d.DriverPhone,
		VehicleNumber: d.VehicleNumber,
		CourierName:   d.CourierName,
		TrackingID:    d.TrackingID,
		TrackingURL:   d.TrackingURL,
	}
}

func fromDispatchItem(it *dispatchItem) *entities.Dispatch {
	if it == nil {
		return nil
	}
	return &entities.Dispatch{
		Mode:          entities.DispatchMode(it.Mode),
		DriverName:    it.DriverName,
		DriverPhone:   it.DriverPhone,
		VehicleNumber: it.VehicleNumber,
		CourierName:   it.CourierName,
		TrackingID:    it.TrackingID,
		TrackingURL:   it.TrackingURL,
	}
}

type transitionItem struct {
	From      string `dynamodbav:"from"`
	To        string `dynamodbav:"to"`
	ActorID   string `dynamodbav:"actor_id"`
	ActorRole string `dynamodbav:"actor_role"`
	Timestamp string `dynamodbav:"timestamp"`
	Note      string `dynamodbav:"note,omitempty"`
}

func toTransitionItems(records []entities.TransitionRecord) []transitionItem {
	if records == nil {
		return nil
	}
	out := make([]transitionItem, 0, len(records))
	for _, r := range records {
		out = append(out, transitionItem{
			From:      r.From,
			To:        r.To,
			ActorID:   r.ActorID,
			ActorRole: string(r.ActorRole),
			Timestamp: timeToString(r.Timestamp),
			Note:      r.Note,
		})
	}
	return out
}

func fromTransitionItems(items []transitionItem) []entities.TransitionRecord {
	if items == nil {
		return nil
	}
	out := make([]entities.TransitionRecord, 0, len(items))
	for _, it := range items {
		out = append(out, entities.TransitionRecord{
			From:      it.From,
			To:        it.To,
			ActorID:   it.ActorID,
			ActorRole: entities.Role(it.ActorRole),
			Timestamp: stringToTime(it.Timestamp),
			Note:      it.Note,
		})
	}
	return out
}
