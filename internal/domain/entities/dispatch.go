package entities

// DispatchMode selects which set of delivery fields is required.
type DispatchMode string

const (
	DispatchModeLocal   DispatchMode = "local"
	DispatchModeCourier DispatchMode = "courier"
)

func ValidDispatchMode(m DispatchMode) bool {
	return m == DispatchModeLocal || m == DispatchModeCourier
}

// Dispatch is the delivery record attached to a PartsOrder before it can
// leave packed. Created once; amended field by field afterwards; frozen once
// the order is delivered.
//
// Mode is fixed at attach time: switching local/courier means the previous
// dispatch was wrong, which is an amend of its fields, not a mode flip.

type Dispatch struct {
	Mode DispatchMode `json:"mode"`

	// local
	DriverName    string `json:"driver_name,omitempty"`
	DriverPhone   string `json:"driver_phone,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`

	// courier
	CourierName string `json:"courier_name,omitempty"`
	TrackingID  string `json:"tracking_id,omitempty"`
	TrackingURL string `json:"tracking_url,omitempty"`
}

// DispatchUpdate carries a partial amend. Nil fields are left untouched so a
// courier update cannot silently blank out previously recorded driver data.
type DispatchUpdate struct {
	DriverName    *string `json:"driver_name,omitempty"`
	DriverPhone   *string `json:"driver_phone,omitempty"`
	VehicleNumber *string `json:"vehicle_number,omitempty"`
	CourierName   *string `json:"courier_name,omitempty"`
	TrackingID    *string `json:"tracking_id,omitempty"`
	TrackingURL   *string `json:"tracking_url,omitempty"`
}

// Merge applies the non-nil fields of u onto d.
func (d *Dispatch) Merge(u DispatchUpdate) {
	if u.DriverName != nil {
		d.DriverName = *u.DriverName
	}
	if u.DriverPhone != nil {
		d.DriverPhone = *u.DriverPhone
	}
	if u.VehicleNumber != nil {
		d.VehicleNumber = *u.VehicleNumber
	}
	if u.CourierName != nil {
		d.CourierName = *u.CourierName
	}
	if u.TrackingID != nil {
		d.TrackingID = *u.TrackingID
	}
	if u.TrackingURL != nil {
		d.TrackingURL = *u.TrackingURL
	}
}
