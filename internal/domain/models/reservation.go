package models

import "time"

type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "reserved"
	StatusCancelled ReservationStatus = "cancelled"
)

// SeatHolder identifies who a seat is being reserved for: a traveler alone,
// or one of that traveler's companions. The (TravelerID, CompanionID) pair is
// the holder identity; DisplayName is only the snapshot written to the row.
type SeatHolder struct {
	TravelerID  string `json:"client_id"`
	CompanionID string `json:"child_id,omitempty"`
	DisplayName string `json:"name"`
}

// Same reports whether two holders are the same real-world passenger.
func (h SeatHolder) Same(o SeatHolder) bool {
	return h.TravelerID == o.TravelerID && h.CompanionID == o.CompanionID
}

// SeatReservation binds one seat label at one destination to one holder.
// Field names keep the record-store wire shape (client_id/child_id).
type SeatReservation struct {
	ID            string            `json:"id"`
	DestinationID string            `json:"destination_id"`
	BusID         string            `json:"bus_id"`
	SeatNumber    string            `json:"seat_number"`
	TravelerID    string            `json:"client_id"`
	CompanionID   string            `json:"child_id,omitempty"`
	HolderName    string            `json:"client_name"`
	Status        ReservationStatus `json:"status"`
	IsCompanion   bool              `json:"is_child,omitempty"`
	ReservedAt    time.Time         `json:"reserved_at"`
}

func (r SeatReservation) Active() bool {
	return r.Status == StatusReserved
}

func (r SeatReservation) Holder() SeatHolder {
	return SeatHolder{
		TravelerID:  r.TravelerID,
		CompanionID: r.CompanionID,
		DisplayName: r.HolderName,
	}
}
