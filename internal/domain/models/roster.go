package models

// OwnerKind tags who actually holds a resolved seat. Every consumer switches
// on all three cases; there is no implicit default owner.
type OwnerKind string

const (
	OwnerTraveler   OwnerKind = "traveler"
	OwnerCompanion  OwnerKind = "companion"
	OwnerUnresolved OwnerKind = "unresolved"
)

// ResolvedPassenger is one roster line: a passenger with or without a seat.
// Derived on every roster call, never persisted or cached.
type ResolvedPassenger struct {
	SeatNumber    string    `json:"seat_number,omitempty"`
	Name          string    `json:"name"`
	Kind          OwnerKind `json:"kind"`
	TravelerID    string    `json:"client_id,omitempty"`
	CompanionID   string    `json:"child_id,omitempty"`
	ReservationID string    `json:"reservation_id,omitempty"`
	OwnerDeleted  bool      `json:"owner_deleted,omitempty"`
}

// Seated reports whether this entry currently occupies a seat.
func (p ResolvedPassenger) Seated() bool {
	return p.SeatNumber != ""
}

// Availability is the seat-counter view a bus layout UI asks for.
type Availability struct {
	DestinationID string `json:"destination_id"`
	Capacity      int    `json:"capacity"`
	RosterSize    int    `json:"roster_size"`
	Available     int    `json:"available"`
}

// ReleasedSeat records one reservation removed during cancellation, enough
// for the credit subsystem to reference it.
type ReleasedSeat struct {
	ReservationID string `json:"reservation_id"`
	DestinationID string `json:"destination_id"`
	SeatNumber    string `json:"seat_number"`
	CompanionID   string `json:"child_id,omitempty"`
}

// ReleaseSummary is the hand-off payload to the external credit/ledger side.
type ReleaseSummary struct {
	TravelerID string         `json:"client_id"`
	Released   []ReleasedSeat `json:"released"`
}
