package models

// Traveler is the primary booked person ("client" in the record store).
// Created and edited elsewhere; this core only reads it and maintains the
// denormalized SeatNumber convenience field.
type Traveler struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Document    string `json:"document,omitempty"`
	Destination string `json:"destination"`
	SeatNumber  string `json:"seat_number,omitempty"`
	Deleted     bool   `json:"deleted,omitempty"`
	Cancelled   bool   `json:"cancelled,omitempty"`
}

// ActiveTraveler is the single definition of "this traveler still counts".
// The conflict guard and the roster must agree on it, so neither reimplements
// the predicate inline.
func (t Traveler) ActiveTraveler() bool {
	return !t.Deleted && !t.Cancelled
}

// Companion is a secondary passenger ("child" in the record store) that
// belongs to exactly one traveler for its whole lifetime.
type Companion struct {
	ID         string `json:"id"`
	TravelerID string `json:"client_id"`
	Name       string `json:"name"`
	SeatNumber string `json:"seat_number,omitempty"`
}
