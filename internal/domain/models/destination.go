package models

// Destination is owned by the trip-planning side of the system; the seat core
// only reads the linked bus and its capacity through it.
type Destination struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BusID     string `json:"bus_id,omitempty"`
	SeatCount int    `json:"seat_count"`
	Active    bool   `json:"active"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
