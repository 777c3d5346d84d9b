package repositories

import (
	"context"

	"backoffice/internal/domain/models"
)

// ReservationStore is the persistence boundary for seat reservations. The
// hosted record store offers no multi-record transaction; callers own the
// validate-then-write ordering.
type ReservationStore interface {
	Insert(ctx context.Context, r models.SeatReservation) error
	// Delete removes a reservation by id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.SeatReservation, bool, error)
	ListByDestination(ctx context.Context, destinationID string) ([]models.SeatReservation, error)
	// ListByTraveler returns every reservation whose client_id matches,
	// which includes the traveler's companion seats.
	ListByTraveler(ctx context.Context, travelerID string) ([]models.SeatReservation, error)
}

// TravelerDirectory is read-mostly: the core never creates travelers, it only
// reads them and maintains the denormalized seat field.
type TravelerDirectory interface {
	Get(ctx context.Context, id string) (models.Traveler, bool, error)
	// ListByDestination matches on the traveler's destination name, the way
	// the record store denormalizes the link.
	ListByDestination(ctx context.Context, destinationName string) ([]models.Traveler, error)
	UpdateSeat(ctx context.Context, id, seatNumber string) error
}

type CompanionDirectory interface {
	Get(ctx context.Context, id string) (models.Companion, bool, error)
	ListByTraveler(ctx context.Context, travelerID string) ([]models.Companion, error)
	// All returns every companion in the system. Legacy reservation rows
	// reference companions loosely by name, across destinations.
	All(ctx context.Context) ([]models.Companion, error)
	UpdateSeat(ctx context.Context, id, seatNumber string) error
}

type DestinationLookup interface {
	Get(ctx context.Context, id string) (models.Destination, bool, error)
}
