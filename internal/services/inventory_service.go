package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
)

// SeatInventory guards the one-holder-per-seat invariant over the reservation
// store. The store has no transactions, so the guard is a read-then-write;
// see BookingService for how callers are expected to sequence it.
type SeatInventory struct {
	Reservations repositories.ReservationStore
	Travelers    repositories.TravelerDirectory
}

// Reserve creates a reservation for one seat, failing when the seat is held
// by a different holder. A holder re-taking its own seat returns the existing
// reservation untouched.
func (s SeatInventory) Reserve(ctx context.Context, destinationID, busID, seatNumber string, holder models.SeatHolder) (models.SeatReservation, error) {
	seatNumber = strings.TrimSpace(seatNumber)
	if seatNumber == "" {
		return models.SeatReservation{}, domain.ValidationError{Field: "seat_number", Msg: "seat number is required"}
	}
	if holder.TravelerID == "" {
		return models.SeatReservation{}, domain.ValidationError{Field: "client_id", Msg: "holder traveler is required"}
	}

	existing, held, orphans, err := s.seatState(ctx, destinationID, seatNumber)
	if err != nil {
		return models.SeatReservation{}, err
	}
	if held {
		if existing.Holder().Same(holder) {
			return existing, nil
		}
		return models.SeatReservation{}, domain.SeatConflictError{
			DestinationID: destinationID,
			Seats:         []string{seatNumber},
		}
	}
	// An orphaned row (holder deleted or cancelled) does not block the seat,
	// but it must not survive the re-reservation either: leaving it reserved
	// would put two active rows on one seat.
	for _, o := range orphans {
		if err := s.Release(ctx, o.ID); err != nil {
			return models.SeatReservation{}, err
		}
	}

	res := models.SeatReservation{
		ID:            uuid.NewString(),
		DestinationID: destinationID,
		BusID:         busID,
		SeatNumber:    seatNumber,
		TravelerID:    holder.TravelerID,
		CompanionID:   holder.CompanionID,
		HolderName:    strings.TrimSpace(holder.DisplayName),
		Status:        models.StatusReserved,
		IsCompanion:   holder.CompanionID != "",
		ReservedAt:    time.Now(),
	}
	if err := s.Reservations.Insert(ctx, res); err != nil {
		return models.SeatReservation{}, domain.InternalError{Err: err}
	}
	return res, nil
}

// Release deletes a reservation. Idempotent: releasing an unknown or already
// released id succeeds.
func (s SeatInventory) Release(ctx context.Context, reservationID string) error {
	if strings.TrimSpace(reservationID) == "" {
		return nil
	}
	if err := s.Reservations.Delete(ctx, reservationID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// FindBySeat returns the active reservation on (destination, seat) when one
// exists. Orphaned rows (holder deleted) are still returned here; only the
// conflict guard treats those seats as free.
func (s SeatInventory) FindBySeat(ctx context.Context, destinationID, seatNumber string) (models.SeatReservation, bool, error) {
	seatNumber = strings.TrimSpace(seatNumber)
	rows, err := s.Reservations.ListByDestination(ctx, destinationID)
	if err != nil {
		return models.SeatReservation{}, false, domain.InternalError{Err: err}
	}
	for _, r := range rows {
		if r.Active() && r.SeatNumber == seatNumber {
			return r, true, nil
		}
	}
	return models.SeatReservation{}, false, nil
}

// ListByDestination returns every active reservation for a destination.
func (s SeatInventory) ListByDestination(ctx context.Context, destinationID string) ([]models.SeatReservation, error) {
	rows, err := s.Reservations.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	out := rows[:0:0]
	for _, r := range rows {
		if r.Active() {
			out = append(out, r)
		}
	}
	return out, nil
}

// activeHolder reports whether (destination, seat) is held by a passenger who
// still counts. A reservation whose traveler is soft-deleted or whose travel
// was cancelled does not block the seat.
func (s SeatInventory) activeHolder(ctx context.Context, destinationID, seatNumber string) (models.SeatReservation, bool, error) {
	res, held, _, err := s.seatState(ctx, destinationID, seatNumber)
	return res, held, err
}

// seatState splits the active rows on (destination, seat) into the live
// reservation, when one exists, and orphan rows whose holder no longer
// counts. Every row is inspected so a lingering orphan cannot shadow a live
// holder.
func (s SeatInventory) seatState(ctx context.Context, destinationID, seatNumber string) (live models.SeatReservation, held bool, orphans []models.SeatReservation, err error) {
	seatNumber = strings.TrimSpace(seatNumber)
	rows, err := s.Reservations.ListByDestination(ctx, destinationID)
	if err != nil {
		return models.SeatReservation{}, false, nil, domain.InternalError{Err: err}
	}
	for _, r := range rows {
		if !r.Active() || r.SeatNumber != seatNumber {
			continue
		}
		t, found, err := s.Travelers.Get(ctx, r.TravelerID)
		if err != nil {
			return models.SeatReservation{}, false, nil, domain.InternalError{Err: err}
		}
		if found && t.ActiveTraveler() {
			if !held {
				live = r
				held = true
			}
			continue
		}
		orphans = append(orphans, r)
	}
	return live, held, orphans, nil
}
