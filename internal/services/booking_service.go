package services

import (
	"context"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
)

// CompanionSeat names one companion seat inside a booking request.
type CompanionSeat struct {
	CompanionID string `json:"child_id"`
	SeatNumber  string `json:"seat_number"`
}

// BookingResult reports the reservations a successful booking created.
type BookingResult struct {
	TravelerSeat   models.SeatReservation   `json:"traveler_seat"`
	CompanionSeats []models.SeatReservation `json:"companion_seats"`
}

// BookingService assigns a traveler's seat and their companions' seats as one
// logical unit. The record store has no multi-record transaction, so the
// operation is two explicit phases: validate everything, then write
// everything. A failure in phase one leaves visible state untouched. The
// window between the phases is real and tested; per-destination locking is
// layered on top by the caller when wanted (see DestinationLocks).
type BookingService struct {
	Inventory    SeatInventory
	Reservations repositories.ReservationStore
	Travelers    repositories.TravelerDirectory
	Companions   repositories.CompanionDirectory
	Destinations repositories.DestinationLookup
}

type seatCandidate struct {
	seat   string
	holder models.SeatHolder
}

// Book reserves travelerSeat for the traveler and one seat per companion
// entry. Previous reservations of the whole family at this destination are
// replaced, never mixed with the new ones.
func (s BookingService) Book(ctx context.Context, travelerID, destinationID, busID, travelerSeat string, companionSeats []CompanionSeat) (BookingResult, error) {
	dest, ok, err := s.Destinations.Get(ctx, destinationID)
	if err != nil {
		return BookingResult{}, domain.InternalError{Err: err}
	}
	if !ok {
		return BookingResult{}, domain.NotFoundError{Resource: "destination"}
	}
	if busID == "" {
		busID = dest.BusID
	}

	traveler, ok, err := s.Travelers.Get(ctx, travelerID)
	if err != nil {
		return BookingResult{}, domain.InternalError{Err: err}
	}
	if !ok {
		return BookingResult{}, domain.NotFoundError{Resource: "traveler"}
	}

	candidates, err := s.collectCandidates(ctx, traveler, travelerSeat, companionSeats)
	if err != nil {
		return BookingResult{}, err
	}

	// Phase one: validate the whole batch before touching anything.
	if err := s.checkConflicts(ctx, destinationID, candidates); err != nil {
		return BookingResult{}, err
	}

	// Phase two: replace the family's reservations. Re-running this phase
	// converges: the delete sweep removes whatever a previous partial run
	// wrote before the fresh inserts.
	if err := s.releaseFamily(ctx, traveler.ID, destinationID); err != nil {
		return BookingResult{}, err
	}
	// Companions left out of this batch no longer hold anything; their
	// convenience seat field must not keep pointing at a released seat.
	if err := s.clearStaleSeats(ctx, traveler.ID, candidates); err != nil {
		return BookingResult{}, err
	}

	result := BookingResult{CompanionSeats: []models.SeatReservation{}}
	for _, cand := range candidates {
		res, err := s.Inventory.Reserve(ctx, destinationID, busID, cand.seat, cand.holder)
		if err != nil {
			return BookingResult{}, err
		}
		if cand.holder.CompanionID == "" {
			result.TravelerSeat = res
			if err := s.Travelers.UpdateSeat(ctx, traveler.ID, cand.seat); err != nil {
				return BookingResult{}, domain.InternalError{Err: err}
			}
		} else {
			result.CompanionSeats = append(result.CompanionSeats, res)
			if err := s.Companions.UpdateSeat(ctx, cand.holder.CompanionID, cand.seat); err != nil {
				return BookingResult{}, domain.InternalError{Err: err}
			}
		}
	}
	return result, nil
}

func (s BookingService) collectCandidates(ctx context.Context, traveler models.Traveler, travelerSeat string, companionSeats []CompanionSeat) ([]seatCandidate, error) {
	travelerSeat = strings.TrimSpace(travelerSeat)
	if travelerSeat == "" {
		return nil, domain.ValidationError{Field: "seat_number", Msg: "traveler seat is required"}
	}

	candidates := []seatCandidate{{
		seat: travelerSeat,
		holder: models.SeatHolder{
			TravelerID:  traveler.ID,
			DisplayName: traveler.Name,
		},
	}}

	seen := map[string]bool{travelerSeat: true}
	for _, cs := range companionSeats {
		seat := strings.TrimSpace(cs.SeatNumber)
		if seat == "" {
			return nil, domain.ValidationError{Field: "seat_number", Msg: "companion seat is required"}
		}
		companion, ok, err := s.Companions.Get(ctx, cs.CompanionID)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		if !ok {
			return nil, domain.NotFoundError{Resource: "companion"}
		}
		if companion.TravelerID != traveler.ID {
			return nil, domain.ValidationError{Field: "child_id", Msg: "companion belongs to another traveler"}
		}
		if seen[seat] {
			return nil, domain.DuplicateSeatError{Seat: seat}
		}
		seen[seat] = true
		candidates = append(candidates, seatCandidate{
			seat: seat,
			holder: models.SeatHolder{
				TravelerID:  traveler.ID,
				CompanionID: companion.ID,
				DisplayName: companion.Name,
			},
		})
	}
	return candidates, nil
}

// checkConflicts collects every offending seat, not just the first, so the
// caller sees the whole problem at once.
func (s BookingService) checkConflicts(ctx context.Context, destinationID string, candidates []seatCandidate) error {
	conflicts := []string{}
	for _, cand := range candidates {
		res, held, err := s.Inventory.activeHolder(ctx, destinationID, cand.seat)
		if err != nil {
			return err
		}
		if held && !res.Holder().Same(cand.holder) {
			conflicts = append(conflicts, cand.seat)
		}
	}
	if len(conflicts) > 0 {
		return domain.SeatConflictError{DestinationID: destinationID, Seats: conflicts}
	}
	return nil
}

func (s BookingService) clearStaleSeats(ctx context.Context, travelerID string, candidates []seatCandidate) error {
	rebooked := map[string]bool{}
	for _, cand := range candidates {
		if cand.holder.CompanionID != "" {
			rebooked[cand.holder.CompanionID] = true
		}
	}
	owned, err := s.Companions.ListByTraveler(ctx, travelerID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	for _, c := range owned {
		if rebooked[c.ID] || c.SeatNumber == "" {
			continue
		}
		if err := s.Companions.UpdateSeat(ctx, c.ID, ""); err != nil {
			return domain.InternalError{Err: err}
		}
	}
	return nil
}

func (s BookingService) releaseFamily(ctx context.Context, travelerID, destinationID string) error {
	rows, err := s.Reservations.ListByTraveler(ctx, travelerID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	for _, r := range rows {
		if r.DestinationID != destinationID || !r.Active() {
			continue
		}
		if err := s.Inventory.Release(ctx, r.ID); err != nil {
			return err
		}
	}
	return nil
}
