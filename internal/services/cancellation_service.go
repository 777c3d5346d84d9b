package services

import (
	"context"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// LedgerNotifier is the hand-off point to the external credit/ledger
// subsystem. This core owns no financial logic.
type LedgerNotifier interface {
	ReservationsReleased(ctx context.Context, summary models.ReleaseSummary) error
}

// LoggingLedger stands in when no ledger transport is configured: the
// release summary is still observable in the logs for manual crediting.
type LoggingLedger struct{}

func (LoggingLedger) ReservationsReleased(_ context.Context, summary models.ReleaseSummary) error {
	utils.LogEvent("", "cancellation", "release_summary",
		fmt.Sprintf("client_id=%s released=%d", summary.TravelerID, len(summary.Released)))
	return nil
}

// CancellationService releases every seat a traveler's family holds. After a
// successful Cancel, Seat Inventory reports zero active reservations for the
// traveler or any of its companions.
type CancellationService struct {
	Inventory    SeatInventory
	Reservations repositories.ReservationStore
	Travelers    repositories.TravelerDirectory
	Companions   repositories.CompanionDirectory
	Ledger       LedgerNotifier
}

// Cancel collects the family's active reservations, releases each, clears the
// convenience seat fields, and hands the release summary to the ledger side.
// A ledger delivery failure is logged, not surfaced: the seats are already
// free and the credit side reconciles from its own queue.
func (s CancellationService) Cancel(ctx context.Context, travelerID string) (models.ReleaseSummary, error) {
	traveler, ok, err := s.Travelers.Get(ctx, travelerID)
	if err != nil {
		return models.ReleaseSummary{}, domain.InternalError{Err: err}
	}
	if !ok {
		return models.ReleaseSummary{}, domain.NotFoundError{Resource: "traveler"}
	}

	rows, err := s.Reservations.ListByTraveler(ctx, traveler.ID)
	if err != nil {
		return models.ReleaseSummary{}, domain.InternalError{Err: err}
	}

	summary := models.ReleaseSummary{TravelerID: traveler.ID, Released: []models.ReleasedSeat{}}
	for _, r := range rows {
		if !r.Active() {
			continue
		}
		if err := s.Inventory.Release(ctx, r.ID); err != nil {
			return models.ReleaseSummary{}, err
		}
		summary.Released = append(summary.Released, models.ReleasedSeat{
			ReservationID: r.ID,
			DestinationID: r.DestinationID,
			SeatNumber:    r.SeatNumber,
			CompanionID:   r.CompanionID,
		})
	}

	if err := s.Travelers.UpdateSeat(ctx, traveler.ID, ""); err != nil {
		return models.ReleaseSummary{}, domain.InternalError{Err: err}
	}
	owned, err := s.Companions.ListByTraveler(ctx, traveler.ID)
	if err != nil {
		return models.ReleaseSummary{}, domain.InternalError{Err: err}
	}
	for _, c := range owned {
		if c.SeatNumber == "" {
			continue
		}
		if err := s.Companions.UpdateSeat(ctx, c.ID, ""); err != nil {
			return models.ReleaseSummary{}, domain.InternalError{Err: err}
		}
	}

	if s.Ledger != nil {
		if err := s.Ledger.ReservationsReleased(ctx, summary); err != nil {
			utils.LogEvent("", "cancellation", "ledger_notify",
				fmt.Sprintf("client_id=%s err=%v", traveler.ID, err))
		}
	}
	return summary, nil
}
