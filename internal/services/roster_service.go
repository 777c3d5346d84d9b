package services

import (
	"context"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// RosterService produces the full passenger list for a destination: seated
// passengers resolved from reservation rows, plus every active traveler and
// companion still awaiting a seat. Output is derived fresh per call.
type RosterService struct {
	Reservations repositories.ReservationStore
	Travelers    repositories.TravelerDirectory
	Companions   repositories.CompanionDirectory
	Destinations repositories.DestinationLookup
}

// Roster guarantees each traveler and companion appears exactly once:
// roster size = seated + awaiting.
func (s RosterService) Roster(ctx context.Context, destinationID string) ([]models.ResolvedPassenger, error) {
	dest, ok, err := s.Destinations.Get(ctx, destinationID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if !ok {
		return nil, domain.NotFoundError{Resource: "destination"}
	}

	rows, err := s.Reservations.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	destTravelers, err := s.Travelers.ListByDestination(ctx, dest.Name)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	travelerMap := map[string]models.Traveler{}
	for _, t := range destTravelers {
		travelerMap[t.ID] = t
	}
	// Rows can reference travelers outside this destination's list (moved or
	// soft-deleted); fetch those individually so orphans stay attributable.
	for _, row := range rows {
		if _, ok := travelerMap[row.TravelerID]; ok || row.TravelerID == "" {
			continue
		}
		t, found, err := s.Travelers.Get(ctx, row.TravelerID)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		if found {
			travelerMap[t.ID] = t
		}
	}

	companions, err := s.Companions.All(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	roster := ResolveReservations(rows, travelerMap, companions)

	seatedTravelers := map[string]bool{}
	seatedCompanions := map[string]bool{}
	// Normalized names already on the roster, keyed per owning traveler so a
	// loose-named legacy row suppresses only its own family's duplicate.
	familyNames := map[string]map[string]bool{}
	noteName := func(travelerID, name string) {
		key := utils.NormalizeName(name)
		if key == "" {
			return
		}
		if familyNames[travelerID] == nil {
			familyNames[travelerID] = map[string]bool{}
		}
		familyNames[travelerID][key] = true
	}
	for _, p := range roster {
		switch p.Kind {
		case models.OwnerTraveler:
			seatedTravelers[p.TravelerID] = true
		case models.OwnerCompanion:
			seatedCompanions[p.CompanionID] = true
		case models.OwnerUnresolved:
			// No identity to suppress.
		}
		noteName(p.TravelerID, p.Name)
	}

	for _, t := range destTravelers {
		if !t.ActiveTraveler() {
			continue
		}
		if !seatedTravelers[t.ID] && !familyNames[t.ID][utils.NormalizeName(t.Name)] {
			roster = append(roster, models.ResolvedPassenger{
				Name:       t.Name,
				Kind:       models.OwnerTraveler,
				TravelerID: t.ID,
			})
			noteName(t.ID, t.Name)
		}
		owned, err := s.Companions.ListByTraveler(ctx, t.ID)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		for _, c := range owned {
			if seatedCompanions[c.ID] {
				continue
			}
			if familyNames[t.ID][utils.NormalizeName(c.Name)] {
				continue
			}
			roster = append(roster, models.ResolvedPassenger{
				Name:        c.Name,
				Kind:        models.OwnerCompanion,
				TravelerID:  t.ID,
				CompanionID: c.ID,
			})
			noteName(t.ID, c.Name)
		}
	}

	return roster, nil
}

// Availability feeds the seat counters: available = capacity - roster size.
func (s RosterService) Availability(ctx context.Context, destinationID string) (models.Availability, error) {
	dest, ok, err := s.Destinations.Get(ctx, destinationID)
	if err != nil {
		return models.Availability{}, domain.InternalError{Err: err}
	}
	if !ok {
		return models.Availability{}, domain.NotFoundError{Resource: "destination"}
	}
	roster, err := s.Roster(ctx, destinationID)
	if err != nil {
		return models.Availability{}, err
	}
	return models.Availability{
		DestinationID: destinationID,
		Capacity:      dest.SeatCount,
		RosterSize:    len(roster),
		Available:     dest.SeatCount - len(roster),
	}, nil
}
