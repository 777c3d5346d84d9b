package services

import (
	"sort"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// ResolveReservations maps each raw reservation row for one destination back
// to the passenger that actually holds it. It is pure: the caller supplies
// the rows, the full traveler directory keyed by id, and every companion in
// the system (legacy rows reference companions by name only, and the name may
// belong to a companion filed under another destination).
//
// Per row, first match wins:
//  1. child_id points at a known companion
//  2. the snapshot name equals a companion name system-wide (normalized)
//  3. client_id points at a known traveler; if the snapshot name matches one
//     of that traveler's own companions the seat is reclassified as theirs
//  4. otherwise the seat surfaces as unresolved instead of disappearing
func ResolveReservations(
	rows []models.SeatReservation,
	travelers map[string]models.Traveler,
	companions []models.Companion,
) []models.ResolvedPassenger {
	// Deterministic tie-break: two companions sharing a normalized name is
	// accepted ambiguity, and the lowest id always wins.
	byName := map[string]models.Companion{}
	sorted := make([]models.Companion, len(companions))
	copy(sorted, companions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for i := len(sorted) - 1; i >= 0; i-- {
		if key := utils.NormalizeName(sorted[i].Name); key != "" {
			byName[key] = sorted[i]
		}
	}
	byID := map[string]models.Companion{}
	for _, c := range companions {
		byID[c.ID] = c
	}

	out := make([]models.ResolvedPassenger, 0, len(rows))
	for _, row := range rows {
		if !row.Active() {
			continue
		}
		out = append(out, resolveRow(row, travelers, byID, byName))
	}
	return out
}

func resolveRow(
	row models.SeatReservation,
	travelers map[string]models.Traveler,
	byID map[string]models.Companion,
	byName map[string]models.Companion,
) models.ResolvedPassenger {
	if row.CompanionID != "" {
		if c, ok := byID[row.CompanionID]; ok {
			return companionEntry(row, c, travelers)
		}
	}

	nameKey := utils.NormalizeName(row.HolderName)
	if nameKey != "" {
		if c, ok := byName[nameKey]; ok {
			return companionEntry(row, c, travelers)
		}
	}

	if t, ok := travelers[row.TravelerID]; ok {
		// A legacy row can carry the traveler's id but a companion's name.
		for _, c := range companionsOf(byID, t.ID) {
			if nameKey != "" && utils.NormalizeName(c.Name) == nameKey {
				return companionEntry(row, c, travelers)
			}
		}
		name := t.Name
		if row.HolderName != "" {
			name = row.HolderName
		}
		return models.ResolvedPassenger{
			SeatNumber:    row.SeatNumber,
			Name:          name,
			Kind:          models.OwnerTraveler,
			TravelerID:    t.ID,
			ReservationID: row.ID,
			OwnerDeleted:  t.Deleted,
		}
	}

	// Orphan: the seat stays on the roster, owner unknown.
	return models.ResolvedPassenger{
		SeatNumber:    row.SeatNumber,
		Name:          row.HolderName,
		Kind:          models.OwnerUnresolved,
		ReservationID: row.ID,
	}
}

func companionEntry(
	row models.SeatReservation,
	c models.Companion,
	travelers map[string]models.Traveler,
) models.ResolvedPassenger {
	entry := models.ResolvedPassenger{
		SeatNumber:    row.SeatNumber,
		Name:          c.Name,
		Kind:          models.OwnerCompanion,
		TravelerID:    c.TravelerID,
		CompanionID:   c.ID,
		ReservationID: row.ID,
	}
	if owner, ok := travelers[c.TravelerID]; ok {
		entry.OwnerDeleted = owner.Deleted
	}
	return entry
}

func companionsOf(byID map[string]models.Companion, travelerID string) []models.Companion {
	out := []models.Companion{}
	for _, c := range byID {
		if c.TravelerID == travelerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
