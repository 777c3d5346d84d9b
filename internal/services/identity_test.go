package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/models"
)

func reservation(id, seat, travelerID, companionID, name string) models.SeatReservation {
	return models.SeatReservation{
		ID:            id,
		DestinationID: "d1",
		BusID:         "b1",
		SeatNumber:    seat,
		TravelerID:    travelerID,
		CompanionID:   companionID,
		HolderName:    name,
		Status:        models.StatusReserved,
		IsCompanion:   companionID != "",
		ReservedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestResolveDirectCompanionReference(t *testing.T) {
	travelers := map[string]models.Traveler{
		"a": {ID: "a", Name: "Carlos Lima", Destination: "Gramado"},
	}
	companions := []models.Companion{
		{ID: "c1", TravelerID: "a", Name: "Maria Lima"},
	}
	rows := []models.SeatReservation{reservation("r1", "2", "a", "c1", "Maria Lima")}

	out := ResolveReservations(rows, travelers, companions)
	require.Len(t, out, 1)
	assert.Equal(t, models.OwnerCompanion, out[0].Kind)
	assert.Equal(t, "c1", out[0].CompanionID)
	assert.Equal(t, "a", out[0].TravelerID)
	assert.Equal(t, "2", out[0].SeatNumber)
}

func TestResolveCompanionByNameAcrossDestinations(t *testing.T) {
	// The companion record lives under a traveler from another destination;
	// the legacy row only carries the name.
	travelers := map[string]models.Traveler{
		"a": {ID: "a", Name: "Carlos Lima", Destination: "Gramado"},
		"z": {ID: "z", Name: "Paula Reis", Destination: "Fortaleza"},
	}
	companions := []models.Companion{
		{ID: "c9", TravelerID: "z", Name: "José da Costa"},
	}
	rows := []models.SeatReservation{reservation("r1", "7", "", "", "jose costa")}

	out := ResolveReservations(rows, travelers, companions)
	require.Len(t, out, 1)
	assert.Equal(t, models.OwnerCompanion, out[0].Kind)
	assert.Equal(t, "c9", out[0].CompanionID)
	assert.Equal(t, "z", out[0].TravelerID)
}

func TestResolveReclassifiesTravelerRowWithCompanionName(t *testing.T) {
	// Legacy shape: no child_id, the traveler's own id, but a companion's
	// name in the snapshot. The seat belongs to the companion.
	travelers := map[string]models.Traveler{
		"a": {ID: "a", Name: "Carlos Lima", Destination: "Gramado"},
	}
	companions := []models.Companion{
		{ID: "c1", TravelerID: "a", Name: "Maria"},
	}
	rows := []models.SeatReservation{reservation("r1", "3", "a", "", "Maria")}

	out := ResolveReservations(rows, travelers, companions)
	require.Len(t, out, 1)
	assert.Equal(t, models.OwnerCompanion, out[0].Kind)
	assert.Equal(t, "c1", out[0].CompanionID)
	assert.Equal(t, "a", out[0].TravelerID)
}

func TestResolveTravelerOwnSeat(t *testing.T) {
	travelers := map[string]models.Traveler{
		"a": {ID: "a", Name: "Carlos Lima", Destination: "Gramado"},
	}
	rows := []models.SeatReservation{reservation("r1", "1", "a", "", "Carlos Lima")}

	out := ResolveReservations(rows, travelers, nil)
	require.Len(t, out, 1)
	assert.Equal(t, models.OwnerTraveler, out[0].Kind)
	assert.Equal(t, "a", out[0].TravelerID)
	assert.False(t, out[0].OwnerDeleted)
}

func TestResolveOrphanSurvives(t *testing.T) {
	rows := []models.SeatReservation{reservation("r1", "5", "gone", "", "Antigo Cliente")}

	out := ResolveReservations(rows, map[string]models.Traveler{}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, models.OwnerUnresolved, out[0].Kind)
	assert.Equal(t, "5", out[0].SeatNumber)
	assert.Equal(t, "Antigo Cliente", out[0].Name)
	assert.Empty(t, out[0].TravelerID)
}

func TestResolveDeletedOwnerIsMarkedNotDropped(t *testing.T) {
	travelers := map[string]models.Traveler{
		"a": {ID: "a", Name: "Carlos Lima", Destination: "Gramado", Deleted: true},
	}
	rows := []models.SeatReservation{reservation("r1", "1", "a", "", "Carlos Lima")}

	out := ResolveReservations(rows, travelers, nil)
	require.Len(t, out, 1)
	assert.Equal(t, models.OwnerTraveler, out[0].Kind)
	assert.True(t, out[0].OwnerDeleted)
}

func TestResolveNameTieLowestCompanionIDWins(t *testing.T) {
	travelers := map[string]models.Traveler{
		"a": {ID: "a", Name: "Carlos", Destination: "Gramado"},
		"b": {ID: "b", Name: "Bruno", Destination: "Gramado"},
	}
	companions := []models.Companion{
		{ID: "c2", TravelerID: "b", Name: "Maria Santos"},
		{ID: "c1", TravelerID: "a", Name: "maria dos santos"},
	}
	rows := []models.SeatReservation{reservation("r1", "4", "", "", "Maria Santos")}

	out := ResolveReservations(rows, travelers, companions)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].CompanionID, "ties resolve to the lowest companion id")
}

func TestResolveSkipsCancelledRows(t *testing.T) {
	row := reservation("r1", "1", "a", "", "Carlos")
	row.Status = models.StatusCancelled

	out := ResolveReservations([]models.SeatReservation{row}, map[string]models.Traveler{}, nil)
	assert.Empty(t, out)
}
