package services

import (
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
)

type fixture struct {
	store        *repositories.MemoryStore
	inventory    SeatInventory
	booking      BookingService
	roster       RosterService
	cancellation CancellationService
	ledger       *recordingLedger
}

func newFixture() *fixture {
	store := repositories.NewMemoryStore()
	store.PutDestination(models.Destination{ID: "d1", Name: "Gramado", BusID: "b1", SeatCount: 4, Active: true})
	store.PutTraveler(models.Traveler{ID: "a", Name: "Carlos Lima", Destination: "Gramado"})
	store.PutTraveler(models.Traveler{ID: "b", Name: "Bruno Dias", Destination: "Gramado"})
	store.PutCompanion(models.Companion{ID: "c1", TravelerID: "a", Name: "Maria Lima"})

	inventory := SeatInventory{Reservations: store, Travelers: store.Travelers()}
	ledger := &recordingLedger{}
	return &fixture{
		store:     store,
		inventory: inventory,
		booking: BookingService{
			Inventory:    inventory,
			Reservations: store,
			Travelers:    store.Travelers(),
			Companions:   store.Companions(),
			Destinations: store.Destinations(),
		},
		roster: RosterService{
			Reservations: store,
			Travelers:    store.Travelers(),
			Companions:   store.Companions(),
			Destinations: store.Destinations(),
		},
		cancellation: CancellationService{
			Inventory:    inventory,
			Reservations: store,
			Travelers:    store.Travelers(),
			Companions:   store.Companions(),
			Ledger:       ledger,
		},
		ledger: ledger,
	}
}
