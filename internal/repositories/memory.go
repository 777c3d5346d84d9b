package repositories

import (
	"context"
	"sort"
	"sync"

	"backoffice/internal/domain/models"
)

// MemoryStore implements every store interface in memory. It backs the
// service tests, including the ones that interleave two callers through the
// hook fields below to reproduce the check-then-act window of the hosted
// record store.
type MemoryStore struct {
	mu sync.Mutex

	reservations map[string]models.SeatReservation
	travelers    map[string]models.Traveler
	companions   map[string]models.Companion
	destinations map[string]models.Destination

	// BeforeInsert, when set, runs outside the lock just before a
	// reservation write commits. Tests use it to park one caller between
	// its conflict check and its write.
	BeforeInsert func(r models.SeatReservation)
	// BeforeList runs outside the lock before any reservation list read.
	BeforeList func(destinationID string)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reservations: map[string]models.SeatReservation{},
		travelers:    map[string]models.Traveler{},
		companions:   map[string]models.Companion{},
		destinations: map[string]models.Destination{},
	}
}

// Seed helpers. Fixtures call these directly; production code never does.

func (m *MemoryStore) PutTraveler(t models.Traveler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.travelers[t.ID] = t
}

func (m *MemoryStore) PutCompanion(c models.Companion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companions[c.ID] = c
}

func (m *MemoryStore) PutDestination(d models.Destination) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destinations[d.ID] = d
}

func (m *MemoryStore) PutReservation(r models.SeatReservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[r.ID] = r
}

// ReservationStore

func (m *MemoryStore) Insert(ctx context.Context, r models.SeatReservation) error {
	if hook := m.BeforeInsert; hook != nil {
		hook(r)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[r.ID] = r
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reservations, id)
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (models.SeatReservation, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.SeatReservation{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[id]
	return r, ok, nil
}

func (m *MemoryStore) ListByDestination(ctx context.Context, destinationID string) ([]models.SeatReservation, error) {
	if hook := m.BeforeList; hook != nil {
		hook(destinationID)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.SeatReservation{}
	for _, r := range m.reservations {
		if r.DestinationID == destinationID {
			out = append(out, r)
		}
	}
	sortReservations(out)
	return out, nil
}

func (m *MemoryStore) ListByTraveler(ctx context.Context, travelerID string) ([]models.SeatReservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.SeatReservation{}
	for _, r := range m.reservations {
		if r.TravelerID == travelerID {
			out = append(out, r)
		}
	}
	sortReservations(out)
	return out, nil
}

// TravelerDirectory

func (m *MemoryStore) GetTraveler(ctx context.Context, id string) (models.Traveler, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Traveler{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.travelers[id]
	return t, ok, nil
}

func (m *MemoryStore) ListTravelersByDestination(ctx context.Context, destinationName string) ([]models.Traveler, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Traveler{}
	for _, t := range m.travelers {
		if t.Destination == destinationName {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) UpdateTravelerSeat(ctx context.Context, id, seatNumber string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.travelers[id]
	if !ok {
		return nil
	}
	t.SeatNumber = seatNumber
	m.travelers[id] = t
	return nil
}

// CompanionDirectory

func (m *MemoryStore) GetCompanion(ctx context.Context, id string) (models.Companion, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Companion{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companions[id]
	return c, ok, nil
}

func (m *MemoryStore) ListCompanionsByTraveler(ctx context.Context, travelerID string) ([]models.Companion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Companion{}
	for _, c := range m.companions {
		if c.TravelerID == travelerID {
			out = append(out, c)
		}
	}
	sortCompanions(out)
	return out, nil
}

func (m *MemoryStore) AllCompanions(ctx context.Context) ([]models.Companion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Companion{}
	for _, c := range m.companions {
		out = append(out, c)
	}
	sortCompanions(out)
	return out, nil
}

func (m *MemoryStore) UpdateCompanionSeat(ctx context.Context, id, seatNumber string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companions[id]
	if !ok {
		return nil
	}
	c.SeatNumber = seatNumber
	m.companions[id] = c
	return nil
}

// DestinationLookup

func (m *MemoryStore) GetDestination(ctx context.Context, id string) (models.Destination, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Destination{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.destinations[id]
	return d, ok, nil
}

func sortReservations(rs []models.SeatReservation) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].ReservedAt.Equal(rs[j].ReservedAt) {
			return rs[i].ReservedAt.Before(rs[j].ReservedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

func sortCompanions(cs []models.Companion) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
}

// Adapter views so one MemoryStore serves all four interfaces without method
// name clashes.

type memTravelers struct{ *MemoryStore }

func (m memTravelers) Get(ctx context.Context, id string) (models.Traveler, bool, error) {
	return m.GetTraveler(ctx, id)
}

func (m memTravelers) ListByDestination(ctx context.Context, destinationName string) ([]models.Traveler, error) {
	return m.ListTravelersByDestination(ctx, destinationName)
}

func (m memTravelers) UpdateSeat(ctx context.Context, id, seatNumber string) error {
	return m.UpdateTravelerSeat(ctx, id, seatNumber)
}

type memCompanions struct{ *MemoryStore }

func (m memCompanions) Get(ctx context.Context, id string) (models.Companion, bool, error) {
	return m.GetCompanion(ctx, id)
}

func (m memCompanions) ListByTraveler(ctx context.Context, travelerID string) ([]models.Companion, error) {
	return m.ListCompanionsByTraveler(ctx, travelerID)
}

func (m memCompanions) All(ctx context.Context) ([]models.Companion, error) {
	return m.AllCompanions(ctx)
}

func (m memCompanions) UpdateSeat(ctx context.Context, id, seatNumber string) error {
	return m.UpdateCompanionSeat(ctx, id, seatNumber)
}

type memDestinations struct{ *MemoryStore }

func (m memDestinations) Get(ctx context.Context, id string) (models.Destination, bool, error) {
	return m.GetDestination(ctx, id)
}

// Travelers returns the store as a TravelerDirectory.
func (m *MemoryStore) Travelers() TravelerDirectory { return memTravelers{m} }

// Companions returns the store as a CompanionDirectory.
func (m *MemoryStore) Companions() CompanionDirectory { return memCompanions{m} }

// Destinations returns the store as a DestinationLookup.
func (m *MemoryStore) Destinations() DestinationLookup { return memDestinations{m} }
