package services

import "sync"

// DestinationLocks serializes writers per destination. The booking protocol
// itself is check-then-act over a store with no transactions, so two
// concurrent bookings for the same seat can both pass validation; taking the
// destination's lock around the whole operation closes that window. The
// services stay usable without it, which keeps the window reproducible in
// tests.
type DestinationLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDestinationLocks() *DestinationLocks {
	return &DestinationLocks{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the destination's mutex and returns the unlock func.
func (l *DestinationLocks) Lock(destinationID string) func() {
	l.mu.Lock()
	m, ok := l.locks[destinationID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[destinationID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
