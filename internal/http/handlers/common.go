package handlers

import (
	"net/http"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// API bundles the seat-core services behind the HTTP surface. Everything is
// injected; handlers never reach for globals.
type API struct {
	Inventory    services.SeatInventory
	Booking      services.BookingService
	Roster       services.RosterService
	Cancellation services.CancellationService
	Locks        *services.DestinationLocks
}

// lockDestination serializes writers for one destination when locking is
// enabled. The returned func must always be called.
func (a *API) lockDestination(destinationID string) func() {
	if a.Locks == nil {
		return func() {}
	}
	return a.Locks.Lock(destinationID)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "invalid payload", nil)
		return false
	}
	return true
}
