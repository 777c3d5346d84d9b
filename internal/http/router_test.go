package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
)

func newTestRouter() (*gin.Engine, *repositories.MemoryStore) {
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()
	store.PutDestination(models.Destination{ID: "d1", Name: "Gramado", BusID: "b1", SeatCount: 2, Active: true})
	store.PutTraveler(models.Traveler{ID: "a", Name: "Carlos Lima", Destination: "Gramado"})
	store.PutTraveler(models.Traveler{ID: "b", Name: "Bruno Dias", Destination: "Gramado"})
	store.PutCompanion(models.Companion{ID: "c1", TravelerID: "a", Name: "Maria Lima"})

	inventory := services.SeatInventory{Reservations: store, Travelers: store.Travelers()}
	api := &h.API{
		Inventory: inventory,
		Booking: services.BookingService{
			Inventory:    inventory,
			Reservations: store,
			Travelers:    store.Travelers(),
			Companions:   store.Companions(),
			Destinations: store.Destinations(),
		},
		Roster: services.RosterService{
			Reservations: store,
			Travelers:    store.Travelers(),
			Companions:   store.Companions(),
			Destinations: store.Destinations(),
		},
		Cancellation: services.CancellationService{
			Inventory:    inventory,
			Reservations: store,
			Travelers:    store.Travelers(),
			Companions:   store.Companions(),
		},
		Locks: services.NewDestinationLocks(),
	}
	return NewRouter(intconfig.Env{}, api), store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingEndpointStatusContract(t *testing.T) {
	r, _ := newTestRouter()

	// 201 on a clean booking.
	w := doJSON(t, r, http.MethodPost, "/api/travelers/a/booking", gin.H{
		"destination_id": "d1",
		"seat_number":    "1",
		"companion_seats": []gin.H{
			{"child_id": "c1", "seat_number": "2"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 409 with the offending seat list when another traveler wants seat 1.
	w = doJSON(t, r, http.MethodPost, "/api/travelers/b/booking", gin.H{
		"destination_id": "d1",
		"seat_number":    "1",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	var conflict struct {
		Details struct {
			Seats []string `json:"seats"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, []string{"1"}, conflict.Details.Seats)

	// 400 when one request hands the same seat to two people.
	w = doJSON(t, r, http.MethodPost, "/api/travelers/a/booking", gin.H{
		"destination_id": "d1",
		"seat_number":    "3",
		"companion_seats": []gin.H{
			{"child_id": "c1", "seat_number": "3"},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// 404 for an unknown destination.
	w = doJSON(t, r, http.MethodPost, "/api/travelers/a/booking", gin.H{
		"destination_id": "nope",
		"seat_number":    "1",
	})
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestReservationEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/reservations", gin.H{
		"destination_id": "d1",
		"bus_id":         "b1",
		"seat_number":    "12",
		"client_id":      "a",
		"client_name":    "Carlos Lima",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.SeatReservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/destinations/d1/seats/12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found models.SeatReservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, created.ID, found.ID)

	// Release is idempotent: both deletes return 204.
	w = doJSON(t, r, http.MethodDelete, "/api/reservations/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/reservations/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/destinations/d1/seats/12", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRosterAndAvailabilityEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/travelers/a/booking", gin.H{
		"destination_id": "d1",
		"seat_number":    "1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/destinations/d1/roster", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roster struct {
		Total    int `json:"total"`
		Seated   int `json:"seated"`
		Awaiting int `json:"awaiting"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	assert.Equal(t, 3, roster.Total, "Carlos seated, Maria and Bruno awaiting")
	assert.Equal(t, 1, roster.Seated)
	assert.Equal(t, 2, roster.Awaiting)

	w = doJSON(t, r, http.MethodGet, "/api/destinations/d1/availability", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var av models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &av))
	assert.Equal(t, 2, av.Capacity)
	assert.Equal(t, 3, av.RosterSize)
	assert.Equal(t, -1, av.Available, "overbooked destination goes negative rather than hiding passengers")
}

func TestCancellationEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/travelers/a/booking", gin.H{
		"destination_id": "d1",
		"seat_number":    "1",
		"companion_seats": []gin.H{
			{"child_id": "c1", "seat_number": "2"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/travelers/a/cancellation", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var summary models.ReleaseSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary.Released, 2)

	w = doJSON(t, r, http.MethodGet, "/api/destinations/d1/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)

	// Unknown traveler still maps to 404.
	w = doJSON(t, r, http.MethodPost, "/api/travelers/ghost/cancellation", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
