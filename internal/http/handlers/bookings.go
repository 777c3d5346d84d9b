package handlers

import (
	"fmt"
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	DestinationID  string                   `json:"destination_id"`
	BusID          string                   `json:"bus_id"`
	SeatNumber     string                   `json:"seat_number"`
	CompanionSeats []services.CompanionSeat `json:"companion_seats"`
}

// POST /api/travelers/:id/booking — the batched seat assignment for a
// traveler and their companions.
func (a *API) CreateBooking(c *gin.Context) {
	travelerID := c.Param("id")

	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	unlock := a.lockDestination(req.DestinationID)
	defer unlock()

	result, err := a.Booking.Book(c.Request.Context(), travelerID, req.DestinationID, req.BusID, req.SeatNumber, req.CompanionSeats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "book",
		fmt.Sprintf("client_id=%s destination=%s seats=%d", travelerID, req.DestinationID, 1+len(result.CompanionSeats)))
	c.JSON(http.StatusCreated, result)
}
