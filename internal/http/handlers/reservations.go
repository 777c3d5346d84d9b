package handlers

import (
	"net/http"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

type reserveRequest struct {
	DestinationID string `json:"destination_id"`
	BusID         string `json:"bus_id"`
	SeatNumber    string `json:"seat_number"`
	TravelerID    string `json:"client_id"`
	CompanionID   string `json:"child_id"`
	DisplayName   string `json:"client_name"`
}

// POST /api/reservations
func (a *API) CreateReservation(c *gin.Context) {
	var req reserveRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	unlock := a.lockDestination(req.DestinationID)
	defer unlock()

	res, err := a.Inventory.Reserve(c.Request.Context(), req.DestinationID, req.BusID, req.SeatNumber, models.SeatHolder{
		TravelerID:  req.TravelerID,
		CompanionID: req.CompanionID,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "inventory", "reserve",
		"seat "+res.SeatNumber+" destination "+res.DestinationID)
	c.JSON(http.StatusCreated, res)
}

// DELETE /api/reservations/:id — idempotent release.
func (a *API) ReleaseReservation(c *gin.Context) {
	if err := a.Inventory.Release(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/destinations/:id/seats/:seat
func (a *API) FindBySeat(c *gin.Context) {
	res, ok, err := a.Inventory.FindBySeat(c.Request.Context(), c.Param("id"), c.Param("seat"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "seat_free", "no active reservation on this seat", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/destinations/:id/reservations
func (a *API) ListReservations(c *gin.Context) {
	rows, err := a.Inventory.ListByDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows, "count": len(rows)})
}
