package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/destinations/:id/roster
func (a *API) GetRoster(c *gin.Context) {
	roster, err := a.Roster.Roster(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	seated := 0
	for _, p := range roster {
		if p.Seated() {
			seated++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"passengers": roster,
		"total":      len(roster),
		"seated":     seated,
		"awaiting":   len(roster) - seated,
	})
}

// GET /api/destinations/:id/availability
func (a *API) GetAvailability(c *gin.Context) {
	av, err := a.Roster.Availability(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, av)
}
