package handlers

import (
	"fmt"
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/travelers/:id/cancellation — releases every seat the traveler's
// family holds and returns the release summary handed to the ledger side.
func (a *API) CancelTraveler(c *gin.Context) {
	travelerID := c.Param("id")

	summary, err := a.Cancellation.Cancel(c.Request.Context(), travelerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "cancellation", "cancel",
		fmt.Sprintf("client_id=%s released=%d", travelerID, len(summary.Released)))
	c.JSON(http.StatusOK, summary)
}
