package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/ecoevent/internal/helpers"
	"github.com/joshua-takyi/ecoevent/internal/models"
	"github.com/joshua-takyi/ecoevent/internal/services"
)

// JoinedEvents lists a user's joins, or reports membership when eventId is
// present in the query.
func JoinedEvents(js *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")

		if eventID, ok := c.GetQuery("eventId"); ok {
			joined, err := js.HasJoined(c.Request.Context(), helpers.TrimID(eventID), email)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.JoinStatus{AlreadyJoined: joined})
			return
		}

		records, err := js.ListJoined(c.Request.Context(), email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func JoinEvent(js *services.JoinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record models.JoinRecord
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("Invalid data!"))
			return
		}

		ack, err := js.Join(c.Request.Context(), &record)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.JoinResponse{Message: "Joined successfully!", Result: ack})
	}
}
