package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/ecoevent/internal/helpers"
	"github.com/joshua-takyi/ecoevent/internal/middleware"
	"github.com/joshua-takyi/ecoevent/internal/models"
	"github.com/joshua-takyi/ecoevent/internal/services"
)

func ListUpcomingEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListUpcoming(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func SearchEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.Search(c.Request.Context(), c.Query("search"), c.Query("type"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// CreateEvent expects BearerAuth ahead of it.
func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Unauthorized access"))
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("All fields are required!"))
			return
		}

		ack, err := es.CreateEvent(c.Request.Context(), &event, principal.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ack)
	}
}

// GetEvent answers null, not 404, for an unknown id.
func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := es.GetEvent(c.Request.Context(), helpers.TrimID(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		if event == nil {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func ListMyEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListByOwner(c.Request.Context(), c.Query("email"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.EventPatch
		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&patch); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("Invalid data!"))
			return
		}

		ack, err := es.UpdateEvent(c.Request.Context(), helpers.TrimID(c.Param("id")), &patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ack)
	}
}

// DeleteEvent removes an event. With strict set the route must sit behind
// BearerAuth and only the creator may delete.
func DeleteEvent(es *services.EventService, strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.TrimID(c.Param("id"))

		var (
			ack *models.DeleteAck
			err error
		)
		if strict {
			principal, ok := middleware.PrincipalFrom(c)
			if !ok {
				c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Unauthorized access"))
				return
			}
			ack, err = es.DeleteOwnedEvent(c.Request.Context(), id, principal.Email)
		} else {
			ack, err = es.DeleteEvent(c.Request.Context(), id)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ack)
	}
}
