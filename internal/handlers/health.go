package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "EcoEvent server is running!")
	}
}

func Health(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"service": "ecoevent-api",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "ecoevent-api",
		})
	}
}
