package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports service liveness for load balancer probes.
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
