package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the connectivity probes the frontend hits before
// rendering anything.
type StatusHandler struct {
	Degraded func() bool
}

func NewStatusHandler(degraded func() bool) *StatusHandler {
	return &StatusHandler{Degraded: degraded}
}

func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Wedding Cards API", "status": "running"})
}

func (h *StatusHandler) Test(c *gin.Context) {
	storage := "primary"
	if h.Degraded != nil && h.Degraded() {
		storage = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Backend is working",
		"storage":   storage,
		"timestamp": time.Now().UTC(),
	})
}
