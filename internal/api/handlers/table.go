package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/table"
)

// TableRunner is the part of the frame driver the HTTP layer uses.
type TableRunner interface {
	SessionID() string
	Latest() game.Snapshot
	Submit(in table.Input) error
}

// GetTableState returns the most recent frame snapshot.
func GetTableState(runner TableRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"session_id": runner.SessionID(),
			"table":      runner.Latest(),
		})
	}
}

// RackTable queues a re-rack for the next frame.
func RackTable(runner TableRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := runner.Submit(table.Input{Kind: table.InputRack})
		switch {
		case err == nil:
			c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
		case errors.Is(err, table.ErrInputQueueFull):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, table.ErrStopped):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			log.Printf("[API] rack failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rack"})
		}
	}
}
