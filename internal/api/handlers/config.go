package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/game"
)

// GetConfig returns the table geometry and driver settings the frontend draws with
func GetConfig(cfg *config.Config) gin.HandlerFunc {
	bounds := game.StandardBounds()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"table_width":   game.TableWidth,
			"table_height":  game.TableHeight,
			"bounds":        bounds,
			"ball_radius":   game.BallRadius,
			"pocket_radius": game.PocketRadius,
			"max_power":     game.MaxPower,
			"tick_rate_hz":  cfg.TickRateHz,
		})
	}
}
