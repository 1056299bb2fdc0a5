package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grocerypro-backend/config"
	"grocerypro-backend/utils"
)

// Health godoc
//
//	@Summary	Database liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	500	{object}	map[string]interface{}
//	@Router		/health [get]
func Health(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"data": gin.H{
				"status":    "unhealthy",
				"message":   err.Error(),
				"timestamp": time.Now().UTC(),
			},
		})
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Database connection is healthy",
		"timestamp": time.Now().UTC(),
	})
}
