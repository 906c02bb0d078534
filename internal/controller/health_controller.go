package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports process liveness and database reachability
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new health controller
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health handles GET /api/health
func (c *HealthController) Health(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "DOWN"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "UP"})
}
