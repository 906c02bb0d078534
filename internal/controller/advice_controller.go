package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AdityaDcode/FarmVista/internal/middleware"
	"github.com/AdityaDcode/FarmVista/internal/service"
)

// AdviceController handles advice generation and history requests
type AdviceController struct {
	adviceService service.AdviceService
	logger        *slog.Logger
}

// NewAdviceController creates a new advice controller
func NewAdviceController(adviceService service.AdviceService, logger *slog.Logger) *AdviceController {
	return &AdviceController{
		adviceService: adviceService,
		logger:        logger,
	}
}

// GenerateAdvice handles POST /api/advice/generate/:farmId
func (c *AdviceController) GenerateAdvice(ctx *gin.Context) {
	startTime := time.Now()
	farmID := ctx.Param("farmId")
	userID := middleware.UserID(ctx)

	advice, err := c.adviceService.Generate(ctx.Request.Context(), farmID, userID)
	if err != nil {
		status, message := statusForError(err)
		c.logger.Error("advice generation failed",
			"farm_id", farmID,
			"user_id", userID,
			"status", status,
			"error", err.Error(),
			"latency_ms", time.Since(startTime).Milliseconds(),
		)
		ctx.JSON(status, gin.H{
			"error":   "Advice generation failed",
			"message": message,
		})
		return
	}

	c.logger.Info("advice generation completed",
		"farm_id", farmID,
		"user_id", userID,
		"advice_id", advice.ID,
		"latency_ms", time.Since(startTime).Milliseconds(),
	)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Advice generated successfully",
		"advice": gin.H{
			"id":          advice.ID,
			"farmName":    advice.FarmData.FarmName,
			"crop":        advice.FarmData.Crop,
			"weatherData": advice.WeatherData,
			"aiAdvice":    advice.AIAdvice,
			"createdAt":   advice.CreatedAt,
		},
	})
}

// GetAdviceHistory handles GET /api/advice/farm/:farmId
func (c *AdviceController) GetAdviceHistory(ctx *gin.Context) {
	farmID := ctx.Param("farmId")
	userID := middleware.UserID(ctx)

	records, err := c.adviceService.ListByFarm(ctx.Request.Context(), farmID, userID)
	if err != nil {
		status, message := statusForError(err)
		c.logger.Error("advice history lookup failed",
			"farm_id", farmID,
			"user_id", userID,
			"error", err.Error(),
		)
		ctx.JSON(status, gin.H{
			"error":   "Advice history lookup failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// GetAllUserAdvice handles GET /api/advice
func (c *AdviceController) GetAllUserAdvice(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	records, err := c.adviceService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		status, message := statusForError(err)
		c.logger.Error("user advice lookup failed",
			"user_id", userID,
			"error", err.Error(),
		)
		ctx.JSON(status, gin.H{
			"error":   "Advice lookup failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusOK, records)
}
