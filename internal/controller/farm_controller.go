package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaDcode/FarmVista/internal/middleware"
	"github.com/AdityaDcode/FarmVista/internal/service"
)

// FarmController handles farm CRUD requests
type FarmController struct {
	farmService service.FarmService
	logger      *slog.Logger
}

// NewFarmController creates a new farm controller
func NewFarmController(farmService service.FarmService, logger *slog.Logger) *FarmController {
	return &FarmController{
		farmService: farmService,
		logger:      logger,
	}
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	State     string   `json:"state"`
}

type farmRequest struct {
	FarmName  string           `json:"farmName"`
	Location  *locationRequest `json:"location"`
	SoilType  string           `json:"soilType"`
	Crop      string           `json:"crop"`
	CropStage string           `json:"cropStage"`
	AreaSqM   float64          `json:"areaSqMeters"`
}

func (r farmRequest) toInput() service.FarmInput {
	input := service.FarmInput{
		FarmName:  r.FarmName,
		SoilType:  r.SoilType,
		Crop:      r.Crop,
		CropStage: r.CropStage,
		AreaSqM:   r.AreaSqM,
	}
	if r.Location != nil {
		input.Latitude = r.Location.Latitude
		input.Longitude = r.Location.Longitude
		input.City = r.Location.City
		input.State = r.Location.State
	}
	return input
}

// AddFarm handles POST /api/farms
func (c *FarmController) AddFarm(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	var req farmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": "Request body must be valid JSON",
		})
		return
	}

	farm, err := c.farmService.Create(ctx.Request.Context(), userID, req.toInput())
	if err != nil {
		status, message := statusForError(err)
		c.logger.Warn("farm creation rejected",
			"user_id", userID,
			"status", status,
			"error", err.Error(),
		)
		ctx.JSON(status, gin.H{
			"error":   "Farm creation failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Farm added successfully",
		"farm":    farm,
	})
}

// GetUserFarms handles GET /api/farms
func (c *FarmController) GetUserFarms(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	farms, err := c.farmService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		status, message := statusForError(err)
		c.logger.Error("farm listing failed", "user_id", userID, "error", err.Error())
		ctx.JSON(status, gin.H{
			"error":   "Farm listing failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusOK, farms)
}

// GetFarmByID handles GET /api/farms/:id
func (c *FarmController) GetFarmByID(ctx *gin.Context) {
	farmID := ctx.Param("id")
	userID := middleware.UserID(ctx)

	farm, err := c.farmService.Get(ctx.Request.Context(), farmID, userID)
	if err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, gin.H{
			"error":   "Farm lookup failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusOK, farm)
}

// UpdateFarm handles PUT /api/farms/:id
func (c *FarmController) UpdateFarm(ctx *gin.Context) {
	farmID := ctx.Param("id")
	userID := middleware.UserID(ctx)

	var req farmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": "Request body must be valid JSON",
		})
		return
	}

	farm, err := c.farmService.Update(ctx.Request.Context(), farmID, userID, req.toInput())
	if err != nil {
		status, message := statusForError(err)
		c.logger.Warn("farm update rejected",
			"farm_id", farmID,
			"user_id", userID,
			"status", status,
			"error", err.Error(),
		)
		ctx.JSON(status, gin.H{
			"error":   "Farm update failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Farm updated successfully",
		"farm":    farm,
	})
}

// DeleteFarm handles DELETE /api/farms/:id. Advice history for the farm is
// left in place.
func (c *FarmController) DeleteFarm(ctx *gin.Context) {
	farmID := ctx.Param("id")
	userID := middleware.UserID(ctx)

	if err := c.farmService.Delete(ctx.Request.Context(), farmID, userID); err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, gin.H{
			"error":   "Farm deletion failed",
			"message": message,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Farm deleted successfully",
	})
}
