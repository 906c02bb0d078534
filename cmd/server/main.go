package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AdityaDcode/FarmVista/internal/config"
	"github.com/AdityaDcode/FarmVista/internal/controller"
	"github.com/AdityaDcode/FarmVista/internal/llm"
	"github.com/AdityaDcode/FarmVista/internal/middleware"
	"github.com/AdityaDcode/FarmVista/internal/model"
	"github.com/AdityaDcode/FarmVista/internal/repository"
	"github.com/AdityaDcode/FarmVista/internal/service"
	"github.com/AdityaDcode/FarmVista/internal/weather"
)

// Burst allowance for the weather provider rate limit
const weatherBurst = 5

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Farm{}, &model.Advice{}); err != nil {
		logger.Error("failed to migrate database", "error", err.Error())
		os.Exit(1)
	}

	if cfg.SeedDatabase {
		if err := repository.NewSeedRepository(db).SeedDatabase(); err != nil {
			logger.Error("failed to seed database", "error", err.Error())
			os.Exit(1)
		}
	}

	farmRepo := repository.NewFarmRepository(db)
	adviceRepo := repository.NewAdviceRepository(db)

	var fetcher weather.Fetcher = weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, logger)
	if cfg.WeatherRateLimitRPS > 0 {
		fetcher = weather.NewRateLimited(fetcher, cfg.WeatherRateLimitRPS, weatherBurst)
	}
	generator := llm.NewOpenRouterClient(cfg.OpenRouterAPIURL, cfg.OpenRouterAPIKey, logger)

	farmService := service.NewFarmService(farmRepo, logger)
	adviceService := service.NewAdviceService(farmRepo, adviceRepo, fetcher, generator, logger)

	farmCtrl := controller.NewFarmController(farmService, logger)
	adviceCtrl := controller.NewAdviceController(adviceService, logger)
	healthCtrl := controller.NewHealthController(db)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogging(logger))

	api := router.Group("/api")
	api.GET("/health", healthCtrl.Health)
	api.GET("/metrics", middleware.MetricsHandler)

	auth := middleware.Auth(cfg.JWTSecret, logger)

	farms := api.Group("/farms", auth)
	{
		farms.POST("", farmCtrl.AddFarm)
		farms.GET("", farmCtrl.GetUserFarms)
		farms.GET("/:id", farmCtrl.GetFarmByID)
		farms.PUT("/:id", farmCtrl.UpdateFarm)
		farms.DELETE("/:id", farmCtrl.DeleteFarm)
	}

	advice := api.Group("/advice", auth)
	{
		advice.POST("/generate/:farmId", adviceCtrl.GenerateAdvice)
		advice.GET("/farm/:farmId", adviceCtrl.GetAdviceHistory)
		advice.GET("", adviceCtrl.GetAllUserAdvice)
	}

	logger.Info("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}
