package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dailywell/backend/internal/config"
	"github.com/dailywell/backend/internal/handlers"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/middleware"
	"github.com/dailywell/backend/internal/service"
)

// newRouter wires middleware and routes onto a fresh gin engine
func newRouter(cfg *config.Config, log logger.Logger, db handlers.Pinger, svc services, opts service.Options) *gin.Engine {
	moodHandler := handlers.NewMoodHandler(svc.moods)
	sleepHandler := handlers.NewSleepHandler(svc.sleep, opts)
	foodHandler := handlers.NewFoodHandler(svc.food, opts)
	entriesHandler := handlers.NewEntriesHandler(svc.entries, opts)
	healthHandler := handlers.NewHealthHandler(db)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/moods", moodHandler.AddMood)
		v1.GET("/moods", moodHandler.GetMoods)
		v1.GET("/moods/stats", moodHandler.GetStats)
		v1.GET("/moods/analytics", moodHandler.GetAnalytics)

		v1.POST("/sleep", sleepHandler.CreateSleepRecord)
		v1.GET("/sleep", sleepHandler.ListSleepRecords)
		v1.GET("/sleep/stats", sleepHandler.GetStats)

		v1.POST("/screen-time", sleepHandler.CreateScreenTime)
		v1.GET("/screen-time", sleepHandler.ListScreenTime)

		v1.GET("/food", foodHandler.ListFoodIntake)
		v1.GET("/food/:date", foodHandler.GetFoodIntake)
		v1.PUT("/food/:date", foodHandler.UpdateFoodIntake)

		v1.GET("/entries/:kind", entriesHandler.GetEntries)
	}

	return router
}
