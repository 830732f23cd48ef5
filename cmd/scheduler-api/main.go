package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/classtime-scheduler/api/swagger"
	"github.com/noah-isme/classtime-scheduler/internal/catalog"
	"github.com/noah-isme/classtime-scheduler/internal/handler"
	"github.com/noah-isme/classtime-scheduler/internal/middleware"
	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
	"github.com/noah-isme/classtime-scheduler/internal/service"
	"github.com/noah-isme/classtime-scheduler/pkg/cache"
	"github.com/noah-isme/classtime-scheduler/pkg/config"
	"github.com/noah-isme/classtime-scheduler/pkg/database"
	"github.com/noah-isme/classtime-scheduler/pkg/export"
	"github.com/noah-isme/classtime-scheduler/pkg/logger"
	"github.com/noah-isme/classtime-scheduler/pkg/middleware/cors"
	"github.com/noah-isme/classtime-scheduler/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, result caching disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
	}

	sectionCatalog := catalog.NewPostgresCatalog(db)
	savedRepo := catalog.NewSavedScheduleRepository(db)
	orchestrator := scheduler.NewOrchestrator(sectionCatalog, scheduler.NewBacktrackingSolver(), log)

	metricsSvc := service.NewMetricsService()
	pdfExporter := export.NewPDFExporter()
	resultCache := cache.NewResultCache(redisClient)
	scheduleSvc := service.NewScheduleGeneratorService(
		orchestrator, savedRepo, resultCache, cfg.Scheduler.ResultCacheTTL,
		pdfExporter, metricsSvc, nil, log,
	)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Metrics(metricsSvc))
	router.Use(middleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	router.GET("/health", metricsHandler.Health)
	router.GET("/ready", metricsHandler.Health)
	router.GET("/metrics", metricsHandler.Prometheus)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)

	api := router.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(cfg.JWT.Secret))
	{
		schedules := api.Group("/schedules")
		schedules.POST("/generate", scheduleHandler.Generate)
		schedules.POST("", scheduleHandler.Save)
		schedules.GET("", scheduleHandler.List)
		schedules.DELETE("/:id", scheduleHandler.Delete)
		schedules.GET("/:id/pdf", scheduleHandler.RenderPDF)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
