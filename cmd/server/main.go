package main

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-approval-service/internal/adapters/primary/http/handlers"
	"loan-approval-service/internal/adapters/primary/http/middleware"
	"loan-approval-service/internal/adapters/secondary/artifact"
	"loan-approval-service/internal/adapters/secondary/snapshot"
	"loan-approval-service/internal/config"
	ports "loan-approval-service/internal/core/ports/output"
	"loan-approval-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Scoring artifact (optional - a failed load degrades the Prediction
	// surface only, the process keeps serving the other pages).
	var scorer ports.Scorer
	if model, err := artifact.Load(cfg.Artifact.Path); err != nil {
		log.Warnf("scoring artifact load failed (prediction disabled): %v", err)
	} else {
		scorer = model
		log.WithField("path", cfg.Artifact.Path).Info("scoring artifact loaded")
	}

	// Dataset snapshot (optional - a failed load disables the EDA surface).
	var snap ports.Snapshot
	if table, err := snapshot.Load(cfg.Dataset.Path); err != nil {
		log.Warnf("dataset snapshot load failed (analytics disabled): %v", err)
	} else {
		snap = table
		log.WithFields(log.Fields{"path": cfg.Dataset.Path, "rows": table.Len()}).Info("dataset snapshot loaded")
	}

	predictionSvc := services.NewPredictionService(scorer, cfg.Prediction.Threshold)
	analyticsSvc := services.NewAnalyticsService(snap)

	h := handlers.New(predictionSvc, analyticsSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())
	router.SetFuncMap(template.FuncMap{
		"mulf": func(a, b float64) float64 { return a * b },
	})
	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	h.RegisterPages(router)

	api := router.Group("/api/v1")
	h.RegisterAPI(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"scoring": predictionSvc.Available(),
			"dataset": analyticsSvc.Available(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
