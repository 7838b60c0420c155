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
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/adapters/primary/http/handlers"
	"bias-audit-service/internal/adapters/primary/http/middleware"
	"bias-audit-service/internal/adapters/secondary/memstore"
	"bias-audit-service/internal/adapters/secondary/natsbus"
	"bias-audit-service/internal/config"
	ports "bias-audit-service/internal/core/ports/output"
	"bias-audit-service/internal/core/services"
	"bias-audit-service/internal/observability/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Entity store: in-memory, process lifetime. Constructed here and
	// injected; nothing else holds global state.
	store := memstore.New()
	if cfg.Demo.SeedData {
		memstore.Seed(store, cfg.Demo.OwnerID)
		log.WithField("owner_id", cfg.Demo.OwnerID).Info("demo data seeded")
	}

	modelRepo := memstore.NewModelRepository(store)
	auditRepo := memstore.NewAuditRepository(store)
	fairnessRepo := memstore.NewFairnessMetricsRepository(store)
	reportRepo := memstore.NewReportRepository(store)
	fileRepo := memstore.NewFileRepository(store)

	// Event publisher (optional - based on config)
	var events ports.EventPublisher
	if cfg.NATS.Enabled {
		publisher, err := natsbus.New(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			log.Warnf("NATS publisher init failed (continuing without events): %v", err)
		} else {
			defer publisher.Close()
			events = publisher
			log.Info("NATS publisher initialized")
		}
	} else {
		log.Info("NATS events disabled")
	}

	m := metrics.New("bias-audit-service")
	clock := services.SystemClock()

	tracker := services.NewAuditTracker(auditRepo, events, clock, m)
	modelSvc := services.NewModelService(modelRepo, clock)
	auditSvc := services.NewAuditService(auditRepo, fairnessRepo, tracker, events, clock, cfg.Audit.DemoFairnessScore)
	fairnessSvc := services.NewFairnessMetricsService(fairnessRepo, auditRepo)
	reportSvc := services.NewReportService(reportRepo, clock)
	fileSvc := services.NewFileService(fileRepo, events, clock, m)
	dashboardSvc := services.NewDashboardService(modelRepo, auditRepo, cfg.Dashboard.RiskThreshold)

	h := handlers.New(modelSvc, auditSvc, fairnessSvc, reportSvc, fileSvc, dashboardSvc, cfg.Demo.OwnerID)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), m.Middleware("bias-audit-service"), gin.Recovery())

	api := router.Group("/api")
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

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
