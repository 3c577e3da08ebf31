package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"article-cms/internal/database"
	"article-cms/internal/job"
	"article-cms/internal/metrics"
	"article-cms/internal/repository"
	"article-cms/internal/router"
	"article-cms/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and background jobs",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Article CMS",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, db, cfg, logger); err != nil {
			return err
		}
	}

	m := metrics.New(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}

	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	articleService := service.NewArticleService(articleRepo, categoryRepo, m, logger)
	commentService := service.NewCommentService(commentRepo, articleRepo, m, logger)

	scheduler := job.NewScheduler(logger)
	collector := metrics.NewBusinessMetricsCollector(articleRepo, commentRepo, m, logger)
	if err := scheduler.Add(job.StatsJob, cfg.Jobs.StatsSpec, job.Stats(collector, db, m)); err != nil {
		return err
	}
	if err := scheduler.Add(job.SweepJob, cfg.Jobs.SweepSpec, job.Sweep(commentService, logger)); err != nil {
		return err
	}
	// Collect once so the gauges are populated before the first scrape
	_ = scheduler.Run(ctx, job.StatsJob)
	scheduler.Start()

	r, err := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		BasePath:       cfg.Server.BasePath,
		Metrics:        m,
		ArticleService: articleService,
		CommentService: commentService,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Article CMS started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Failed to start server", zap.Error(err))
			_ = scheduler.Stop(context.Background())
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Warn("Background jobs did not stop in time", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
	return nil
}
