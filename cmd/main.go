package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"journalhub/internal/config"
	"journalhub/internal/infrastructure/db"
	"journalhub/internal/infrastructure/repository"
	"journalhub/internal/transport"
	"journalhub/internal/transport/handler"
	"journalhub/internal/usecase/service"
	"journalhub/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewDatabase(ctx, cfg.Database.URL, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer pool.Close()

	articleRepo := repository.NewArticleRepository(pool, log)
	assignmentRepo := repository.NewAssignmentRepository(pool, log)
	requestRepo := repository.NewReviewRequestRepository(pool, log)
	notificationRepo := repository.NewNotificationRepository(pool, log)
	workflowRepo := repository.NewWorkflowRepository(pool, log)

	lifecycleSvc := service.NewLifecycleService(articleRepo, notificationRepo, log)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, requestRepo, notificationRepo, log)
	notificationSvc := service.NewNotificationService(notificationRepo, log)
	workflowSvc := service.NewWorkflowService(workflowRepo, log)

	router := transport.NewRouter(
		handler.NewArticleHandler(lifecycleSvc, log),
		handler.NewAssignmentHandler(assignmentSvc, log),
		handler.NewNotificationHandler(notificationSvc, log),
		handler.NewWorkflowHandler(workflowSvc, log),
		handler.NewHealthHandler(log),
		cfg.Auth.Secret,
		log,
	)

	server := transport.NewServer(cfg.App.Port, router, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
