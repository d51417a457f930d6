package transport

import (
	"time"

	"journalhub/internal/transport/handler"
	transportMiddleware "journalhub/internal/transport/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(
	articleHandler *handler.ArticleHandler,
	assignmentHandler *handler.AssignmentHandler,
	notificationHandler *handler.NotificationHandler,
	workflowHandler *handler.WorkflowHandler,
	healthHandler *handler.HealthHandler,
	authSecret string,
	log *zap.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	// Recovery first so panics in other middleware are caught too
	router.Use(transportMiddleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(transportMiddleware.Logging(log))
	router.Use(transportMiddleware.Timeout(5*time.Second, log))
	router.Use(transportMiddleware.Metrics)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", healthHandler.HealthCheck)

	// everything below requires resolved caller identity
	router.Group(func(r chi.Router) {
		r.Use(transportMiddleware.Auth(authSecret, log))

		r.Route("/articles", func(r chi.Router) {
			r.Post("/", articleHandler.CreateArticle)
			r.Get("/{articleId}", articleHandler.GetArticle)
			r.Post("/{articleId}/transition", articleHandler.Transition)
			r.Get("/{articleId}/history", workflowHandler.GetHistory)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", assignmentHandler.CreateAssignment)
			r.Get("/", assignmentHandler.ListAssignments)
		})

		r.Route("/reviewRequests", func(r chi.Router) {
			r.Post("/", assignmentHandler.SendReviewRequest)
			r.Post("/{requestId}/respond", assignmentHandler.RespondToReviewRequest)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/", notificationHandler.CreateNotification)
			r.Get("/", notificationHandler.ListNotifications)
			r.Post("/{notificationId}/read", notificationHandler.MarkRead)
		})

		r.Get("/stats", workflowHandler.GetStats)
	})

	return router
}
