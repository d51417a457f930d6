package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"journalhub/internal/transport/dto/request"
	"journalhub/internal/transport/dto/response"
	"journalhub/internal/transport/middleware"
	"journalhub/internal/usecase/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationService interface {
	Create(ctx context.Context, req *request.CreateNotificationRequest) (*response.NotificationResponse, error)
	MarkRead(ctx context.Context, req *request.MarkReadRequest) error
	List(ctx context.Context, req *request.ListNotificationsRequest) ([]*response.NotificationResponse, error)
}

type NotificationHandler struct {
	svc NotificationService
	log *zap.Logger
}

func NewNotificationHandler(svc NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
		log: log,
	}
}

func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req request.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.UserId == "" || req.Type == "" || req.Title == "" || req.Message == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"notification": resp,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	req := request.MarkReadRequest{
		NotificationId: chi.URLParam(r, "notificationId"),
		CallerId:       middleware.CallerId(r.Context()),
	}
	if req.NotificationId == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if err := h.svc.MarkRead(r.Context(), &req); err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "read",
	})
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	req := request.ListNotificationsRequest{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		CallerId:   middleware.CallerId(r.Context()),
	}

	resp, err := h.svc.List(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": resp,
	})
}
