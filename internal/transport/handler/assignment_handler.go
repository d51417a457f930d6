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

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *request.CreateAssignmentRequest) (*response.AssignmentResponse, error)
	ListAssignments(ctx context.Context, callerId string) ([]*response.AssignmentResponse, error)
	SendReviewRequest(ctx context.Context, req *request.SendReviewRequestRequest) (*response.ReviewRequestResponse, error)
	RespondToReviewRequest(ctx context.Context, req *request.RespondReviewRequestRequest) (*response.RespondReviewRequestResponse, error)
}

type AssignmentHandler struct {
	svc AssignmentService
	log *zap.Logger
}

func NewAssignmentHandler(svc AssignmentService, log *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		svc: svc,
		log: log,
	}
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.ArticleId == "" || req.ReviewerId == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.CallerId = middleware.CallerId(r.Context())
	req.CallerRole = middleware.CallerRole(r.Context())

	resp, err := h.svc.CreateAssignment(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"assignment": resp,
	})
}

func (h *AssignmentHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.ListAssignments(r.Context(), middleware.CallerId(r.Context()))
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assignments": resp,
	})
}

func (h *AssignmentHandler) SendReviewRequest(w http.ResponseWriter, r *http.Request) {
	var req request.SendReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.ReviewerId == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.CallerId = middleware.CallerId(r.Context())
	req.CallerRole = middleware.CallerRole(r.Context())

	resp, err := h.svc.SendReviewRequest(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"review_request": resp,
	})
}

func (h *AssignmentHandler) RespondToReviewRequest(w http.ResponseWriter, r *http.Request) {
	var req request.RespondReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.RequestId = chi.URLParam(r, "requestId")
	if req.RequestId == "" || req.Decision == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.CallerId = middleware.CallerId(r.Context())

	resp, err := h.svc.RespondToReviewRequest(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"review_request": resp,
	})
}
