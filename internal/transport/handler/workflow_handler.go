package handler

import (
	"context"
	"net/http"

	"journalhub/internal/transport/dto/response"
	"journalhub/internal/usecase/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WorkflowService interface {
	History(ctx context.Context, articleId string) ([]*response.WorkflowEntryResponse, error)
	Stats(ctx context.Context) (*response.StatsResponse, error)
}

type WorkflowHandler struct {
	svc WorkflowService
	log *zap.Logger
}

func NewWorkflowHandler(svc WorkflowService, log *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		svc: svc,
		log: log,
	}
}

func (h *WorkflowHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	articleId := chi.URLParam(r, "articleId")
	if articleId == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.History(r.Context(), articleId)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"history": resp,
	})
}

func (h *WorkflowHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Stats(r.Context())
	if err != nil {
		h.log.Error("failed to get statistics", zap.Error(err))
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
