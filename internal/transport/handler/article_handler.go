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

type LifecycleService interface {
	Create(ctx context.Context, req *request.CreateArticleRequest) (*response.ArticleResponse, error)
	Get(ctx context.Context, articleId string) (*response.ArticleResponse, error)
	Apply(ctx context.Context, req *request.TransitionRequest) (*response.TransitionResponse, error)
}

type ArticleHandler struct {
	svc LifecycleService
	log *zap.Logger
}

func NewArticleHandler(svc LifecycleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		svc: svc,
		log: log,
	}
}

func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req request.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	if req.Title == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.CallerId = middleware.CallerId(r.Context())
	req.CallerRole = middleware.CallerRole(r.Context())

	resp, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"article": resp,
	})
}

func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	articleId := chi.URLParam(r, "articleId")
	if articleId == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	resp, err := h.svc.Get(r.Context(), articleId)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"article": resp,
	})
}

func (h *ArticleHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req request.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.ArticleId = chi.URLParam(r, "articleId")
	if req.ArticleId == "" || req.Action == "" {
		statusCode, errResp := HandleError(service.ErrInvalidInput)
		WriteError(w, statusCode, errResp)
		return
	}

	req.CallerId = middleware.CallerId(r.Context())
	req.CallerRole = middleware.CallerRole(r.Context())

	resp, err := h.svc.Apply(r.Context(), &req)
	if err != nil {
		statusCode, errResp := HandleError(err)
		WriteError(w, statusCode, errResp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transition": resp,
	})
}
