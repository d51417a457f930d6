package service

import (
	"context"
	"errors"
	"fmt"

	"journalhub/internal/domain"
	"journalhub/internal/infrastructure/models/result"
	"journalhub/internal/transport/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	historyError = errors.New("get workflow history error")
	statsError   = errors.New("get stats error")
)

type WorkflowRepository interface {
	History(ctx context.Context, articleId uuid.UUID) ([]*domain.WorkflowLogEntry, error)
	StatusCounts(ctx context.Context) ([]*result.StatusCountResult, error)
}

type WorkflowService struct {
	repo WorkflowRepository
	log  *zap.Logger
}

func NewWorkflowService(repo WorkflowRepository, log *zap.Logger) *WorkflowService {
	return &WorkflowService{
		repo: repo,
		log:  log,
	}
}

func (s *WorkflowService) History(ctx context.Context, articleId string) ([]*response.WorkflowEntryResponse, error) {
	id, err := uuid.Parse(articleId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	entries, err := s.repo.History(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", historyError, err)
	}

	history := make([]*response.WorkflowEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := &response.WorkflowEntryResponse{
			ArticleId:  entry.ArticleId.String(),
			FromUserId: entry.FromUserId.String(),
			FromRole:   string(entry.FromRole),
			ToRole:     string(entry.ToRole),
			Action:     string(entry.Action),
			Comments:   entry.Comments,
			CreatedAt:  entry.CreatedAt.Format(timeFormat),
		}
		if entry.ToUserId != nil {
			resp.ToUserId = entry.ToUserId.String()
		}
		history = append(history, resp)
	}
	return history, nil
}

func (s *WorkflowService) Stats(ctx context.Context) (*response.StatsResponse, error) {
	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", statsError, err)
	}

	resp := &response.StatsResponse{
		Articles: make(map[string]int64, len(counts)),
	}
	for _, c := range counts {
		resp.Articles[string(c.Status)] = c.Count
	}
	return resp, nil
}
