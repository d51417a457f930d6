package repository

import (
	"context"

	"journalhub/internal/domain"
	"journalhub/internal/infrastructure/models/result"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	selectWorkflowLogQuery = `
SELECT id, article_id, from_user_id, to_user_id, from_role, to_role, action, comments, created_at FROM workflow_log
WHERE article_id = $1
ORDER BY created_at, id;`

	selectStatusCountsQuery = `
SELECT status, COUNT(*) FROM articles
GROUP BY status
ORDER BY status;`
)

type WorkflowRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewWorkflowRepository(db *pgxpool.Pool, log *zap.Logger) *WorkflowRepository {
	return &WorkflowRepository{
		db:  db,
		log: log,
	}
}

func (r *WorkflowRepository) History(ctx context.Context, articleId uuid.UUID) ([]*domain.WorkflowLogEntry, error) {
	rows, err := r.db.Query(ctx, selectWorkflowLogQuery, articleId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var entries []*domain.WorkflowLogEntry
	for rows.Next() {
		entry := &domain.WorkflowLogEntry{}
		if err := rows.Scan(
			&entry.Id,
			&entry.ArticleId,
			&entry.FromUserId,
			&entry.ToUserId,
			&entry.FromRole,
			&entry.ToRole,
			&entry.Action,
			&entry.Comments,
			&entry.CreatedAt,
		); err != nil {
			return nil, handleDBError(err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *WorkflowRepository) StatusCounts(ctx context.Context) ([]*result.StatusCountResult, error) {
	rows, err := r.db.Query(ctx, selectStatusCountsQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var counts []*result.StatusCountResult
	for rows.Next() {
		res := &result.StatusCountResult{}
		if err := rows.Scan(&res.Status, &res.Count); err != nil {
			return nil, handleDBError(err)
		}
		counts = append(counts, res)
	}

	return counts, nil
}
