package repository

import (
	"context"

	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertAssignmentQuery = `
INSERT INTO article_assignments(id, article_id, reviewer_id)
VALUES ($1, $2, $3)
RETURNING id, article_id, reviewer_id, status, assigned_at;`

	selectAssignmentsByReviewerQuery = `
SELECT id, article_id, reviewer_id, status, assigned_at FROM article_assignments
WHERE reviewer_id = $1
ORDER BY assigned_at DESC;`

	articleExistsQuery = `
SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1);`
)

type AssignmentRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewAssignmentRepository(db *pgxpool.Pool, log *zap.Logger) *AssignmentRepository {
	return &AssignmentRepository{
		db:  db,
		log: log,
	}
}

// Create inserts an active assignment. The partial unique index on
// (article_id, reviewer_id) closes the check-then-insert race; a duplicate
// pair surfaces as ErrAlreadyExists.
func (r *AssignmentRepository) Create(ctx context.Context, d *dto.CreateAssignmentDTO) (*result.AssignmentResult, error) {
	r.log.Info("create assignment started",
		zap.String("article_id", d.ArticleId.String()),
		zap.String("reviewer_id", d.ReviewerId.String()),
		zap.String("assigned_by", d.AssignedBy.String()),
	)

	var exists bool
	if err := r.db.QueryRow(ctx, articleExistsQuery, d.ArticleId).Scan(&exists); err != nil {
		return nil, handleDBError(err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	res := &result.AssignmentResult{}
	err := r.db.QueryRow(ctx, insertAssignmentQuery, d.AssignmentId, d.ArticleId, d.ReviewerId).Scan(
		&res.Id,
		&res.ArticleId,
		&res.ReviewerId,
		&res.Status,
		&res.AssignedAt,
	)
	if err != nil {
		r.log.Error("failed to insert assignment",
			zap.String("article_id", d.ArticleId.String()),
			zap.String("reviewer_id", d.ReviewerId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	r.log.Info("assignment created", zap.String("assignment_id", res.Id.String()))
	return res, nil
}

func (r *AssignmentRepository) ListByReviewer(ctx context.Context, reviewerId uuid.UUID) ([]*result.AssignmentResult, error) {
	rows, err := r.db.Query(ctx, selectAssignmentsByReviewerQuery, reviewerId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var assignments []*result.AssignmentResult
	for rows.Next() {
		res := &result.AssignmentResult{}
		if err := rows.Scan(
			&res.Id,
			&res.ArticleId,
			&res.ReviewerId,
			&res.Status,
			&res.AssignedAt,
		); err != nil {
			return nil, handleDBError(err)
		}
		assignments = append(assignments, res)
	}

	return assignments, nil
}
