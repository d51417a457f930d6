package repository

import (
	"context"

	"journalhub/internal/domain"
	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertReviewRequestQuery = `
INSERT INTO review_requests(id, editor_id, reviewer_id, article_id)
VALUES ($1, $2, $3, $4)
RETURNING id, editor_id, reviewer_id, article_id, status, created_at, updated_at;`

	selectRequestForUpdateQuery = `
SELECT id, editor_id, reviewer_id, article_id, status, created_at, updated_at FROM review_requests
WHERE id = $1 AND reviewer_id = $2
FOR UPDATE;`

	updateRequestStatusQuery = `
UPDATE review_requests
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING updated_at;`
)

type ReviewRequestRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewReviewRequestRepository(db *pgxpool.Pool, log *zap.Logger) *ReviewRequestRepository {
	return &ReviewRequestRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a pending request. The partial unique index on
// (editor_id, reviewer_id) allows one pending request per pair at a time;
// a duplicate surfaces as ErrAlreadyExists.
func (r *ReviewRequestRepository) Create(ctx context.Context, d *dto.SendReviewRequestDTO) (*result.ReviewRequestResult, error) {
	r.log.Info("send review request started",
		zap.String("editor_id", d.EditorId.String()),
		zap.String("reviewer_id", d.ReviewerId.String()),
	)

	res := &result.ReviewRequestResult{}
	err := r.db.QueryRow(ctx, insertReviewRequestQuery, d.RequestId, d.EditorId, d.ReviewerId, d.ArticleId).Scan(
		&res.Id,
		&res.EditorId,
		&res.ReviewerId,
		&res.ArticleId,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert review request",
			zap.String("editor_id", d.EditorId.String()),
			zap.String("reviewer_id", d.ReviewerId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	r.log.Info("review request created", zap.String("request_id", res.Id.String()))
	return res, nil
}

// Respond answers a pending request. Accepting a request that names an
// article inserts exactly that one assignment; an already-active pair is
// skipped rather than rejected, acceptance being an idempotent convenience.
func (r *ReviewRequestRepository) Respond(ctx context.Context, d *dto.RespondReviewRequestDTO) (*result.RespondResult, error) {
	r.log.Info("respond to review request started",
		zap.String("request_id", d.RequestId.String()),
		zap.String("reviewer_id", d.ReviewerId.String()),
		zap.String("decision", string(d.Decision)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	res := &result.ReviewRequestResult{}
	err = tx.QueryRow(ctx, selectRequestForUpdateQuery, d.RequestId, d.ReviewerId).Scan(
		&res.Id,
		&res.EditorId,
		&res.ReviewerId,
		&res.ArticleId,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		r.log.Warn("review request not found",
			zap.String("request_id", d.RequestId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	if res.Status != domain.RequestPending {
		return nil, ErrAlreadyProcessed
	}

	err = tx.QueryRow(ctx, updateRequestStatusQuery, d.RequestId, d.Decision).Scan(&res.UpdatedAt)
	if err != nil {
		r.log.Error("failed to update review request status",
			zap.String("request_id", d.RequestId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}
	res.Status = d.Decision

	assignmentsCreated := 0
	if d.Decision == domain.RequestAccepted && res.ArticleId != nil {
		cmdTag, err := tx.Exec(ctx, insertAssignmentInTxQuery, d.AssignmentId, *res.ArticleId, d.ReviewerId)
		if err != nil {
			r.log.Error("failed to insert assignment on acceptance",
				zap.String("request_id", d.RequestId.String()),
				zap.Error(err),
			)
			return nil, handleDBError(err)
		}
		assignmentsCreated = int(cmdTag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit review request response",
			zap.String("request_id", d.RequestId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	r.log.Info("review request answered",
		zap.String("request_id", res.Id.String()),
		zap.String("status", string(res.Status)),
		zap.Int("assignments_created", assignmentsCreated),
	)
	return &result.RespondResult{
		Request:            res,
		AssignmentsCreated: assignmentsCreated,
	}, nil
}
