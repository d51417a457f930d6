package repository

import (
	"context"
	"slices"

	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertArticleQuery = `
INSERT INTO articles(id, title, content, author_id)
VALUES ($1, $2, $3, $4)
RETURNING id, title, content, author_id, status, created_at, updated_at;`

	selectArticleQuery = `
SELECT id, title, content, author_id, status, created_at, updated_at FROM articles
WHERE id = $1;`

	selectArticleForUpdateQuery = `
SELECT id, title, content, author_id, status, created_at, updated_at FROM articles
WHERE id = $1
FOR UPDATE;`

	updateArticleStatusQuery = `
UPDATE articles
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $3
RETURNING updated_at;`

	insertWorkflowLogQuery = `
INSERT INTO workflow_log(article_id, from_user_id, to_user_id, from_role, to_role, action, comments)
VALUES ($1, $2, $3, $4, $5, $6, $7);`

	completeAssignmentQuery = `
UPDATE article_assignments
SET status = 'completed'
WHERE article_id = $1 AND reviewer_id = $2 AND status = 'assigned';`

	insertAssignmentInTxQuery = `
INSERT INTO article_assignments(id, article_id, reviewer_id)
VALUES ($1, $2, $3)
ON CONFLICT (article_id, reviewer_id) WHERE status = 'assigned' DO NOTHING;`
)

type ArticleRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewArticleRepository(db *pgxpool.Pool, log *zap.Logger) *ArticleRepository {
	return &ArticleRepository{
		db:  db,
		log: log,
	}
}

func (r *ArticleRepository) Create(ctx context.Context, d *dto.CreateArticleDTO) (*result.ArticleResult, error) {
	r.log.Info("create article started",
		zap.String("article_id", d.ArticleId.String()),
		zap.String("author_id", d.AuthorId.String()),
	)

	res := &result.ArticleResult{}
	err := r.db.QueryRow(ctx, insertArticleQuery, d.ArticleId, d.Title, d.Content, d.AuthorId).Scan(
		&res.Id,
		&res.Title,
		&res.Content,
		&res.AuthorId,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert article",
			zap.String("article_id", d.ArticleId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	r.log.Info("article created", zap.String("article_id", res.Id.String()))
	return res, nil
}

func (r *ArticleRepository) Get(ctx context.Context, articleId uuid.UUID) (*result.ArticleResult, error) {
	res, err := readArticle(ctx, r.db, selectArticleQuery, articleId)
	if err != nil {
		return nil, handleDBError(err)
	}
	return res, nil
}

// ApplyTransition performs one lifecycle transition as a single transaction:
// the article row is locked, its status checked against the allowed source
// states, updated with a status guard, and exactly one workflow_log row is
// appended. Assignment side effects run inside the same transaction.
func (r *ArticleRepository) ApplyTransition(ctx context.Context, d *dto.TransitionDTO) (*result.TransitionResult, error) {
	r.log.Info("transition started",
		zap.String("article_id", d.ArticleId.String()),
		zap.String("action", string(d.Action)),
		zap.String("caller_id", d.CallerId.String()),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	article, err := readArticle(ctx, tx, selectArticleForUpdateQuery, d.ArticleId)
	if err != nil {
		r.log.Error("failed to load article before transition",
			zap.String("article_id", d.ArticleId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	if !slices.Contains(d.FromStatuses, article.Status) {
		r.log.Warn("transition precondition not met",
			zap.String("article_id", d.ArticleId.String()),
			zap.String("action", string(d.Action)),
			zap.String("status", string(article.Status)),
		)
		return nil, ErrStateConflict
	}

	// forward: the calling reviewer must hold an active assignment,
	// which the verdict closes
	if d.RequireAssignment {
		cmdTag, err := tx.Exec(ctx, completeAssignmentQuery, d.ArticleId, d.CallerId)
		if err != nil {
			return nil, handleDBError(err)
		}
		if cmdTag.RowsAffected() == 0 {
			r.log.Warn("caller has no active assignment on article",
				zap.String("article_id", d.ArticleId.String()),
				zap.String("caller_id", d.CallerId.String()),
			)
			return nil, ErrNotAssigned
		}
	}

	res := &result.TransitionResult{
		ArticleId:  article.Id,
		Title:      article.Title,
		AuthorId:   article.AuthorId,
		FromStatus: article.Status,
		NewStatus:  d.ToStatus,
	}

	// guarded update: a concurrent transition that already moved the row
	// makes this a no-op, surfaced as a stale-state conflict
	err = tx.QueryRow(ctx, updateArticleStatusQuery, d.ArticleId, d.ToStatus, article.Status).Scan(&res.UpdatedAt)
	if err != nil {
		if handleDBError(err) == ErrNotFound {
			return nil, ErrStateConflict
		}
		r.log.Error("failed to update article status",
			zap.String("article_id", d.ArticleId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	if _, err := tx.Exec(ctx, insertWorkflowLogQuery,
		d.ArticleId, d.CallerId, d.TargetUserId, d.CallerRole, d.TargetRole, d.Action, d.Comments,
	); err != nil {
		r.log.Error("failed to append workflow log",
			zap.String("article_id", d.ArticleId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	if d.CreateAssignment && d.TargetUserId != nil {
		if _, err := tx.Exec(ctx, insertAssignmentInTxQuery, uuid.New(), d.ArticleId, *d.TargetUserId); err != nil {
			r.log.Error("failed to insert assignment during transition",
				zap.String("article_id", d.ArticleId.String()),
				zap.String("reviewer_id", d.TargetUserId.String()),
				zap.Error(err),
			)
			return nil, handleDBError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit transition",
			zap.String("article_id", d.ArticleId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}

	r.log.Info("transition applied",
		zap.String("article_id", res.ArticleId.String()),
		zap.String("from", string(res.FromStatus)),
		zap.String("to", string(res.NewStatus)),
	)
	return res, nil
}

type queryExecutor interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func readArticle(ctx context.Context, exec queryExecutor, query string, articleId uuid.UUID) (*result.ArticleResult, error) {
	res := &result.ArticleResult{}
	err := exec.QueryRow(ctx, query, articleId).Scan(
		&res.Id,
		&res.Title,
		&res.Content,
		&res.AuthorId,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}
