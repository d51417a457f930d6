package repository

import (
	"context"
	"database/sql"

	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertNotificationQuery = `
INSERT INTO notifications(id, user_id, type, title, message, article_id, related_user_id, action_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, user_id, type, title, message, article_id, related_user_id, action_url, is_read, created_at, read_at;`

	markReadQuery = `
UPDATE notifications
SET is_read = TRUE,
    read_at = COALESCE(read_at, CURRENT_TIMESTAMP)
WHERE id = $1 AND user_id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type NotificationRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewNotificationRepository(db *pgxpool.Pool, log *zap.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:  db,
		log: log,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, d *dto.CreateNotificationDTO) (*result.NotificationResult, error) {
	r.log.Debug("create notification",
		zap.String("user_id", d.UserId.String()),
		zap.String("type", string(d.Type)),
	)

	res := &result.NotificationResult{}
	var readAt sql.NullTime
	err := r.db.QueryRow(ctx, insertNotificationQuery,
		d.NotificationId, d.UserId, d.Type, d.Title, d.Message, d.ArticleId, d.RelatedUserId, d.ActionUrl,
	).Scan(
		&res.Id,
		&res.UserId,
		&res.Type,
		&res.Title,
		&res.Message,
		&res.ArticleId,
		&res.RelatedUserId,
		&res.ActionUrl,
		&res.IsRead,
		&res.CreatedAt,
		&readAt,
	)
	if err != nil {
		r.log.Error("failed to insert notification",
			zap.String("user_id", d.UserId.String()),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}
	if readAt.Valid {
		res.ReadAt = &readAt.Time
	}

	return res, nil
}

// MarkRead is idempotent: re-marking keeps the original read_at.
func (r *NotificationRepository) MarkRead(ctx context.Context, d *dto.MarkReadDTO) error {
	cmdTag, err := r.db.Exec(ctx, markReadQuery, d.NotificationId, d.UserId)
	if err != nil {
		r.log.Error("failed to mark notification read",
			zap.String("notification_id", d.NotificationId.String()),
			zap.Error(err),
		)
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context, d *dto.ListNotificationsDTO) ([]*result.NotificationResult, error) {
	builder := psql.
		Select("id", "user_id", "type", "title", "message", "article_id",
			"related_user_id", "action_url", "is_read", "created_at", "read_at").
		From("notifications").
		Where(sq.Eq{"user_id": d.UserId}).
		OrderBy("created_at DESC")
	if d.UnreadOnly {
		builder = builder.Where(sq.Eq{"is_read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var notifications []*result.NotificationResult
	for rows.Next() {
		res := &result.NotificationResult{}
		var readAt sql.NullTime
		if err := rows.Scan(
			&res.Id,
			&res.UserId,
			&res.Type,
			&res.Title,
			&res.Message,
			&res.ArticleId,
			&res.RelatedUserId,
			&res.ActionUrl,
			&res.IsRead,
			&res.CreatedAt,
			&readAt,
		); err != nil {
			return nil, handleDBError(err)
		}
		if readAt.Valid {
			res.ReadAt = &readAt.Time
		}
		notifications = append(notifications, res)
	}

	return notifications, nil
}
