package result

import (
	"time"

	"journalhub/internal/domain"

	"github.com/google/uuid"
)

type NotificationResult struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Type          domain.NotificationType
	Title         string
	Message       string
	ArticleId     *uuid.UUID
	RelatedUserId *uuid.UUID
	ActionUrl     string
	IsRead        bool
	CreatedAt     time.Time
	ReadAt        *time.Time
}
