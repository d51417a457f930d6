package dto

import (
	"journalhub/internal/domain"

	"github.com/google/uuid"
)

type CreateNotificationDTO struct {
	NotificationId uuid.UUID
	UserId         uuid.UUID
	Type           domain.NotificationType
	Title          string
	Message        string
	ArticleId      *uuid.UUID
	RelatedUserId  *uuid.UUID
	ActionUrl      string
}

type MarkReadDTO struct {
	NotificationId uuid.UUID
	UserId         uuid.UUID
}

type ListNotificationsDTO struct {
	UserId     uuid.UUID
	UnreadOnly bool
}
