package dto

import (
	"journalhub/internal/domain"

	"github.com/google/uuid"
)

type CreateArticleDTO struct {
	ArticleId uuid.UUID
	Title     string
	Content   string
	AuthorId  uuid.UUID
}

type TransitionDTO struct {
	ArticleId    uuid.UUID
	Action       domain.Action
	FromStatuses []domain.ArticleStatus
	ToStatus     domain.ArticleStatus
	CallerId     uuid.UUID
	CallerRole   domain.Role
	TargetUserId *uuid.UUID
	TargetRole   domain.Role
	Comments     string

	// forward: the caller must hold an active assignment, completed by the transition
	RequireAssignment bool
	// assign actions: insert an assignment for TargetUserId inside the same tx
	CreateAssignment bool
}
