package domain

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	Id        uuid.UUID
	Title     string
	Content   string
	AuthorId  uuid.UUID
	Status    ArticleStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	Id   uuid.UUID
	Name string
	Role Role
}

type Assignment struct {
	Id         uuid.UUID
	ArticleId  uuid.UUID
	ReviewerId uuid.UUID
	Status     AssignmentStatus
	AssignedAt time.Time
}

type ReviewRequest struct {
	Id         uuid.UUID
	EditorId   uuid.UUID
	ReviewerId uuid.UUID
	ArticleId  *uuid.UUID
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Notification struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Type          NotificationType
	Title         string
	Message       string
	ArticleId     *uuid.UUID
	RelatedUserId *uuid.UUID
	ActionUrl     string
	IsRead        bool
	CreatedAt     time.Time
	ReadAt        *time.Time
}

// WorkflowLogEntry is one row of the append-only audit trail,
// written once per lifecycle transition and never mutated.
type WorkflowLogEntry struct {
	Id         int64
	ArticleId  uuid.UUID
	FromUserId uuid.UUID
	ToUserId   *uuid.UUID
	FromRole   Role
	ToRole     Role
	Action     Action
	Comments   string
	CreatedAt  time.Time
}
