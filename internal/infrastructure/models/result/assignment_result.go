package result

import (
	"time"

	"journalhub/internal/domain"

	"github.com/google/uuid"
)

type AssignmentResult struct {
	Id         uuid.UUID
	ArticleId  uuid.UUID
	ReviewerId uuid.UUID
	Status     domain.AssignmentStatus
	AssignedAt time.Time
}

type ReviewRequestResult struct {
	Id         uuid.UUID
	EditorId   uuid.UUID
	ReviewerId uuid.UUID
	ArticleId  *uuid.UUID
	Status     domain.RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RespondResult struct {
	Request            *ReviewRequestResult
	AssignmentsCreated int
}
