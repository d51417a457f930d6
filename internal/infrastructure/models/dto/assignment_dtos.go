package dto

import (
	"journalhub/internal/domain"

	"github.com/google/uuid"
)

type CreateAssignmentDTO struct {
	AssignmentId uuid.UUID
	ArticleId    uuid.UUID
	ReviewerId   uuid.UUID
	AssignedBy   uuid.UUID
}

type SendReviewRequestDTO struct {
	RequestId  uuid.UUID
	EditorId   uuid.UUID
	ReviewerId uuid.UUID
	ArticleId  *uuid.UUID
}

type RespondReviewRequestDTO struct {
	RequestId  uuid.UUID
	ReviewerId uuid.UUID
	Decision   domain.RequestStatus
	// id for the assignment inserted on acceptance of an article-bound request
	AssignmentId uuid.UUID
}
