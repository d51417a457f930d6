package result

import (
	"time"

	"journalhub/internal/domain"

	"github.com/google/uuid"
)

type ArticleResult struct {
	Id        uuid.UUID
	Title     string
	Content   string
	AuthorId  uuid.UUID
	Status    domain.ArticleStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransitionResult struct {
	ArticleId  uuid.UUID
	Title      string
	AuthorId   uuid.UUID
	FromStatus domain.ArticleStatus
	NewStatus  domain.ArticleStatus
	UpdatedAt  time.Time
}

type StatusCountResult struct {
	Status domain.ArticleStatus
	Count  int64
}
