package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"journalhub/internal/domain"
	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"
	"journalhub/internal/infrastructure/repository"
	"journalhub/internal/transport/dto/request"
	"journalhub/internal/transport/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const timeFormat = time.RFC3339

var (
	createNotificationError = errors.New("create notification error")
	markReadError           = errors.New("mark notification read error")
	listNotificationsError  = errors.New("list notifications error")
	unknownTypeError        = errors.New("unknown notification type")
)

type NotificationRepository interface {
	Create(ctx context.Context, d *dto.CreateNotificationDTO) (*result.NotificationResult, error)
	MarkRead(ctx context.Context, d *dto.MarkReadDTO) error
	List(ctx context.Context, d *dto.ListNotificationsDTO) ([]*result.NotificationResult, error)
}

type NotificationService struct {
	repo NotificationRepository
	log  *zap.Logger
}

func NewNotificationService(repo NotificationRepository, log *zap.Logger) *NotificationService {
	return &NotificationService{
		repo: repo,
		log:  log,
	}
}

// Create is the dispatcher surface for collaborators outside the lifecycle
// engine (the chat feature emits comment_added through here). The type must
// belong to the closed enum.
func (s *NotificationService) Create(ctx context.Context, req *request.CreateNotificationRequest) (*response.NotificationResponse, error) {
	notifType := domain.NotificationType(req.Type)
	if !notifType.Valid() {
		return nil, WrapError(ErrInvalidInput, fmt.Errorf("%w: %q", unknownTypeError, req.Type))
	}
	if req.Title == "" || req.Message == "" {
		return nil, ErrInvalidInput
	}

	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.CreateNotificationDTO{
		NotificationId: uuid.New(),
		UserId:         userId,
		Type:           notifType,
		Title:          req.Title,
		Message:        req.Message,
		ActionUrl:      req.ActionUrl,
	}
	if req.ArticleId != "" {
		id, err := uuid.Parse(req.ArticleId)
		if err != nil {
			return nil, WrapError(ErrInvalidInput, err)
		}
		d.ArticleId = &id
	}
	if req.RelatedUserId != "" {
		id, err := uuid.Parse(req.RelatedUserId)
		if err != nil {
			return nil, WrapError(ErrInvalidInput, err)
		}
		d.RelatedUserId = &id
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", createNotificationError, err)
	}

	return notificationToResponse(res), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, req *request.MarkReadRequest) error {
	notificationId, err := uuid.Parse(req.NotificationId)
	if err != nil {
		return WrapError(ErrInvalidInput, err)
	}
	userId, err := uuid.Parse(req.CallerId)
	if err != nil {
		return WrapError(ErrInvalidInput, err)
	}

	d := &dto.MarkReadDTO{
		NotificationId: notificationId,
		UserId:         userId,
	}

	if err := s.repo.MarkRead(ctx, d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return WrapError(ErrNotificationNotFound, err)
		}
		return fmt.Errorf("%w: %w", markReadError, err)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, req *request.ListNotificationsRequest) ([]*response.NotificationResponse, error) {
	userId, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.ListNotificationsDTO{
		UserId:     userId,
		UnreadOnly: req.UnreadOnly,
	}

	results, err := s.repo.List(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listNotificationsError, err)
	}

	notifications := make([]*response.NotificationResponse, 0, len(results))
	for _, res := range results {
		notifications = append(notifications, notificationToResponse(res))
	}
	return notifications, nil
}

func notificationToResponse(res *result.NotificationResult) *response.NotificationResponse {
	resp := &response.NotificationResponse{
		NotificationId: res.Id.String(),
		UserId:         res.UserId.String(),
		Type:           string(res.Type),
		Title:          res.Title,
		Message:        res.Message,
		ActionUrl:      res.ActionUrl,
		IsRead:         res.IsRead,
		CreatedAt:      res.CreatedAt.Format(timeFormat),
	}
	if res.ArticleId != nil {
		resp.ArticleId = res.ArticleId.String()
	}
	if res.RelatedUserId != nil {
		resp.RelatedUserId = res.RelatedUserId.String()
	}
	if res.ReadAt != nil {
		resp.ReadAt = res.ReadAt.Format(timeFormat)
	}
	return resp
}
