package service

import (
	"context"
	"errors"
	"fmt"

	"journalhub/internal/domain"
	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"
	"journalhub/internal/infrastructure/repository"
	"journalhub/internal/transport/dto/request"
	"journalhub/internal/transport/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	createAssignmentError = errors.New("create assignment error")
	listAssignmentsError  = errors.New("list assignments error")
	sendRequestError      = errors.New("send review request error")
	respondToRequestError = errors.New("respond to review request error")
	unknownDecisionError  = errors.New("decision must be accept or reject")
)

type AssignmentRepository interface {
	Create(ctx context.Context, d *dto.CreateAssignmentDTO) (*result.AssignmentResult, error)
	ListByReviewer(ctx context.Context, reviewerId uuid.UUID) ([]*result.AssignmentResult, error)
}

type ReviewRequestRepository interface {
	Create(ctx context.Context, d *dto.SendReviewRequestDTO) (*result.ReviewRequestResult, error)
	Respond(ctx context.Context, d *dto.RespondReviewRequestDTO) (*result.RespondResult, error)
}

type AssignmentService struct {
	assignments AssignmentRepository
	requests    ReviewRequestRepository
	notifier    NotificationRepository
	log         *zap.Logger
}

func NewAssignmentService(
	assignments AssignmentRepository,
	requests ReviewRequestRepository,
	notifier NotificationRepository,
	log *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		requests:    requests,
		notifier:    notifier,
		log:         log,
	}
}

// CreateAssignment is the editor-initiated path; the only other way an
// assignment comes into existence is acceptance of an article-bound review
// request.
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *request.CreateAssignmentRequest) (*response.AssignmentResponse, error) {
	if !editorRole(domain.Role(req.CallerRole)) {
		return nil, WrapError(ErrInvalidInput, fmt.Errorf("only editors assign reviewers, got role %q", req.CallerRole))
	}

	articleId, err := uuid.Parse(req.ArticleId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	reviewerId, err := uuid.Parse(req.ReviewerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	assignedBy, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.CreateAssignmentDTO{
		AssignmentId: uuid.New(),
		ArticleId:    articleId,
		ReviewerId:   reviewerId,
		AssignedBy:   assignedBy,
	}

	res, err := s.assignments.Create(ctx, d)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return nil, WrapError(ErrDuplicateAssignment, err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, WrapError(ErrArticleNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", createAssignmentError, err)
	}

	s.notify(ctx, &dto.CreateNotificationDTO{
		NotificationId: uuid.New(),
		UserId:         reviewerId,
		Type:           domain.NotificationArticleAssigned,
		Title:          "New review assignment",
		Message:        "You have been assigned an article to review",
		ArticleId:      &articleId,
		RelatedUserId:  &assignedBy,
		ActionUrl:      fmt.Sprintf("/articles/%s", articleId),
	})

	return assignmentToResponse(res), nil
}

func (s *AssignmentService) ListAssignments(ctx context.Context, callerId string) ([]*response.AssignmentResponse, error) {
	reviewerId, err := uuid.Parse(callerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	results, err := s.assignments.ListByReviewer(ctx, reviewerId)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listAssignmentsError, err)
	}

	assignments := make([]*response.AssignmentResponse, 0, len(results))
	for _, res := range results {
		assignments = append(assignments, assignmentToResponse(res))
	}
	return assignments, nil
}

func (s *AssignmentService) SendReviewRequest(ctx context.Context, req *request.SendReviewRequestRequest) (*response.ReviewRequestResponse, error) {
	if !editorRole(domain.Role(req.CallerRole)) {
		return nil, WrapError(ErrInvalidInput, fmt.Errorf("only editors send review requests, got role %q", req.CallerRole))
	}

	editorId, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	reviewerId, err := uuid.Parse(req.ReviewerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	var articleId *uuid.UUID
	if req.ArticleId != "" {
		id, err := uuid.Parse(req.ArticleId)
		if err != nil {
			return nil, WrapError(ErrInvalidInput, err)
		}
		articleId = &id
	}

	d := &dto.SendReviewRequestDTO{
		RequestId:  uuid.New(),
		EditorId:   editorId,
		ReviewerId: reviewerId,
		ArticleId:  articleId,
	}

	res, err := s.requests.Create(ctx, d)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return nil, WrapError(ErrDuplicatePendingRequest, err)
		case errors.Is(err, repository.ErrInvalidInput):
			return nil, WrapError(ErrArticleNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", sendRequestError, err)
	}

	s.notify(ctx, &dto.CreateNotificationDTO{
		NotificationId: uuid.New(),
		UserId:         reviewerId,
		Type:           domain.NotificationReviewRequestSent,
		Title:          "Review request",
		Message:        "An editor has invited you to review",
		ArticleId:      articleId,
		RelatedUserId:  &editorId,
		ActionUrl:      fmt.Sprintf("/reviewRequests/%s", res.Id),
	})

	return reviewRequestToResponse(res), nil
}

// RespondToReviewRequest settles a pending invitation. Acceptance of a
// request that names an article creates exactly that one assignment; it
// never fans out to other articles.
func (s *AssignmentService) RespondToReviewRequest(ctx context.Context, req *request.RespondReviewRequestRequest) (*response.RespondReviewRequestResponse, error) {
	requestId, err := uuid.Parse(req.RequestId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	reviewerId, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	var decision domain.RequestStatus
	switch req.Decision {
	case "accept":
		decision = domain.RequestAccepted
	case "reject":
		decision = domain.RequestRejected
	default:
		return nil, WrapError(ErrInvalidInput, unknownDecisionError)
	}

	d := &dto.RespondReviewRequestDTO{
		RequestId:    requestId,
		ReviewerId:   reviewerId,
		Decision:     decision,
		AssignmentId: uuid.New(),
	}

	res, err := s.requests.Respond(ctx, d)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, WrapError(ErrRequestNotFound, err)
		case errors.Is(err, repository.ErrAlreadyProcessed):
			return nil, WrapError(ErrAlreadyProcessed, err)
		}
		return nil, fmt.Errorf("%w: %w", respondToRequestError, err)
	}

	s.notify(ctx, &dto.CreateNotificationDTO{
		NotificationId: uuid.New(),
		UserId:         res.Request.EditorId,
		Type:           domain.NotificationReviewRequestResponse,
		Title:          "Review request answered",
		Message:        fmt.Sprintf("The reviewer has %sed your review request", req.Decision),
		ArticleId:      res.Request.ArticleId,
		RelatedUserId:  &reviewerId,
	})
	if res.AssignmentsCreated > 0 && res.Request.ArticleId != nil {
		s.notify(ctx, &dto.CreateNotificationDTO{
			NotificationId: uuid.New(),
			UserId:         reviewerId,
			Type:           domain.NotificationArticleAssigned,
			Title:          "New review assignment",
			Message:        "You have been assigned an article to review",
			ArticleId:      res.Request.ArticleId,
			RelatedUserId:  &res.Request.EditorId,
			ActionUrl:      fmt.Sprintf("/articles/%s", res.Request.ArticleId),
		})
	}

	return &response.RespondReviewRequestResponse{
		RequestId:          res.Request.Id.String(),
		Status:             string(res.Request.Status),
		AssignmentsCreated: res.AssignmentsCreated,
	}, nil
}

// editorRole reports whether the caller carries editor authority;
// administrators hold the same authority here as on publish/reject.
func editorRole(role domain.Role) bool {
	return role == domain.RoleEditor || role == domain.RoleAdministrator
}

// notify is best-effort: a lost notification never fails the mutation.
func (s *AssignmentService) notify(ctx context.Context, d *dto.CreateNotificationDTO) {
	if _, err := s.notifier.Create(ctx, d); err != nil {
		s.log.Warn("notification delivery failed",
			zap.String("user_id", d.UserId.String()),
			zap.String("type", string(d.Type)),
			zap.Error(err),
		)
	}
}

func assignmentToResponse(res *result.AssignmentResult) *response.AssignmentResponse {
	return &response.AssignmentResponse{
		AssignmentId: res.Id.String(),
		ArticleId:    res.ArticleId.String(),
		ReviewerId:   res.ReviewerId.String(),
		Status:       string(res.Status),
		AssignedAt:   res.AssignedAt.Format(timeFormat),
	}
}

func reviewRequestToResponse(res *result.ReviewRequestResult) *response.ReviewRequestResponse {
	resp := &response.ReviewRequestResponse{
		RequestId:  res.Id.String(),
		EditorId:   res.EditorId.String(),
		ReviewerId: res.ReviewerId.String(),
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt.Format(timeFormat),
	}
	if res.ArticleId != nil {
		resp.ArticleId = res.ArticleId.String()
	}
	return resp
}
