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
	createArticleError = errors.New("create article error")
	getArticleError    = errors.New("get article error")
	transitionError    = errors.New("apply transition error")
)

type ArticleRepository interface {
	Create(ctx context.Context, d *dto.CreateArticleDTO) (*result.ArticleResult, error)
	Get(ctx context.Context, articleId uuid.UUID) (*result.ArticleResult, error)
	ApplyTransition(ctx context.Context, d *dto.TransitionDTO) (*result.TransitionResult, error)
}

// transitionRule is one row of the lifecycle table: which states the action
// may leave, where it lands, who may call it, and what it emits.
type transitionRule struct {
	from       []domain.ArticleStatus // nil: any non-terminal state
	to         domain.ArticleStatus
	roles      []domain.Role
	targetRole domain.Role
	notifyType domain.NotificationType

	// creates an assignment for the target user inside the transition tx
	assigns bool
	// requires an active assignment held by the caller, completed on success
	forwards bool
}

// transitions is the single source of truth for legal lifecycle moves.
// Any (state, action) pair outside it is rejected, never silently ignored.
var transitions = map[domain.Action]transitionRule{
	domain.ActionSubmit: {
		from:       []domain.ArticleStatus{domain.StatusDraft},
		to:         domain.StatusSubmitted,
		roles:      []domain.Role{domain.RoleAuthor},
		targetRole: domain.RoleEditor,
		notifyType: domain.NotificationApprovalRequired,
	},
	domain.ActionAssignAssistantEditor: {
		from:       []domain.ArticleStatus{domain.StatusSubmitted},
		to:         domain.StatusUnderReview,
		roles:      []domain.Role{domain.RoleEditor},
		targetRole: domain.RoleEditor,
		notifyType: domain.NotificationArticleAssigned,
		assigns:    true,
	},
	domain.ActionSendToPeerReview: {
		from:       []domain.ArticleStatus{domain.StatusUnderReview},
		to:         domain.StatusWithEditor,
		roles:      []domain.Role{domain.RoleEditor},
		targetRole: domain.RoleReviewer,
		notifyType: domain.NotificationArticleAssigned,
		assigns:    true,
	},
	domain.ActionApprove: {
		from:       []domain.ArticleStatus{domain.StatusWithEditor},
		to:         domain.StatusWithEditor,
		roles:      []domain.Role{domain.RoleEditor},
		targetRole: domain.RoleEditor,
		notifyType: domain.NotificationApprovalRequired,
	},
	domain.ActionPublish: {
		from:       []domain.ArticleStatus{domain.StatusWithEditor},
		to:         domain.StatusPublished,
		roles:      []domain.Role{domain.RoleEditor, domain.RoleAdministrator},
		targetRole: domain.RoleAuthor,
		notifyType: domain.NotificationArticlePublished,
	},
	domain.ActionReject: {
		to:         domain.StatusRejected,
		roles:      []domain.Role{domain.RoleEditor, domain.RoleAdministrator},
		targetRole: domain.RoleAuthor,
		notifyType: domain.NotificationArticleRejected,
	},
	domain.ActionRequestRevision: {
		from:       []domain.ArticleStatus{domain.StatusWithEditor},
		to:         domain.StatusDraft,
		roles:      []domain.Role{domain.RoleEditor},
		targetRole: domain.RoleAuthor,
		notifyType: domain.NotificationRevisionRequested,
	},
	domain.ActionForward: {
		from:       []domain.ArticleStatus{domain.StatusUnderReview},
		to:         domain.StatusAccepted,
		roles:      []domain.Role{domain.RoleReviewer},
		targetRole: domain.RoleEditor,
		notifyType: domain.NotificationReviewSubmitted,
		forwards:   true,
	},
}

type LifecycleService struct {
	repo     ArticleRepository
	notifier NotificationRepository
	log      *zap.Logger
}

func NewLifecycleService(repo ArticleRepository, notifier NotificationRepository, log *zap.Logger) *LifecycleService {
	return &LifecycleService{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

func (s *LifecycleService) Create(ctx context.Context, req *request.CreateArticleRequest) (*response.ArticleResponse, error) {
	if req.Title == "" {
		return nil, ErrInvalidInput
	}
	if domain.Role(req.CallerRole) != domain.RoleAuthor {
		return nil, WrapError(ErrInvalidInput, fmt.Errorf("only authors create drafts, got role %q", req.CallerRole))
	}

	authorId, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	d := &dto.CreateArticleDTO{
		ArticleId: uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorId:  authorId,
	}

	res, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", createArticleError, err)
	}

	return articleToResponse(res), nil
}

func (s *LifecycleService) Get(ctx context.Context, articleId string) (*response.ArticleResponse, error) {
	id, err := uuid.Parse(articleId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	res, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrArticleNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", getArticleError, err)
	}

	return articleToResponse(res), nil
}

// Apply validates one lifecycle command against the transition table and
// executes it. The status change and the audit entry commit together; the
// notification to the target user is best-effort after the commit.
func (s *LifecycleService) Apply(ctx context.Context, req *request.TransitionRequest) (*response.TransitionResponse, error) {
	s.log.Info("apply transition accepted",
		zap.String("article_id", req.ArticleId),
		zap.String("action", req.Action),
		zap.String("caller_role", req.CallerRole),
	)

	action := domain.Action(req.Action)
	rule, ok := transitions[action]
	if !ok {
		return nil, WrapError(ErrInvalidInput, fmt.Errorf("unknown action %q", req.Action))
	}

	callerRole := domain.Role(req.CallerRole)
	if !roleAllowed(rule.roles, callerRole) {
		return nil, WrapError(ErrInvalidTransition,
			fmt.Errorf("role %q may not perform %q", req.CallerRole, req.Action))
	}

	articleId, err := uuid.Parse(req.ArticleId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}
	callerId, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err)
	}

	var targetUserId *uuid.UUID
	if req.TargetUserId != "" {
		id, err := uuid.Parse(req.TargetUserId)
		if err != nil {
			return nil, WrapError(ErrInvalidInput, err)
		}
		targetUserId = &id
	}

	from := rule.from
	if from == nil {
		from = domain.NonTerminalStatuses()
	}

	d := &dto.TransitionDTO{
		ArticleId:         articleId,
		Action:            action,
		FromStatuses:      from,
		ToStatus:          rule.to,
		CallerId:          callerId,
		CallerRole:        callerRole,
		TargetUserId:      targetUserId,
		TargetRole:        rule.targetRole,
		Comments:          req.Comments,
		RequireAssignment: rule.forwards,
		CreateAssignment:  rule.assigns,
	}

	res, err := s.repo.ApplyTransition(ctx, d)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, WrapError(ErrArticleNotFound, err)
		case errors.Is(err, repository.ErrStateConflict):
			return nil, WrapError(ErrInvalidTransition, err)
		case errors.Is(err, repository.ErrNotAssigned):
			return nil, WrapError(ErrNotAssigned, err)
		}
		return nil, fmt.Errorf("%w: %w", transitionError, err)
	}

	if targetUserId != nil {
		s.notifyTarget(ctx, rule, res, *targetUserId, callerId)
	}

	return &response.TransitionResponse{
		ArticleId:  res.ArticleId.String(),
		Action:     string(action),
		FromStatus: string(res.FromStatus),
		Status:     string(res.NewStatus),
		UpdatedAt:  res.UpdatedAt.Format(timeFormat),
	}, nil
}

// notifyTarget emits the single per-transition notification. Failures are
// logged and swallowed: the committed transition must not be rolled back or
// reported as failed over a lost notification.
func (s *LifecycleService) notifyTarget(ctx context.Context, rule transitionRule, res *result.TransitionResult, targetUserId, callerId uuid.UUID) {
	articleId := res.ArticleId
	d := &dto.CreateNotificationDTO{
		NotificationId: uuid.New(),
		UserId:         targetUserId,
		Type:           rule.notifyType,
		Title:          res.Title,
		Message:        notificationMessage(rule.notifyType, res.Title),
		ArticleId:      &articleId,
		RelatedUserId:  &callerId,
		ActionUrl:      fmt.Sprintf("/articles/%s", articleId),
	}

	if _, err := s.notifier.Create(ctx, d); err != nil {
		s.log.Warn("notification delivery failed",
			zap.String("article_id", articleId.String()),
			zap.String("user_id", targetUserId.String()),
			zap.String("type", string(rule.notifyType)),
			zap.Error(err),
		)
	}
}

func notificationMessage(t domain.NotificationType, title string) string {
	switch t {
	case domain.NotificationArticleAssigned:
		return fmt.Sprintf("You have been assigned to review %q", title)
	case domain.NotificationReviewSubmitted:
		return fmt.Sprintf("A review verdict was forwarded for %q", title)
	case domain.NotificationApprovalRequired:
		return fmt.Sprintf("%q is awaiting your approval", title)
	case domain.NotificationArticlePublished:
		return fmt.Sprintf("%q has been published", title)
	case domain.NotificationArticleRejected:
		return fmt.Sprintf("%q has been rejected", title)
	case domain.NotificationRevisionRequested:
		return fmt.Sprintf("Revisions were requested for %q", title)
	}
	return title
}

func roleAllowed(roles []domain.Role, role domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func articleToResponse(res *result.ArticleResult) *response.ArticleResponse {
	return &response.ArticleResponse{
		ArticleId: res.Id.String(),
		Title:     res.Title,
		Content:   res.Content,
		AuthorId:  res.AuthorId.String(),
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.Format(timeFormat),
		UpdatedAt: res.UpdatedAt.Format(timeFormat),
	}
}
