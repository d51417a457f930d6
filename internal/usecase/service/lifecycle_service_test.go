package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"journalhub/internal/domain"
	"journalhub/internal/infrastructure/models/dto"
	"journalhub/internal/infrastructure/models/result"
	"journalhub/internal/infrastructure/repository"
	"journalhub/internal/transport/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, d *dto.CreateArticleDTO) (*result.ArticleResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.ArticleResult), args.Error(1)
}

func (m *MockArticleRepository) Get(ctx context.Context, articleId uuid.UUID) (*result.ArticleResult, error) {
	args := m.Called(ctx, articleId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.ArticleResult), args.Error(1)
}

func (m *MockArticleRepository) ApplyTransition(ctx context.Context, d *dto.TransitionDTO) (*result.TransitionResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.TransitionResult), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, d *dto.CreateNotificationDTO) (*result.NotificationResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.NotificationResult), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, d *dto.MarkReadDTO) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, d *dto.ListNotificationsDTO) ([]*result.NotificationResult, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*result.NotificationResult), args.Error(1)
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		action domain.Action
		from   []domain.ArticleStatus
		to     domain.ArticleStatus
		roles  []domain.Role
	}{
		{domain.ActionSubmit, []domain.ArticleStatus{domain.StatusDraft}, domain.StatusSubmitted, []domain.Role{domain.RoleAuthor}},
		{domain.ActionAssignAssistantEditor, []domain.ArticleStatus{domain.StatusSubmitted}, domain.StatusUnderReview, []domain.Role{domain.RoleEditor}},
		{domain.ActionSendToPeerReview, []domain.ArticleStatus{domain.StatusUnderReview}, domain.StatusWithEditor, []domain.Role{domain.RoleEditor}},
		{domain.ActionApprove, []domain.ArticleStatus{domain.StatusWithEditor}, domain.StatusWithEditor, []domain.Role{domain.RoleEditor}},
		{domain.ActionPublish, []domain.ArticleStatus{domain.StatusWithEditor}, domain.StatusPublished, []domain.Role{domain.RoleEditor, domain.RoleAdministrator}},
		{domain.ActionReject, nil, domain.StatusRejected, []domain.Role{domain.RoleEditor, domain.RoleAdministrator}},
		{domain.ActionRequestRevision, []domain.ArticleStatus{domain.StatusWithEditor}, domain.StatusDraft, []domain.Role{domain.RoleEditor}},
		{domain.ActionForward, []domain.ArticleStatus{domain.StatusUnderReview}, domain.StatusAccepted, []domain.Role{domain.RoleReviewer}},
	}

	assert.Len(t, transitions, len(cases))
	for _, c := range cases {
		rule, ok := transitions[c.action]
		assert.True(t, ok, "missing rule for %s", c.action)
		assert.Equal(t, c.from, rule.from, "from set for %s", c.action)
		assert.Equal(t, c.to, rule.to, "target state for %s", c.action)
		assert.Equal(t, c.roles, rule.roles, "roles for %s", c.action)
	}
}

func TestLifecycleService_Apply_Submit(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	articleId := uuid.New()
	authorId := uuid.New()

	mockRepo.On("ApplyTransition", mock.Anything, mock.MatchedBy(func(d *dto.TransitionDTO) bool {
		return d.ArticleId == articleId &&
			d.Action == domain.ActionSubmit &&
			len(d.FromStatuses) == 1 && d.FromStatuses[0] == domain.StatusDraft &&
			d.ToStatus == domain.StatusSubmitted &&
			!d.CreateAssignment && !d.RequireAssignment
	})).Return(&result.TransitionResult{
		ArticleId:  articleId,
		Title:      "On Lattices",
		AuthorId:   authorId,
		FromStatus: domain.StatusDraft,
		NewStatus:  domain.StatusSubmitted,
		UpdatedAt:  time.Now(),
	}, nil)

	resp, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  articleId.String(),
		Action:     "submit",
		CallerId:   authorId.String(),
		CallerRole: "author",
	})

	assert.NoError(t, err)
	assert.Equal(t, "submitted", resp.Status)
	assert.Equal(t, "draft", resp.FromStatus)
	// no target user, so no notification may be emitted
	mockNotifier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestLifecycleService_Apply_UnknownAction(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	_, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  uuid.New().String(),
		Action:     "tear_up",
		CallerId:   uuid.New().String(),
		CallerRole: "editor",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

func TestLifecycleService_Apply_RoleNotAllowed(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	// a reviewer may not publish
	_, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  uuid.New().String(),
		Action:     "publish",
		CallerId:   uuid.New().String(),
		CallerRole: "reviewer",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockRepo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

func TestLifecycleService_Apply_AdministratorMayPublish(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	articleId := uuid.New()
	mockRepo.On("ApplyTransition", mock.Anything, mock.Anything).Return(&result.TransitionResult{
		ArticleId:  articleId,
		FromStatus: domain.StatusWithEditor,
		NewStatus:  domain.StatusPublished,
		UpdatedAt:  time.Now(),
	}, nil)

	resp, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  articleId.String(),
		Action:     "publish",
		CallerId:   uuid.New().String(),
		CallerRole: "administrator",
	})

	assert.NoError(t, err)
	assert.Equal(t, "published", resp.Status)
	mockRepo.AssertExpectations(t)
}

func TestLifecycleService_Apply_StaleState(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	mockRepo.On("ApplyTransition", mock.Anything, mock.Anything).Return(nil, repository.ErrStateConflict)

	_, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  uuid.New().String(),
		Action:     "publish",
		CallerId:   uuid.New().String(),
		CallerRole: "editor",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockNotifier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLifecycleService_Apply_ForwardWithoutAssignment(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	mockRepo.On("ApplyTransition", mock.Anything, mock.MatchedBy(func(d *dto.TransitionDTO) bool {
		return d.RequireAssignment
	})).Return(nil, repository.ErrNotAssigned)

	_, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  uuid.New().String(),
		Action:     "forward",
		CallerId:   uuid.New().String(),
		CallerRole: "reviewer",
	})

	assert.ErrorIs(t, err, ErrNotAssigned)
	assert.NotErrorIs(t, err, ErrInvalidTransition)
}

func TestLifecycleService_Apply_ArticleNotFound(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	mockRepo.On("ApplyTransition", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  uuid.New().String(),
		Action:     "reject",
		CallerId:   uuid.New().String(),
		CallerRole: "editor",
	})

	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestLifecycleService_Apply_PublishNotifiesTarget(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	articleId := uuid.New()
	editorId := uuid.New()
	authorId := uuid.New()

	mockRepo.On("ApplyTransition", mock.Anything, mock.Anything).Return(&result.TransitionResult{
		ArticleId:  articleId,
		Title:      "On Lattices",
		AuthorId:   authorId,
		FromStatus: domain.StatusWithEditor,
		NewStatus:  domain.StatusPublished,
		UpdatedAt:  time.Now(),
	}, nil)
	mockNotifier.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreateNotificationDTO) bool {
		return d.Type == domain.NotificationArticlePublished &&
			d.UserId == authorId &&
			d.ArticleId != nil && *d.ArticleId == articleId
	})).Return(&result.NotificationResult{Id: uuid.New()}, nil).Once()

	resp, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:    articleId.String(),
		Action:       "publish",
		CallerId:     editorId.String(),
		CallerRole:   "editor",
		TargetUserId: authorId.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "published", resp.Status)
	mockNotifier.AssertExpectations(t)
	mockNotifier.AssertNumberOfCalls(t, "Create", 1)
}

func TestLifecycleService_Apply_NotificationFailureDoesNotFailTransition(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	articleId := uuid.New()
	mockRepo.On("ApplyTransition", mock.Anything, mock.Anything).Return(&result.TransitionResult{
		ArticleId:  articleId,
		FromStatus: domain.StatusWithEditor,
		NewStatus:  domain.StatusPublished,
		UpdatedAt:  time.Now(),
	}, nil)
	mockNotifier.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable"))

	resp, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:    articleId.String(),
		Action:       "publish",
		CallerId:     uuid.New().String(),
		CallerRole:   "editor",
		TargetUserId: uuid.New().String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "published", resp.Status)
}

func TestLifecycleService_Apply_AssignCreatesAssignment(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	articleId := uuid.New()
	reviewerId := uuid.New()

	mockRepo.On("ApplyTransition", mock.Anything, mock.MatchedBy(func(d *dto.TransitionDTO) bool {
		return d.CreateAssignment &&
			d.TargetUserId != nil && *d.TargetUserId == reviewerId
	})).Return(&result.TransitionResult{
		ArticleId:  articleId,
		FromStatus: domain.StatusUnderReview,
		NewStatus:  domain.StatusWithEditor,
		UpdatedAt:  time.Now(),
	}, nil)
	mockNotifier.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreateNotificationDTO) bool {
		return d.Type == domain.NotificationArticleAssigned && d.UserId == reviewerId
	})).Return(&result.NotificationResult{Id: uuid.New()}, nil)

	_, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:    articleId.String(),
		Action:       "send_to_peer_review",
		CallerId:     uuid.New().String(),
		CallerRole:   "editor",
		TargetUserId: reviewerId.String(),
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestLifecycleService_Apply_RejectFromAnyNonTerminal(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	mockRepo.On("ApplyTransition", mock.Anything, mock.MatchedBy(func(d *dto.TransitionDTO) bool {
		for _, s := range d.FromStatuses {
			if s.Terminal() {
				return false
			}
		}
		return len(d.FromStatuses) == 7
	})).Return(&result.TransitionResult{
		ArticleId:  uuid.New(),
		FromStatus: domain.StatusSubmitted,
		NewStatus:  domain.StatusRejected,
		UpdatedAt:  time.Now(),
	}, nil)

	resp, err := svc.Apply(context.Background(), &request.TransitionRequest{
		ArticleId:  uuid.New().String(),
		Action:     "reject",
		CallerId:   uuid.New().String(),
		CallerRole: "editor",
	})

	assert.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	mockRepo.AssertExpectations(t)
}

func TestLifecycleService_Create_Draft(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	authorId := uuid.New()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *dto.CreateArticleDTO) bool {
		return d.Title == "On Lattices" && d.AuthorId == authorId
	})).Return(&result.ArticleResult{
		Id:        uuid.New(),
		Title:     "On Lattices",
		AuthorId:  authorId,
		Status:    domain.StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil)

	resp, err := svc.Create(context.Background(), &request.CreateArticleRequest{
		Title:      "On Lattices",
		Content:    "...",
		CallerId:   authorId.String(),
		CallerRole: "author",
	})

	assert.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
	mockRepo.AssertExpectations(t)
}

func TestLifecycleService_Create_NonAuthorRejected(t *testing.T) {
	logger := zap.NewNop()
	mockRepo := new(MockArticleRepository)
	mockNotifier := new(MockNotificationRepository)
	svc := NewLifecycleService(mockRepo, mockNotifier, logger)

	_, err := svc.Create(context.Background(), &request.CreateArticleRequest{
		Title:      "On Lattices",
		CallerId:   uuid.New().String(),
		CallerRole: "editor",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
