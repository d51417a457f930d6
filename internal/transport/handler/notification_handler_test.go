package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"journalhub/internal/transport/dto/request"
	"journalhub/internal/transport/dto/response"
	"journalhub/internal/transport/middleware"
	"journalhub/internal/usecase/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Create(ctx context.Context, req *request.CreateNotificationRequest) (*response.NotificationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.NotificationResponse), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, req *request.MarkReadRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockNotificationService) List(ctx context.Context, req *request.ListNotificationsRequest) ([]*response.NotificationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.NotificationResponse), args.Error(1)
}

func TestNotificationHandler_List_UnreadFilter(t *testing.T) {
	logger := zap.NewNop()
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService, logger)

	callerId := uuid.New().String()
	mockService.On("List", mock.Anything, mock.MatchedBy(func(r *request.ListNotificationsRequest) bool {
		return r.UnreadOnly && r.CallerId == callerId
	})).Return([]*response.NotificationResponse{
		{
			NotificationId: uuid.New().String(),
			UserId:         callerId,
			Type:           "article_assigned",
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil)
	req = req.WithContext(middleware.WithCaller(req.Context(), callerId, "reviewer"))
	w := httptest.NewRecorder()

	handler.ListNotifications(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Contains(t, result, "notifications")
	mockService.AssertExpectations(t)
}

func TestNotificationHandler_MarkRead_Success(t *testing.T) {
	logger := zap.NewNop()
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService, logger)

	notificationId := uuid.New().String()
	callerId := uuid.New().String()

	mockService.On("MarkRead", mock.Anything, mock.MatchedBy(func(r *request.MarkReadRequest) bool {
		return r.NotificationId == notificationId && r.CallerId == callerId
	})).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationId+"/read", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("notificationId", notificationId)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	req = req.WithContext(middleware.WithCaller(ctx, callerId, "reviewer"))
	w := httptest.NewRecorder()

	handler.MarkRead(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	logger := zap.NewNop()
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService, logger)

	mockService.On("MarkRead", mock.Anything, mock.Anything).Return(service.ErrNotificationNotFound)

	notificationId := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationId+"/read", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("notificationId", notificationId)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	req = req.WithContext(middleware.WithCaller(ctx, uuid.New().String(), "reviewer"))
	w := httptest.NewRecorder()

	handler.MarkRead(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_Create_InvalidType(t *testing.T) {
	logger := zap.NewNop()
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService, logger)

	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidInput)

	body, _ := json.Marshal(request.CreateNotificationRequest{
		UserId:  uuid.New().String(),
		Type:    "smoke_signal",
		Title:   "t",
		Message: "m",
	})
	req := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateNotification(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
