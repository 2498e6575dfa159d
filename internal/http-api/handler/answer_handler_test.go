package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/handler"
	"quillhub/internal/http-api/middleware"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
	"quillhub/internal/http-api/service"
)

// --- MOCK SERVICES ---

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) ListByChallenge(ctx context.Context, challengeID uuid.UUID, viewerID *uuid.UUID, sort repository.Sort, page, pageSize int) ([]dto.AnswerView, int64, error) {
	args := m.Called(ctx, challengeID, viewerID, sort, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]dto.AnswerView), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnswerService) ListByUser(ctx context.Context, userID uuid.UUID, viewerID *uuid.UUID, page, pageSize int) ([]dto.AnswerView, int64, error) {
	args := m.Called(ctx, userID, viewerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]dto.AnswerView), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnswerService) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dto.AnswerView, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnswerView), args.Error(1)
}

func (m *MockAnswerService) Create(ctx context.Context, challengeID, userID uuid.UUID, content string) (*dto.AnswerResponse, error) {
	args := m.Called(ctx, challengeID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnswerResponse), args.Error(1)
}

func (m *MockAnswerService) Update(ctx context.Context, id, userID uuid.UUID, content *string) (*dto.AnswerResponse, error) {
	args := m.Called(ctx, id, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnswerResponse), args.Error(1)
}

func (m *MockAnswerService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Like(ctx context.Context, answerID, userID uuid.UUID) (*models.Like, error) {
	args := m.Called(ctx, answerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeService) Unlike(ctx context.Context, answerID, userID uuid.UUID) error {
	return m.Called(ctx, answerID, userID).Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByAnswer(ctx context.Context, answerID uuid.UUID, page, pageSize int) ([]dto.CommentWithUser, int64, error) {
	args := m.Called(ctx, answerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]dto.CommentWithUser), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) Create(ctx context.Context, answerID, userID uuid.UUID, content string) (*dto.CommentWithUser, error) {
	args := m.Called(ctx, answerID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentWithUser), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	return m.Called(ctx, commentID, userID).Error(0)
}

// --- SETUP ---

func setupAnswerRouter(answerSvc *MockAnswerService, likeSvc *MockLikeService, commentSvc *MockCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity(""))
	h := handler.NewAnswerHandler(answerSvc, likeSvc, commentSvc, 20, 100)
	h.RegisterRoutes(r.Group("/api/v1/answers"))
	return r
}

// --- TESTS ---

func TestAnswerHandler_Get(t *testing.T) {
	answerSvc := new(MockAnswerService)
	r := setupAnswerRouter(answerSvc, new(MockLikeService), new(MockCommentService))

	answerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		view := &dto.AnswerView{
			AnswerResponse: dto.AnswerResponse{ID: answerID, Content: "hello"},
			User:           dto.UserSummary{Name: "ana"},
			IsLiked:        true,
		}
		answerSvc.On("GetByID", mock.Anything, answerID, (*uuid.UUID)(nil)).Return(view, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/answers/"+answerID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "hello", data["content"])
		assert.Equal(t, true, data["is_liked"])
	})

	t.Run("BadID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/answers/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		missing := uuid.New()
		answerSvc.On("GetByID", mock.Anything, missing, (*uuid.UUID)(nil)).
			Return(nil, &service.Error{Kind: service.ErrNotFound, Message: "Answer not found"}).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/answers/"+missing.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnswerHandler_Like(t *testing.T) {
	answerID := uuid.New()
	viewerID := uuid.New()

	t.Run("AnonymousRejected", func(t *testing.T) {
		likeSvc := new(MockLikeService)
		r := setupAnswerRouter(new(MockAnswerService), likeSvc, new(MockCommentService))

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/answers/"+answerID.String()+"/like", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		likeSvc.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		likeSvc := new(MockLikeService)
		r := setupAnswerRouter(new(MockAnswerService), likeSvc, new(MockCommentService))

		likeSvc.On("Like", mock.Anything, answerID, viewerID).
			Return(&models.Like{AnswerID: answerID, UserID: viewerID}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/answers/"+answerID.String()+"/like", nil)
		req.Header.Set("X-User-ID", viewerID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		likeSvc.AssertExpectations(t)
	})

	t.Run("RepeatLikeConflicts", func(t *testing.T) {
		likeSvc := new(MockLikeService)
		r := setupAnswerRouter(new(MockAnswerService), likeSvc, new(MockCommentService))

		likeSvc.On("Like", mock.Anything, answerID, viewerID).
			Return(nil, &service.Error{Kind: service.ErrConflict, Message: "Already liked"}).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/answers/"+answerID.String()+"/like", nil)
		req.Header.Set("X-User-ID", viewerID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Already liked", response["error"])
	})
}

func TestAnswerHandler_CreateComment(t *testing.T) {
	answerID := uuid.New()
	viewerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		commentSvc := new(MockCommentService)
		r := setupAnswerRouter(new(MockAnswerService), new(MockLikeService), commentSvc)

		result := &dto.CommentWithUser{
			CommentResponse: dto.CommentResponse{ID: uuid.New(), AnswerID: answerID, Content: "nice"},
			User:            dto.UserSummary{ID: viewerID, Name: "ana"},
		}
		commentSvc.On("Create", mock.Anything, answerID, viewerID, "nice").Return(result, nil).Once()

		body, _ := json.Marshal(dto.CreateCommentRequest{Content: "nice"})
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/answers/"+answerID.String()+"/comments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", viewerID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		commentSvc.AssertExpectations(t)
	})

	t.Run("EmptyContentRejected", func(t *testing.T) {
		commentSvc := new(MockCommentService)
		r := setupAnswerRouter(new(MockAnswerService), new(MockLikeService), commentSvc)

		body := []byte(`{"content": ""}`)
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/answers/"+answerID.String()+"/comments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", viewerID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		commentSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAnswerHandler_Delete(t *testing.T) {
	answerID := uuid.New()
	viewerID := uuid.New()

	t.Run("NotOwner", func(t *testing.T) {
		answerSvc := new(MockAnswerService)
		r := setupAnswerRouter(answerSvc, new(MockLikeService), new(MockCommentService))

		answerSvc.On("Delete", mock.Anything, answerID, viewerID).
			Return(&service.Error{Kind: service.ErrForbidden, Message: "You can only delete your own answers"}).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/answers/"+answerID.String(), nil)
		req.Header.Set("X-User-ID", viewerID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		answerSvc := new(MockAnswerService)
		r := setupAnswerRouter(answerSvc, new(MockLikeService), new(MockCommentService))

		answerSvc.On("Delete", mock.Anything, answerID, viewerID).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/answers/"+answerID.String(), nil)
		req.Header.Set("X-User-ID", viewerID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
