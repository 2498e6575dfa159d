package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func answerViews(answers ...models.Answer) []dto.AnswerView {
	views := make([]dto.AnswerView, 0, len(answers))
	for _, answer := range answers {
		views = append(views, dto.AnswerView{
			AnswerResponse: dto.FromModelToAnswerResponse(&answer),
			User:           dto.UserSummary{ID: answer.UserID},
		})
	}
	return views
}

// --- MOCK REPOSITORIES ---

type MockAnswerRepo struct {
	mock.Mock
}

func (m *MockAnswerRepo) Create(ctx context.Context, answer *models.Answer) error {
	return m.Called(ctx, answer).Error(0)
}

func (m *MockAnswerRepo) Update(ctx context.Context, answer *models.Answer) error {
	return m.Called(ctx, answer).Error(0)
}

func (m *MockAnswerRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAnswerRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

func (m *MockAnswerRepo) GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Answer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Answer), args.Error(1)
}

func (m *MockAnswerRepo) HasActiveAnswer(ctx context.Context, challengeID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, challengeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnswerRepo) List(ctx context.Context, filter repository.AnswerFilter, sort repository.Sort, limit, offset int) ([]models.Answer, int64, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Answer), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnswerRepo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAnswerRepo) AddLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *MockAnswerRepo) AddCommentCount(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) AddTotalLikes(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type MockChallengeRepo struct {
	mock.Mock
}

func (m *MockChallengeRepo) Create(ctx context.Context, challenge *models.Challenge) error {
	return m.Called(ctx, challenge).Error(0)
}

func (m *MockChallengeRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Challenge, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Challenge), args.Error(1)
}

func (m *MockChallengeRepo) List(ctx context.Context, limit, offset int) ([]models.Challenge, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Challenge), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.Challenge, int64, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Challenge), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeRepo) ListReleased(ctx context.Context, limit int) ([]models.Challenge, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Challenge), args.Error(1)
}

func (m *MockChallengeRepo) AddAnswerCount(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) ListActive(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListByAnswer(ctx context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	args := m.Called(ctx, answerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) Create(ctx context.Context, like *models.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepo) Delete(ctx context.Context, answerID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, answerID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepo) LikedAnswerIDs(ctx context.Context, userID uuid.UUID, answerIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, answerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) Create(ctx context.Context, follow *models.Follow) (bool, error) {
	args := m.Called(ctx, follow)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

type MockEnricher struct {
	mock.Mock
}

func (m *MockEnricher) EnrichAnswers(ctx context.Context, answers []models.Answer, viewerID *uuid.UUID, withChallenge bool) ([]dto.AnswerView, error) {
	args := m.Called(ctx, answers, viewerID, withChallenge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AnswerView), args.Error(1)
}

func (m *MockEnricher) EnrichComments(ctx context.Context, comments []models.Comment) ([]dto.CommentWithUser, error) {
	args := m.Called(ctx, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentWithUser), args.Error(1)
}
