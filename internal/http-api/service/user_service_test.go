package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
)

func strPtr(s string) *string { return &s }

func TestUserService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, new(MockAnswerRepo), new(MockFollowRepo), testLogger())

		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "ana" && *u.Email == "ana@example.com"
		})).Return(nil).Once()

		user, err := svc.Create(context.Background(), dto.CreateUserRequest{
			Email: strPtr("ana@example.com"),
			Name:  "ana",
		})
		assert.NoError(t, err)
		assert.Equal(t, "ana", user.Name)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, new(MockAnswerRepo), new(MockFollowRepo), testLogger())

		userRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()

		_, err := svc.Create(context.Background(), dto.CreateUserRequest{
			Email: strPtr("ana@example.com"),
			Name:  "ana",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	userID := uuid.New()
	user := &models.User{ID: userID, Name: "ana", TotalLikes: 7, Status: models.StatusActive}

	t.Run("AnonymousViewer", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		answerRepo := new(MockAnswerRepo)
		followRepo := new(MockFollowRepo)
		svc := NewUserService(userRepo, answerRepo, followRepo, testLogger())

		userRepo.On("GetActiveByID", mock.Anything, userID).Return(user, nil).Once()
		answerRepo.On("CountActiveByUser", mock.Anything, userID).Return(int64(3), nil).Once()
		followRepo.On("CountFollowers", mock.Anything, userID).Return(int64(5), nil).Once()
		followRepo.On("CountFollowing", mock.Anything, userID).Return(int64(2), nil).Once()

		profile, err := svc.GetProfile(context.Background(), userID, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), profile.AnswerCount)
		assert.Equal(t, int64(5), profile.FollowerCount)
		assert.Equal(t, 7, profile.TotalLikes)
		assert.False(t, profile.IsFollowing)
		followRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ViewerFollows", func(t *testing.T) {
		viewerID := uuid.New()
		userRepo := new(MockUserRepo)
		answerRepo := new(MockAnswerRepo)
		followRepo := new(MockFollowRepo)
		svc := NewUserService(userRepo, answerRepo, followRepo, testLogger())

		userRepo.On("GetActiveByID", mock.Anything, userID).Return(user, nil).Once()
		answerRepo.On("CountActiveByUser", mock.Anything, userID).Return(int64(0), nil).Once()
		followRepo.On("CountFollowers", mock.Anything, userID).Return(int64(0), nil).Once()
		followRepo.On("CountFollowing", mock.Anything, userID).Return(int64(0), nil).Once()
		followRepo.On("Exists", mock.Anything, viewerID, userID).Return(true, nil).Once()

		profile, err := svc.GetProfile(context.Background(), userID, &viewerID)
		assert.NoError(t, err)
		assert.True(t, profile.IsFollowing)
	})

	t.Run("NotFound", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, new(MockAnswerRepo), new(MockFollowRepo), testLogger())

		userRepo.On("GetActiveByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.GetProfile(context.Background(), userID, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("OnlyOwnProfile", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepo), new(MockAnswerRepo), new(MockFollowRepo), testLogger())

		_, err := svc.Update(context.Background(), userID, uuid.New(), dto.UpdateUserRequest{Name: strPtr("eve")})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, new(MockAnswerRepo), new(MockFollowRepo), testLogger())

		existing := &models.User{ID: userID, Name: "ana", Bio: strPtr("old bio"), Status: models.StatusActive}
		userRepo.On("GetActiveByID", mock.Anything, userID).Return(existing, nil).Once()
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "ana banana" && *u.Bio == "old bio"
		})).Return(nil).Once()

		user, err := svc.Update(context.Background(), userID, userID, dto.UpdateUserRequest{Name: strPtr("ana banana")})
		assert.NoError(t, err)
		assert.Equal(t, "ana banana", user.Name)
	})
}
