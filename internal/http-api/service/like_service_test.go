package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
)

func TestLikeService_Like(t *testing.T) {
	answerID := uuid.New()
	authorID := uuid.New()
	likerID := uuid.New()
	answer := &models.Answer{ID: answerID, UserID: authorID, Status: models.StatusActive}

	t.Run("Success", func(t *testing.T) {
		likeRepo := new(MockLikeRepo)
		answerRepo := new(MockAnswerRepo)
		userRepo := new(MockUserRepo)
		svc := NewLikeService(likeRepo, answerRepo, userRepo, testLogger())

		answerRepo.On("GetActiveByID", mock.Anything, answerID).Return(answer, nil).Once()
		likeRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Like) bool {
			return l.AnswerID == answerID && l.UserID == likerID
		})).Return(true, nil).Once()
		answerRepo.On("AddLikeCount", mock.Anything, answerID, 1).Return(nil).Once()
		userRepo.On("AddTotalLikes", mock.Anything, authorID, 1).Return(nil).Once()

		like, err := svc.Like(context.Background(), answerID, likerID)
		assert.NoError(t, err)
		assert.Equal(t, answerID, like.AnswerID)
		likeRepo.AssertExpectations(t)
		answerRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("RepeatLikeNeverDoubleCounts", func(t *testing.T) {
		likeRepo := new(MockLikeRepo)
		answerRepo := new(MockAnswerRepo)
		userRepo := new(MockUserRepo)
		svc := NewLikeService(likeRepo, answerRepo, userRepo, testLogger())

		answerRepo.On("GetActiveByID", mock.Anything, answerID).Return(answer, nil).Once()
		likeRepo.On("Create", mock.Anything, mock.Anything).Return(false, nil).Once()

		_, err := svc.Like(context.Background(), answerID, likerID)
		assert.ErrorIs(t, err, ErrConflict)
		// The edge already existed, so no counter moves.
		answerRepo.AssertNotCalled(t, "AddLikeCount", mock.Anything, mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "AddTotalLikes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AnswerNotFound", func(t *testing.T) {
		answerRepo := new(MockAnswerRepo)
		svc := NewLikeService(new(MockLikeRepo), answerRepo, new(MockUserRepo), testLogger())

		answerRepo.On("GetActiveByID", mock.Anything, answerID).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Like(context.Background(), answerID, likerID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("CounterFailureDoesNotFailLike", func(t *testing.T) {
		likeRepo := new(MockLikeRepo)
		answerRepo := new(MockAnswerRepo)
		userRepo := new(MockUserRepo)
		svc := NewLikeService(likeRepo, answerRepo, userRepo, testLogger())

		answerRepo.On("GetActiveByID", mock.Anything, answerID).Return(answer, nil).Once()
		likeRepo.On("Create", mock.Anything, mock.Anything).Return(true, nil).Once()
		answerRepo.On("AddLikeCount", mock.Anything, answerID, 1).Return(errors.New("db down")).Once()
		userRepo.On("AddTotalLikes", mock.Anything, authorID, 1).Return(nil).Once()

		_, err := svc.Like(context.Background(), answerID, likerID)
		assert.NoError(t, err)
	})
}

func TestLikeService_Unlike(t *testing.T) {
	answerID := uuid.New()
	authorID := uuid.New()
	likerID := uuid.New()
	answer := &models.Answer{ID: answerID, UserID: authorID, Status: models.StatusActive}

	t.Run("Success", func(t *testing.T) {
		likeRepo := new(MockLikeRepo)
		answerRepo := new(MockAnswerRepo)
		userRepo := new(MockUserRepo)
		svc := NewLikeService(likeRepo, answerRepo, userRepo, testLogger())

		answerRepo.On("GetActiveByID", mock.Anything, answerID).Return(answer, nil).Once()
		likeRepo.On("Delete", mock.Anything, answerID, likerID).Return(true, nil).Once()
		answerRepo.On("AddLikeCount", mock.Anything, answerID, -1).Return(nil).Once()
		userRepo.On("AddTotalLikes", mock.Anything, authorID, -1).Return(nil).Once()

		err := svc.Unlike(context.Background(), answerID, likerID)
		assert.NoError(t, err)
		answerRepo.AssertExpectations(t)
	})

	t.Run("NoEdge", func(t *testing.T) {
		likeRepo := new(MockLikeRepo)
		answerRepo := new(MockAnswerRepo)
		userRepo := new(MockUserRepo)
		svc := NewLikeService(likeRepo, answerRepo, userRepo, testLogger())

		answerRepo.On("GetActiveByID", mock.Anything, answerID).Return(answer, nil).Once()
		likeRepo.On("Delete", mock.Anything, answerID, likerID).Return(false, nil).Once()

		err := svc.Unlike(context.Background(), answerID, likerID)
		assert.ErrorIs(t, err, ErrNotFound)
		answerRepo.AssertNotCalled(t, "AddLikeCount", mock.Anything, mock.Anything, mock.Anything)
	})
}
