package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

type LikeService interface {
	Like(ctx context.Context, answerID, userID uuid.UUID) (*models.Like, error)
	Unlike(ctx context.Context, answerID, userID uuid.UUID) error
}

type likeService struct {
	likeRepo   repository.LikeRepository
	answerRepo repository.AnswerRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

func NewLikeService(likeRepo repository.LikeRepository, answerRepo repository.AnswerRepository, userRepo repository.UserRepository, logger *slog.Logger) LikeService {
	return &likeService{
		likeRepo:   likeRepo,
		answerRepo: answerRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Like creates the (answer, user) edge and, only when the edge is new,
// bumps the answer's like_count and the author's total_likes. The
// counter deltas are best-effort relative increments; a repeat like
// never double-applies them.
func (s *likeService) Like(ctx context.Context, answerID, userID uuid.UUID) (*models.Like, error) {
	answer, err := s.answerRepo.GetActiveByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Answer not found")
		}
		return nil, err
	}

	like := &models.Like{AnswerID: answerID, UserID: userID}
	created, err := s.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, conflict("Already liked")
	}

	if err := s.answerRepo.AddLikeCount(ctx, answerID, 1); err != nil {
		s.logger.Warn("failed to bump like count", "answer_id", answerID, "error", err)
	}
	if err := s.userRepo.AddTotalLikes(ctx, answer.UserID, 1); err != nil {
		s.logger.Warn("failed to bump author total likes", "user_id", answer.UserID, "error", err)
	}
	return like, nil
}

// Unlike removes the edge and reverses both counters, floored at zero,
// only if an edge actually existed.
func (s *likeService) Unlike(ctx context.Context, answerID, userID uuid.UUID) error {
	answer, err := s.answerRepo.GetActiveByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Answer not found")
		}
		return err
	}

	removed, err := s.likeRepo.Delete(ctx, answerID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Like not found")
	}

	if err := s.answerRepo.AddLikeCount(ctx, answerID, -1); err != nil {
		s.logger.Warn("failed to decrement like count", "answer_id", answerID, "error", err)
	}
	if err := s.userRepo.AddTotalLikes(ctx, answer.UserID, -1); err != nil {
		s.logger.Warn("failed to decrement author total likes", "user_id", answer.UserID, "error", err)
	}
	return nil
}
