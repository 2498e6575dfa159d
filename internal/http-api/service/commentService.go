package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

type CommentService interface {
	ListByAnswer(ctx context.Context, answerID uuid.UUID, page, pageSize int) ([]dto.CommentWithUser, int64, error)
	Create(ctx context.Context, answerID, userID uuid.UUID, content string) (*dto.CommentWithUser, error)
	Delete(ctx context.Context, commentID, userID uuid.UUID) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	answerRepo  repository.AnswerRepository
	userRepo    repository.UserRepository
	enricher    AnswerEnricher
	logger      *slog.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, answerRepo repository.AnswerRepository, userRepo repository.UserRepository, enricher AnswerEnricher, logger *slog.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		answerRepo:  answerRepo,
		userRepo:    userRepo,
		enricher:    enricher,
		logger:      logger,
	}
}

func (s *commentService) ListByAnswer(ctx context.Context, answerID uuid.UUID, page, pageSize int) ([]dto.CommentWithUser, int64, error) {
	offset := (page - 1) * pageSize
	comments, total, err := s.commentRepo.ListByAnswer(ctx, answerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	results, err := s.enricher.EnrichComments(ctx, comments)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Create comments on an active answer and bumps its comment_count. The
// bump is best-effort; the comment itself is the primary outcome.
func (s *commentService) Create(ctx context.Context, answerID, userID uuid.UUID, content string) (*dto.CommentWithUser, error) {
	if _, err := s.answerRepo.GetActiveByID(ctx, answerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Answer not found")
		}
		return nil, err
	}

	comment := &models.Comment{
		AnswerID: answerID,
		UserID:   userID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.answerRepo.AddCommentCount(ctx, answerID, 1); err != nil {
		s.logger.Warn("failed to bump comment count", "answer_id", answerID, "error", err)
	}

	result := dto.CommentWithUser{
		CommentResponse: dto.FromModelToCommentResponse(comment),
		User:            dto.UserSummary{ID: userID},
	}
	users, err := s.userRepo.GetByIDs(ctx, []uuid.UUID{userID})
	if err != nil || len(users) == 0 {
		// Comment stands even if the author summary can't be attached.
		s.logger.Warn("failed to load commenter summary", "user_id", userID, "error", err)
		return &result, nil
	}
	result.User = dto.FromModelToUserSummary(&users[0])
	return &result, nil
}

func (s *commentService) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := s.commentRepo.GetActiveByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Comment not found")
		}
		return err
	}
	if comment.UserID != userID {
		return forbidden("You can only delete your own comments")
	}

	if err := s.commentRepo.SoftDelete(ctx, commentID); err != nil {
		return err
	}

	if err := s.answerRepo.AddCommentCount(ctx, comment.AnswerID, -1); err != nil {
		s.logger.Warn("failed to decrement comment count", "answer_id", comment.AnswerID, "error", err)
	}
	return nil
}
