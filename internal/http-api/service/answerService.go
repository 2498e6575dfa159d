package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

type AnswerService interface {
	ListByChallenge(ctx context.Context, challengeID uuid.UUID, viewerID *uuid.UUID, sort repository.Sort, page, pageSize int) ([]dto.AnswerView, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, viewerID *uuid.UUID, page, pageSize int) ([]dto.AnswerView, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dto.AnswerView, error)
	Create(ctx context.Context, challengeID, userID uuid.UUID, content string) (*dto.AnswerResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, content *string) (*dto.AnswerResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type answerService struct {
	answerRepo    repository.AnswerRepository
	challengeRepo repository.ChallengeRepository
	enricher      AnswerEnricher
	logger        *slog.Logger
}

func NewAnswerService(answerRepo repository.AnswerRepository, challengeRepo repository.ChallengeRepository, enricher AnswerEnricher, logger *slog.Logger) AnswerService {
	return &answerService{
		answerRepo:    answerRepo,
		challengeRepo: challengeRepo,
		enricher:      enricher,
		logger:        logger,
	}
}

func (s *answerService) ListByChallenge(ctx context.Context, challengeID uuid.UUID, viewerID *uuid.UUID, sort repository.Sort, page, pageSize int) ([]dto.AnswerView, int64, error) {
	offset := (page - 1) * pageSize
	filter := repository.AnswerFilter{ChallengeID: &challengeID}
	answers, total, err := s.answerRepo.List(ctx, filter, sort, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.enricher.EnrichAnswers(ctx, answers, viewerID, false)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *answerService) ListByUser(ctx context.Context, userID uuid.UUID, viewerID *uuid.UUID, page, pageSize int) ([]dto.AnswerView, int64, error) {
	offset := (page - 1) * pageSize
	filter := repository.AnswerFilter{UserID: &userID}
	answers, total, err := s.answerRepo.List(ctx, filter, repository.SortLatest, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.enricher.EnrichAnswers(ctx, answers, viewerID, true)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// GetByID serves the answer detail. Every view increments view_count,
// with no de-duplication of repeat views; the bump is best-effort and
// never fails the read.
func (s *answerService) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dto.AnswerView, error) {
	if err := s.answerRepo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to increment view count", "answer_id", id, "error", err)
	}

	answer, err := s.answerRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Answer not found")
		}
		return nil, err
	}

	views, err := s.enricher.EnrichAnswers(ctx, []models.Answer{*answer}, viewerID, true)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		// Author or challenge vanished under the detail read.
		return nil, errors.New("answer details unresolvable")
	}
	return &views[0], nil
}

func (s *answerService) Create(ctx context.Context, challengeID, userID uuid.UUID, content string) (*dto.AnswerResponse, error) {
	challenge, err := s.challengeRepo.GetActiveByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Challenge not found")
		}
		return nil, err
	}

	// Character limit counts runes, not bytes.
	if utf8.RuneCountInString(content) > challenge.CharLimit {
		return nil, invalid(fmt.Sprintf("Content exceeds %d character limit", challenge.CharLimit))
	}

	exists, err := s.answerRepo.HasActiveAnswer(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("You have already answered this challenge")
	}

	answer := &models.Answer{
		ChallengeID: challengeID,
		UserID:      userID,
		Content:     content,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}

	if err := s.challengeRepo.AddAnswerCount(ctx, challengeID, 1); err != nil {
		s.logger.Warn("failed to bump answer count", "challenge_id", challengeID, "error", err)
	}

	resp := dto.FromModelToAnswerResponse(answer)
	return &resp, nil
}

func (s *answerService) Update(ctx context.Context, id, userID uuid.UUID, content *string) (*dto.AnswerResponse, error) {
	answer, err := s.answerRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Answer not found")
		}
		return nil, err
	}
	if answer.UserID != userID {
		return nil, forbidden("You can only update your own answers")
	}

	if content != nil {
		answer.Content = *content
	}
	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}

	resp := dto.FromModelToAnswerResponse(answer)
	return &resp, nil
}

func (s *answerService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	answer, err := s.answerRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Answer not found")
		}
		return err
	}
	if answer.UserID != userID {
		return forbidden("You can only delete your own answers")
	}

	if err := s.answerRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	if err := s.challengeRepo.AddAnswerCount(ctx, answer.ChallengeID, -1); err != nil {
		s.logger.Warn("failed to decrement answer count", "challenge_id", answer.ChallengeID, "error", err)
	}
	return nil
}
