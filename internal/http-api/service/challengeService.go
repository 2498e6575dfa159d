package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

const dailyChallengeLimit = 5

type ChallengeService interface {
	List(ctx context.Context, page, pageSize int) ([]dto.ChallengeResponse, int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page, pageSize int) ([]dto.ChallengeResponse, int64, error)
	Daily(ctx context.Context) ([]dto.ChallengeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ChallengeWithCategory, error)
	Create(ctx context.Context, req dto.CreateChallengeRequest) (*dto.ChallengeResponse, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	categoryRepo  repository.CategoryRepository
}

func NewChallengeService(challengeRepo repository.ChallengeRepository, categoryRepo repository.CategoryRepository) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		categoryRepo:  categoryRepo,
	}
}

func (s *challengeService) List(ctx context.Context, page, pageSize int) ([]dto.ChallengeResponse, int64, error) {
	offset := (page - 1) * pageSize
	challenges, total, err := s.challengeRepo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return toChallengeResponses(challenges), total, nil
}

func (s *challengeService) ListByCategory(ctx context.Context, categoryID uuid.UUID, page, pageSize int) ([]dto.ChallengeResponse, int64, error) {
	if _, err := s.categoryRepo.GetActiveByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, notFound("Category not found")
		}
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	challenges, total, err := s.challengeRepo.ListByCategory(ctx, categoryID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return toChallengeResponses(challenges), total, nil
}

// Daily serves today's prompt set: the newest released challenges,
// capped at a fixed count.
func (s *challengeService) Daily(ctx context.Context) ([]dto.ChallengeResponse, error) {
	challenges, err := s.challengeRepo.ListReleased(ctx, dailyChallengeLimit)
	if err != nil {
		return nil, err
	}
	return toChallengeResponses(challenges), nil
}

func (s *challengeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ChallengeWithCategory, error) {
	challenge, err := s.challengeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Challenge not found")
		}
		return nil, err
	}

	category, err := s.categoryRepo.GetActiveByID(ctx, challenge.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Category not found")
		}
		return nil, err
	}

	return &dto.ChallengeWithCategory{
		ChallengeResponse: *dto.FromModelToChallengeResponse(challenge),
		Category:          *category,
	}, nil
}

func (s *challengeService) Create(ctx context.Context, req dto.CreateChallengeRequest) (*dto.ChallengeResponse, error) {
	category, err := s.categoryRepo.GetActiveByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Category not found")
		}
		return nil, err
	}

	charLimit := category.CharLimit
	if req.CharLimit != nil {
		charLimit = *req.CharLimit
	}

	var releaseDate *time.Time
	if req.ReleaseDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, invalid("Invalid release date, expected YYYY-MM-DD")
		}
		releaseDate = &parsed
	}

	challenge := &models.Challenge{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		CharLimit:   charLimit,
		ReleaseDate: releaseDate,
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}
	return dto.FromModelToChallengeResponse(challenge), nil
}

func toChallengeResponses(challenges []models.Challenge) []dto.ChallengeResponse {
	responses := make([]dto.ChallengeResponse, 0, len(challenges))
	for _, challenge := range challenges {
		responses = append(responses, *dto.FromModelToChallengeResponse(&challenge))
	}
	return responses
}
