package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) (*models.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dto.UserSummary, int64, error)
	Following(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dto.UserSummary, int64, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID uuid.UUID) (*models.Follow, error) {
	if followerID == followingID {
		return nil, invalid("Cannot follow yourself")
	}

	if _, err := s.userRepo.GetActiveByID(ctx, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	created, err := s.followRepo.Create(ctx, follow)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, conflict("Already following")
	}
	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	removed, err := s.followRepo.Delete(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Follow relationship not found")
	}
	return nil
}

func (s *followService) Followers(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dto.UserSummary, int64, error) {
	offset := (page - 1) * pageSize
	users, total, err := s.followRepo.ListFollowers(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return toSummaries(users), total, nil
}

func (s *followService) Following(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dto.UserSummary, int64, error) {
	offset := (page - 1) * pageSize
	users, total, err := s.followRepo.ListFollowing(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return toSummaries(users), total, nil
}

func toSummaries(users []models.User) []dto.UserSummary {
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, dto.FromModelToUserSummary(&user))
	}
	return summaries
}
