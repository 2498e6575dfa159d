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

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dto.UserProfile, error)
	Update(ctx context.Context, id, viewerID uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo   repository.UserRepository
	answerRepo repository.AnswerRepository
	followRepo repository.FollowRepository
	logger     *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, answerRepo repository.AnswerRepository, followRepo repository.FollowRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		answerRepo: answerRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &models.User{
		Email:  req.Email,
		Name:   req.Name,
		Avatar: req.Avatar,
		Bio:    req.Bio,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Email already exists")
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

// GetProfile assembles the public profile: stored fields plus live
// counts from the relationship tables and the viewer-relative
// is_following flag.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}

	answerCount, err := s.answerRepo.CountActiveByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != nil {
		isFollowing, err = s.followRepo.Exists(ctx, *viewerID, id)
		if err != nil {
			s.logger.Warn("follow lookup failed", "user_id", id, "error", err)
			isFollowing = false
		}
	}

	return &dto.UserProfile{
		ID:             user.ID,
		Name:           user.Name,
		Avatar:         user.Avatar,
		Bio:            user.Bio,
		TotalLikes:     user.TotalLikes,
		AnswerCount:    answerCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
	}, nil
}

func (s *userService) Update(ctx context.Context, id, viewerID uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if id != viewerID {
		return nil, forbidden("You can only update your own profile")
	}

	user, err := s.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}
