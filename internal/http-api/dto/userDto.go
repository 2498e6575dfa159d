package dto

import (
	"time"

	"github.com/google/uuid"

	"quillhub/internal/http-api/models"
)

// CreateUserRequest for registering a user
type CreateUserRequest struct {
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Name   string  `json:"name" binding:"required,min=1,max=100"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// UpdateUserRequest for editing one's own profile
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// UserSummary is the public author projection attached to answers and
// comments. Never carries email or bio.
type UserSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar *string   `json:"avatar,omitempty"`
}

func FromModelToUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:     user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
}

// UserProfile is the full public profile with live relationship counts.
type UserProfile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Avatar         *string   `json:"avatar,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	TotalLikes     int       `json:"total_likes"`
	AnswerCount    int64     `json:"answer_count"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
}

// UserResponse is returned from create/update, where the caller is the
// account owner and may see their own email.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      *string   `json:"email,omitempty"`
	Name       string    `json:"name"`
	Avatar     *string   `json:"avatar,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	TotalLikes int       `json:"total_likes"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Avatar:     user.Avatar,
		Bio:        user.Bio,
		TotalLikes: user.TotalLikes,
		Status:     user.Status,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
