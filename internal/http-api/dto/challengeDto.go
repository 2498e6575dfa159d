package dto

import (
	"time"

	"github.com/google/uuid"

	"quillhub/internal/http-api/models"
)

// CreateChallengeRequest for publishing a challenge. ReleaseDate is a
// calendar date ("2006-01-02"); parsing happens in the handler.
type CreateChallengeRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1"`
	Description *string   `json:"description,omitempty"`
	CharLimit   *int      `json:"char_limit,omitempty" binding:"omitempty,min=1"`
	ReleaseDate *string   `json:"release_date,omitempty"`
}

type ChallengeResponse struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	CharLimit   int        `json:"char_limit"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	AnswerCount int        `json:"answer_count"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromModelToChallengeResponse(challenge *models.Challenge) *ChallengeResponse {
	return &ChallengeResponse{
		ID:          challenge.ID,
		CategoryID:  challenge.CategoryID,
		Title:       challenge.Title,
		Description: challenge.Description,
		CharLimit:   challenge.CharLimit,
		ReleaseDate: challenge.ReleaseDate,
		AnswerCount: challenge.AnswerCount,
		Status:      challenge.Status,
		CreatedAt:   challenge.CreatedAt,
		UpdatedAt:   challenge.UpdatedAt,
	}
}

// ChallengeWithCategory is the challenge detail view.
type ChallengeWithCategory struct {
	ChallengeResponse
	Category models.Category `json:"category"`
}
