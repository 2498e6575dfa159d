package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"quillhub/internal/http-api/models"
)

// CreateAnswerRequest for submitting an answer. The 200-rune cap is the
// schema ceiling; the per-challenge char limit is enforced in the
// service.
type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required,min=1,max=200"`
}

type UpdateAnswerRequest struct {
	Content *string `json:"content,omitempty" binding:"omitempty,min=1,max=200"`
}

type AnswerResponse struct {
	ID           uuid.UUID       `json:"id"`
	ChallengeID  uuid.UUID       `json:"challenge_id"`
	UserID       uuid.UUID       `json:"user_id"`
	Content      string          `json:"content"`
	Score        *int            `json:"score,omitempty"`
	AIFeedback   json.RawMessage `json:"ai_feedback,omitempty"`
	LikeCount    int             `json:"like_count"`
	CommentCount int             `json:"comment_count"`
	ViewCount    int             `json:"view_count"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromModelToAnswerResponse(answer *models.Answer) AnswerResponse {
	return AnswerResponse{
		ID:           answer.ID,
		ChallengeID:  answer.ChallengeID,
		UserID:       answer.UserID,
		Content:      answer.Content,
		Score:        answer.Score,
		AIFeedback:   answer.AIFeedback,
		LikeCount:    answer.LikeCount,
		CommentCount: answer.CommentCount,
		ViewCount:    answer.ViewCount,
		Status:       answer.Status,
		CreatedAt:    answer.CreatedAt,
		UpdatedAt:    answer.UpdatedAt,
	}
}

// AnswerView is the enriched composite served by every answer listing:
// the answer, its author's public summary, the viewer-relative is_liked
// flag, and (for views that need it) the parent challenge.
type AnswerView struct {
	AnswerResponse
	User      UserSummary        `json:"user"`
	Challenge *ChallengeResponse `json:"challenge,omitempty"`
	IsLiked   bool               `json:"is_liked"`
}
