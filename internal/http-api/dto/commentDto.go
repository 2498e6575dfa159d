package dto

import (
	"time"

	"github.com/google/uuid"

	"quillhub/internal/http-api/models"
)

// CreateCommentRequest for commenting on an answer
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	AnswerID  uuid.UUID `json:"answer_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		AnswerID:  comment.AnswerID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		Status:    comment.Status,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// CommentWithUser attaches the commenter's public summary.
type CommentWithUser struct {
	CommentResponse
	User UserSummary `json:"user"`
}
