package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChallengeID  uuid.UUID       `json:"challenge_id" gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Content      string          `json:"content" gorm:"size:200;not null"`
	Score        *int            `json:"score,omitempty"`
	AIFeedback   json.RawMessage `json:"ai_feedback,omitempty" gorm:"type:jsonb"`
	LikeCount    int             `json:"like_count" gorm:"not null;default:0"`
	CommentCount int             `json:"comment_count" gorm:"not null;default:0"`
	ViewCount    int             `json:"view_count" gorm:"not null;default:0"`
	Status       string          `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime;index:idx_answers_created,sort:desc"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Challenge Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
}

func (Answer) TableName() string {
	return "answers"
}
