package models

import (
	"time"

	"github.com/google/uuid"
)

// Like is a binary (answer, user) edge. The unique index makes duplicate
// likes impossible at the store level; handlers surface the duplicate as
// a conflict.
type Like struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnswerID  uuid.UUID `json:"answer_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_answer_user;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_answer_user"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Like) TableName() string {
	return "likes"
}
