package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed (follower, following) edge between two users.
// Self-follows are rejected in the service layer.
type Follow struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FollowerID  uuid.UUID `json:"follower_id" gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index"`
	FollowingID uuid.UUID `json:"following_id" gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Follow) TableName() string {
	return "follows"
}
