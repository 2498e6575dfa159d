package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      *string   `json:"email,omitempty" gorm:"size:255;uniqueIndex"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Avatar     *string   `json:"avatar,omitempty" gorm:"size:500"`
	Bio        *string   `json:"bio,omitempty" gorm:"type:text"`
	TotalLikes int       `json:"total_likes" gorm:"not null;default:0"`
	Status     string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
