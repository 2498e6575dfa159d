package models

import (
	"time"

	"github.com/google/uuid"
)

type Challenge struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryID  uuid.UUID  `json:"category_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	CharLimit   int        `json:"char_limit" gorm:"not null;default:30"`
	ReleaseDate *time.Time `json:"release_date,omitempty" gorm:"type:date;index"`
	AnswerCount int        `json:"answer_count" gorm:"not null;default:0"`
	Status      string     `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Association
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Challenge) TableName() string {
	return "challenges"
}
