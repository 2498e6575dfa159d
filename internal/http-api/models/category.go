package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Icon        *string   `json:"icon,omitempty" gorm:"size:50"`
	Color       *string   `json:"color,omitempty" gorm:"size:50"`
	CharLimit   int       `json:"char_limit" gorm:"not null;default:30"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	Status      string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}
