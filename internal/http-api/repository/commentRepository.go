package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	// ListByAnswer returns active comments oldest-first with the total
	// under the same predicate.
	ListByAnswer(ctx context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByAnswer(ctx context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("answer_id = ? AND status = ?", answerID, models.StatusActive).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err = r.db.WithContext(ctx).
		Where("answer_id = ? AND status = ?", answerID, models.StatusActive).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND status = ?", id, models.StatusActive).
		Update("status", models.StatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
