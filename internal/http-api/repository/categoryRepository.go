package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]models.Category, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListActive returns every active category in manual order. Categories
// are few; no pagination.
func (r *categoryRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
