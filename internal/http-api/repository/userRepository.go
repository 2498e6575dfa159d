package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByIDs loads users regardless of status; enrichment decides what
	// to do with missing rows.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	AddTotalLikes(ctx context.Context, id uuid.UUID, delta int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AddTotalLikes keeps the denormalized per-author like total in step
// with like edge changes, floored at zero.
func (r *userRepository) AddTotalLikes(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("total_likes", gorm.Expr("GREATEST(total_likes + ?, 0)", delta)).Error
}
