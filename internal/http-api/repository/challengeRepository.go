package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
)

const challengeOrder = "release_date DESC NULLS LAST, created_at DESC"

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Challenge, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Challenge, error)
	List(ctx context.Context, limit, offset int) ([]models.Challenge, int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.Challenge, int64, error)
	// ListReleased returns the newest challenges whose release date has
	// arrived (or that have none), for the daily view.
	ListReleased(ctx context.Context, limit int) ([]models.Challenge, error)
	AddAnswerCount(ctx context.Context, id uuid.UUID, delta int) error
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *challengeRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Challenge, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var challenges []models.Challenge
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) List(ctx context.Context, limit, offset int) ([]models.Challenge, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&models.Challenge{}).
		Where("status = ?", models.StatusActive)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var challenges []models.Challenge
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order(challengeOrder).
		Limit(limit).
		Offset(offset).
		Find(&challenges).Error
	if err != nil {
		return nil, 0, err
	}
	return challenges, total, nil
}

func (r *challengeRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]models.Challenge, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Challenge{}).
		Where("category_id = ? AND status = ?", categoryID, models.StatusActive).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var challenges []models.Challenge
	err = r.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, models.StatusActive).
		Order(challengeOrder).
		Limit(limit).
		Offset(offset).
		Find(&challenges).Error
	if err != nil {
		return nil, 0, err
	}
	return challenges, total, nil
}

func (r *challengeRepository) ListReleased(ctx context.Context, limit int) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Where("release_date IS NULL OR release_date <= ?", time.Now()).
		Order(challengeOrder).
		Limit(limit).
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) AddAnswerCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&models.Challenge{}).
		Where("id = ?", id).
		UpdateColumn("answer_count", gorm.Expr("GREATEST(answer_count + ?, 0)", delta)).Error
}
