package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quillhub/internal/http-api/models"
)

type FollowRepository interface {
	// Create inserts the directed edge; the bool reports whether it was
	// newly created (false means it already existed).
	Create(ctx context.Context, follow *models.Follow) (bool, error)
	Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
	// ListFollowers pages the active users following userID, most recent
	// edge first, with the total edge count.
	ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(follow)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	err = r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ? AND users.status = ?", userID, models.StatusActive).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	err = r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ? AND users.status = ?", userID, models.StatusActive).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
