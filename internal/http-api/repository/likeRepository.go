package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quillhub/internal/http-api/models"
)

type LikeRepository interface {
	// Create inserts the (answer, user) edge. The unique index plus
	// ON CONFLICT DO NOTHING makes the insert race-safe; the returned
	// bool reports whether a new edge was actually created.
	Create(ctx context.Context, like *models.Like) (bool, error)
	// Delete removes the edge; the bool reports whether one existed.
	Delete(ctx context.Context, answerID, userID uuid.UUID) (bool, error)
	// LikedAnswerIDs filters the given answers down to those the user
	// has liked, for batch enrichment.
	LikedAnswerIDs(ctx context.Context, userID uuid.UUID, answerIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "answer_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, answerID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("answer_id = ? AND user_id = ?", answerID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) LikedAnswerIDs(ctx context.Context, userID uuid.UUID, answerIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(answerIDs))
	if len(answerIDs) == 0 {
		return liked, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND answer_id IN ?", userID, answerIDs).
		Pluck("answer_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
