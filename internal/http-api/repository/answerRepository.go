package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quillhub/internal/http-api/models"
)

// Sort names the fixed ordering vocabulary for answer listings. There
// are no ad-hoc sort expressions; everything the API can order by is
// enumerated here.
type Sort string

const (
	SortLatest   Sort = "latest"
	SortPopular  Sort = "popular"
	SortTrending Sort = "trending"
)

// SortFromQuery maps a ?sort= parameter onto the vocabulary, falling
// back to latest for anything unrecognized.
func SortFromQuery(raw string) Sort {
	switch Sort(raw) {
	case SortPopular:
		return SortPopular
	case SortTrending:
		return SortTrending
	default:
		return SortLatest
	}
}

// OrderClause returns the SQL ordering for a sort. The trending score
// (likes + 2*comments + 0.1*views) is computed at query time from the
// counter snapshot, never persisted; ties break by recency.
func (s Sort) OrderClause() string {
	switch s {
	case SortPopular:
		return "answers.like_count DESC, answers.created_at DESC"
	case SortTrending:
		return "(answers.like_count + answers.comment_count * 2 + answers.view_count * 0.1) DESC, answers.created_at DESC"
	default:
		return "answers.created_at DESC"
	}
}

// AnswerFilter is the scope predicate for answer listings. The same
// filter drives both the total count and the page query, so the
// pagination envelope can never disagree with the page contents.
type AnswerFilter struct {
	ChallengeID *uuid.UUID
	UserID      *uuid.UUID
	// FollowerID restricts results to answers authored by accounts this
	// user follows (the following feed).
	FollowerID *uuid.UUID
	// Window keeps only answers created within the duration before now.
	// Zero means no time window.
	Window time.Duration
}

// Scope applies the filter to a query builder.
func (f AnswerFilter) Scope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("answers.status = ?", models.StatusActive)
		if f.ChallengeID != nil {
			db = db.Where("answers.challenge_id = ?", *f.ChallengeID)
		}
		if f.UserID != nil {
			db = db.Where("answers.user_id = ?", *f.UserID)
		}
		if f.FollowerID != nil {
			db = db.Joins("JOIN follows ON follows.following_id = answers.user_id").
				Where("follows.follower_id = ?", *f.FollowerID)
		}
		if f.Window > 0 {
			db = db.Where("answers.created_at > ?", now.Add(-f.Window))
		}
		return db
	}
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	Update(ctx context.Context, answer *models.Answer) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Answer, error)
	GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Answer, error)
	HasActiveAnswer(ctx context.Context, challengeID, userID uuid.UUID) (bool, error)
	List(ctx context.Context, filter AnswerFilter, sort Sort, limit, offset int) ([]models.Answer, int64, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	AddLikeCount(ctx context.Context, id uuid.UUID, delta int) error
	AddCommentCount(ctx context.Context, id uuid.UUID, delta int) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) Update(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Save(answer).Error
}

// SoftDelete flips the status; the row stays for audit and counter
// reconciliation.
func (r *answerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Answer{}).
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

func (r *answerRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Answer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var answers []models.Answer
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, models.StatusActive).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) HasActiveAnswer(ctx context.Context, challengeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("challenge_id = ? AND user_id = ? AND status = ?", challengeID, userID, models.StatusActive).
		Count(&count).Error
	return count > 0, err
}

// List returns one page of answers plus the total matching count. Count
// and page share the same filter scope so total/has_more always agree
// with the page predicate.
func (r *answerRepository) List(ctx context.Context, filter AnswerFilter, sort Sort, limit, offset int) ([]models.Answer, int64, error) {
	now := time.Now()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Scopes(filter.Scope(now)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var answers []models.Answer
	err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Scopes(filter.Scope(now)).
		Order(sort.OrderClause()).
		Limit(limit).
		Offset(offset).
		Find(&answers).Error
	if err != nil {
		return nil, 0, err
	}
	return answers, total, nil
}

func (r *answerRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("user_id = ? AND status = ?", userID, models.StatusActive).
		Count(&count).Error
	return count, err
}

// IncrementViewCount is a store-side relative bump; callers treat a
// failure as best-effort.
func (r *answerRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// AddLikeCount applies a relative delta floored at zero. Deltas are
// evaluated inside the store, never read-modify-write of a cached value.
func (r *answerRepository) AddLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta)).Error
}

func (r *answerRepository) AddCommentCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("GREATEST(comment_count + ?, 0)", delta)).Error
}
