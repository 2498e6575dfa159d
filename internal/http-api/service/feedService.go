package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quillhub/internal/cache"
	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

// Ranking windows. A zero window means no time cutoff.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodAllTime = "all-time"

	trendingWindow = 7 * 24 * time.Hour
)

type FeedService interface {
	Feed(ctx context.Context, viewerID *uuid.UUID, filter string, page, pageSize int) ([]dto.AnswerView, int64, error)
	Trending(ctx context.Context, viewerID *uuid.UUID, page, pageSize int) ([]dto.AnswerView, int64, error)
	Rankings(ctx context.Context, viewerID *uuid.UUID, period string, page, pageSize int) ([]dto.AnswerView, int64, error)
}

type feedService struct {
	answerRepo repository.AnswerRepository
	enricher   AnswerEnricher
	pageCache  *cache.RankingPageCache
	logger     *slog.Logger
}

func NewFeedService(answerRepo repository.AnswerRepository, enricher AnswerEnricher, pageCache *cache.RankingPageCache, logger *slog.Logger) FeedService {
	return &feedService{
		answerRepo: answerRepo,
		enricher:   enricher,
		pageCache:  pageCache,
		logger:     logger,
	}
}

// Feed returns the reverse-chronological answer stream. The
// "following" filter restricts it to authors the viewer follows and
// therefore requires an identified viewer; any other filter value
// falls back to the full stream.
func (s *feedService) Feed(ctx context.Context, viewerID *uuid.UUID, filter string, page, pageSize int) ([]dto.AnswerView, int64, error) {
	var answerFilter repository.AnswerFilter
	if filter == "following" {
		if viewerID == nil {
			return nil, 0, unauthorized("User ID required for following feed")
		}
		answerFilter.FollowerID = viewerID
	}

	offset := (page - 1) * pageSize
	answers, total, err := s.answerRepo.List(ctx, answerFilter, repository.SortLatest, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.enricher.EnrichAnswers(ctx, answers, viewerID, true)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// Trending ranks the last seven days of answers by engagement score.
func (s *feedService) Trending(ctx context.Context, viewerID *uuid.UUID, page, pageSize int) ([]dto.AnswerView, int64, error) {
	filter := repository.AnswerFilter{Window: trendingWindow}
	return s.cachedPage(ctx, "trending", filter, repository.SortTrending, viewerID, page, pageSize)
}

// Rankings orders answers by like count within the requested period.
func (s *feedService) Rankings(ctx context.Context, viewerID *uuid.UUID, period string, page, pageSize int) ([]dto.AnswerView, int64, error) {
	var window time.Duration
	switch period {
	case PeriodDaily:
		window = 24 * time.Hour
	case PeriodWeekly:
		window = 7 * 24 * time.Hour
	case PeriodAllTime:
		window = 0
	default:
		return nil, 0, invalid("Invalid ranking period")
	}

	filter := repository.AnswerFilter{Window: window}
	return s.cachedPage(ctx, "rankings:"+period, filter, repository.SortPopular, viewerID, page, pageSize)
}

// cachedPage serves a ranked page through the skeleton cache. Only the
// ordered IDs and the total are cached; rows and viewer-relative flags
// are re-resolved per request, so a cached page can thin out as
// answers are deleted but never shows stale is_liked state. Cache
// failures degrade to a direct query.
func (s *feedService) cachedPage(ctx context.Context, view string, filter repository.AnswerFilter, sort repository.Sort, viewerID *uuid.UUID, page, pageSize int) ([]dto.AnswerView, int64, error) {
	cached, err := s.pageCache.Get(ctx, view, page, pageSize)
	if err != nil {
		s.logger.Warn("ranking cache read failed", "view", view, "error", err)
	}
	if cached != nil {
		answers, err := s.answerRepo.GetActiveByIDs(ctx, cached.AnswerIDs)
		if err != nil {
			return nil, 0, err
		}
		views, err := s.enricher.EnrichAnswers(ctx, reorder(answers, cached.AnswerIDs), viewerID, true)
		if err != nil {
			return nil, 0, err
		}
		return views, cached.Total, nil
	}

	offset := (page - 1) * pageSize
	answers, total, err := s.answerRepo.List(ctx, filter, sort, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(answers))
	for _, answer := range answers {
		ids = append(ids, answer.ID)
	}
	if err := s.pageCache.Set(ctx, view, page, pageSize, cache.RankingPage{AnswerIDs: ids, Total: total}); err != nil {
		s.logger.Warn("ranking cache write failed", "view", view, "error", err)
	}

	views, err := s.enricher.EnrichAnswers(ctx, answers, viewerID, true)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// reorder restores the cached ranking order over an unordered batch
// load, dropping IDs whose rows no longer exist.
func reorder(answers []models.Answer, ids []uuid.UUID) []models.Answer {
	byID := make(map[uuid.UUID]models.Answer, len(answers))
	for _, answer := range answers {
		byID[answer.ID] = answer
	}
	ordered := make([]models.Answer, 0, len(ids))
	for _, id := range ids {
		if answer, ok := byID[id]; ok {
			ordered = append(ordered, answer)
		}
	}
	return ordered
}
