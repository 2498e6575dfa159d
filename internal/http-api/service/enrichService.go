package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/models"
	"quillhub/internal/http-api/repository"
)

// AnswerEnricher turns a page of base answer rows into composite views:
// author summary, viewer-relative is_liked, and optionally the parent
// challenge. One routine serves every listing; callers choose which
// facets to attach.
type AnswerEnricher interface {
	EnrichAnswers(ctx context.Context, answers []models.Answer, viewerID *uuid.UUID, withChallenge bool) ([]dto.AnswerView, error)
	EnrichComments(ctx context.Context, comments []models.Comment) ([]dto.CommentWithUser, error)
}

type enrichService struct {
	userRepo      repository.UserRepository
	challengeRepo repository.ChallengeRepository
	likeRepo      repository.LikeRepository
	logger        *slog.Logger
}

func NewEnrichService(userRepo repository.UserRepository, challengeRepo repository.ChallengeRepository, likeRepo repository.LikeRepository, logger *slog.Logger) AnswerEnricher {
	return &enrichService{
		userRepo:      userRepo,
		challengeRepo: challengeRepo,
		likeRepo:      likeRepo,
		logger:        logger,
	}
}

// EnrichAnswers batch-loads the related rows for the page and assembles
// the views in the original order. An answer whose author (or, when
// requested, challenge) can no longer be resolved is dropped from the
// page rather than failing the request; callers rely on total/has_more,
// not item count. is_liked is false for anonymous viewers.
func (s *enrichService) EnrichAnswers(ctx context.Context, answers []models.Answer, viewerID *uuid.UUID, withChallenge bool) ([]dto.AnswerView, error) {
	if len(answers) == 0 {
		return []dto.AnswerView{}, nil
	}

	answerIDs := make([]uuid.UUID, 0, len(answers))
	userIDs := make([]uuid.UUID, 0, len(answers))
	challengeIDs := make([]uuid.UUID, 0, len(answers))
	seenUsers := make(map[uuid.UUID]bool, len(answers))
	seenChallenges := make(map[uuid.UUID]bool, len(answers))
	for _, answer := range answers {
		answerIDs = append(answerIDs, answer.ID)
		if !seenUsers[answer.UserID] {
			seenUsers[answer.UserID] = true
			userIDs = append(userIDs, answer.UserID)
		}
		if withChallenge && !seenChallenges[answer.ChallengeID] {
			seenChallenges[answer.ChallengeID] = true
			challengeIDs = append(challengeIDs, answer.ChallengeID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uuid.UUID]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	challengesByID := make(map[uuid.UUID]models.Challenge)
	if withChallenge {
		challenges, err := s.challengeRepo.GetByIDs(ctx, challengeIDs)
		if err != nil {
			return nil, err
		}
		for _, challenge := range challenges {
			challengesByID[challenge.ID] = challenge
		}
	}

	// The like lookup is viewer-relative decoration only; a failure
	// degrades to is_liked=false instead of failing the page.
	liked := map[uuid.UUID]bool{}
	if viewerID != nil {
		liked, err = s.likeRepo.LikedAnswerIDs(ctx, *viewerID, answerIDs)
		if err != nil {
			s.logger.Warn("like lookup failed during enrichment", "error", err)
			liked = map[uuid.UUID]bool{}
		}
	}

	views := make([]dto.AnswerView, 0, len(answers))
	for _, answer := range answers {
		user, ok := usersByID[answer.UserID]
		if !ok {
			continue
		}
		view := dto.AnswerView{
			AnswerResponse: dto.FromModelToAnswerResponse(&answer),
			User:           dto.FromModelToUserSummary(&user),
			IsLiked:        liked[answer.ID],
		}
		if withChallenge {
			challenge, ok := challengesByID[answer.ChallengeID]
			if !ok {
				continue
			}
			view.Challenge = dto.FromModelToChallengeResponse(&challenge)
		}
		views = append(views, view)
	}
	return views, nil
}

// EnrichComments attaches commenter summaries, dropping comments whose
// author is gone.
func (s *enrichService) EnrichComments(ctx context.Context, comments []models.Comment) ([]dto.CommentWithUser, error) {
	if len(comments) == 0 {
		return []dto.CommentWithUser{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(comments))
	seen := make(map[uuid.UUID]bool, len(comments))
	for _, comment := range comments {
		if !seen[comment.UserID] {
			seen[comment.UserID] = true
			userIDs = append(userIDs, comment.UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uuid.UUID]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	results := make([]dto.CommentWithUser, 0, len(comments))
	for _, comment := range comments {
		user, ok := usersByID[comment.UserID]
		if !ok {
			continue
		}
		results = append(results, dto.CommentWithUser{
			CommentResponse: dto.FromModelToCommentResponse(&comment),
			User:            dto.FromModelToUserSummary(&user),
		})
	}
	return results, nil
}
