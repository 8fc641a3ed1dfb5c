package service

import (
	"context"
	"errors"

	"ratemyprompt/internal/cache"
	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrInvalidScore = errors.New("score must be between 1 and 5")

const recentRatingsLimit = 50

type RatingService interface {
	// Submit creates or overwrites the caller's rating for a prompt.
	// created reports whether a new row was written (HTTP 201) or an
	// existing one replaced (HTTP 200).
	Submit(ctx context.Context, promptID, userID, llm string, score int, comment *string) (rating *models.Rating, created bool, err error)
	ListByPrompt(ctx context.Context, promptID string) ([]models.Rating, error)
	ListRecent(ctx context.Context) ([]models.Rating, error)
	PromptAggregate(ctx context.Context, promptID string) (RatingSummary, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	promptRepo repository.PromptRepository
	aggregates *cache.AggregateCache
}

func NewRatingService(ratingRepo repository.RatingRepository, promptRepo repository.PromptRepository, aggregates *cache.AggregateCache) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		promptRepo: promptRepo,
		aggregates: aggregates,
	}
}

// Submit enforces one rating per (user, prompt). All validation happens before
// any write; the lookup is keyed by the pair alone, so re-rating under a
// different llm overwrites the prior rating instead of adding a row. The
// check-then-act here is not atomic - when two first submissions race, the
// loser's insert trips the (prompt_id, user_id) unique index and is retried
// as an update.
func (s *ratingService) Submit(ctx context.Context, promptID, userID, llm string, score int, comment *string) (*models.Rating, bool, error) {
	if score < 1 || score > 5 {
		return nil, false, ErrInvalidScore
	}

	// Check if prompt exists
	exists, err := s.promptRepo.Exists(ctx, promptID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, ErrPromptNotFound
	}

	// Check if the user already rated this prompt
	existing, err := s.ratingRepo.GetByPromptAndUser(ctx, promptID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if existing != nil {
		if err := s.overwrite(ctx, existing, llm, score, comment); err != nil {
			return nil, false, err
		}
		s.invalidateAggregate(ctx, promptID)
		return existing, false, nil
	}

	rating := &models.Rating{
		PromptID: promptID,
		UserID:   &userID,
		Llm:      llm,
		Score:    score,
		Comment:  comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if !repository.IsUniqueViolation(err) {
			return nil, false, err
		}
		// Lost the race against a concurrent first submission by the
		// same user; the row exists now, so retry as an update.
		rating, err = s.ratingRepo.GetByPromptAndUser(ctx, promptID, userID)
		if err != nil {
			return nil, false, err
		}
		if err := s.overwrite(ctx, rating, llm, score, comment); err != nil {
			return nil, false, err
		}
		s.invalidateAggregate(ctx, promptID)
		return rating, false, nil
	}

	s.invalidateAggregate(ctx, promptID)
	return rating, true, nil
}

func (s *ratingService) overwrite(ctx context.Context, rating *models.Rating, llm string, score int, comment *string) error {
	rating.Llm = llm
	rating.Score = score
	rating.Comment = comment
	return s.ratingRepo.Update(ctx, rating)
}

func (s *ratingService) invalidateAggregate(ctx context.Context, promptID string) {
	// Best effort: a stale cache entry expires via TTL anyway, and the
	// submission itself already succeeded.
	_ = s.aggregates.Invalidate(ctx, promptID)
}

func (s *ratingService) ListByPrompt(ctx context.Context, promptID string) ([]models.Rating, error) {
	exists, err := s.promptRepo.Exists(ctx, promptID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPromptNotFound
	}
	return s.ratingRepo.ListByPrompt(ctx, promptID)
}

func (s *ratingService) ListRecent(ctx context.Context) ([]models.Rating, error) {
	return s.ratingRepo.ListRecent(ctx, recentRatingsLimit)
}

// PromptAggregate returns the prompt's rating summary, serving from the cache
// when possible and recomputing from a fresh snapshot on a miss.
func (s *ratingService) PromptAggregate(ctx context.Context, promptID string) (RatingSummary, error) {
	exists, err := s.promptRepo.Exists(ctx, promptID)
	if err != nil {
		return RatingSummary{}, err
	}
	if !exists {
		return RatingSummary{}, ErrPromptNotFound
	}

	if avg, count, ok := s.aggregates.Get(ctx, promptID); ok {
		return RatingSummary{Average: avg, Count: count}, nil
	}

	ratings, err := s.ratingRepo.ListByPrompt(ctx, promptID)
	if err != nil {
		return RatingSummary{}, err
	}

	summary := Aggregate(ratings)
	_ = s.aggregates.Set(ctx, promptID, summary.Average, summary.Count)
	return summary, nil
}
