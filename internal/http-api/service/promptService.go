package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrPromptNotFound = errors.New("prompt not found")
	ErrMissingField   = errors.New("title and text are required")
)

// TrendingCategoryID is the reserved categoryId value that routes discovery to
// the trending ranker. Real category ids are UUIDs, so it cannot collide.
const TrendingCategoryID = "trending"

// DiscoveryView selects one discovery lens. CategoryID wins over Search when
// both are supplied - the dispatch order below is the documented rule.
type DiscoveryView struct {
	CategoryID string
	Search     string
}

// HomeView is the composed "All" page: a trending shelf plus capped category
// sections.
type HomeView struct {
	Trending []models.Prompt
	Sections []CategorySection
}

type PromptService interface {
	Create(ctx context.Context, p *models.Prompt) error
	GetByID(ctx context.Context, id string) (*models.Prompt, error)
	Discover(ctx context.Context, view DiscoveryView) ([]models.Prompt, error)
	Trending(ctx context.Context, now time.Time) ([]models.Prompt, error)
	Home(ctx context.Context, cap int) (*HomeView, error)
}

type promptService struct {
	promptRepo     repository.PromptRepository
	categoryRepo   repository.CategoryRepository
	trendingWindow time.Duration
}

func NewPromptService(promptRepo repository.PromptRepository, categoryRepo repository.CategoryRepository, trendingWindow time.Duration) PromptService {
	return &promptService{
		promptRepo:     promptRepo,
		categoryRepo:   categoryRepo,
		trendingWindow: trendingWindow, // 7 days
	}
}

// Create stores a new prompt. Prompts are write-once: there is no update or
// delete path.
func (s *promptService) Create(ctx context.Context, p *models.Prompt) error {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Text) == "" {
		return ErrMissingField
	}
	p.Title = strings.TrimSpace(p.Title)
	return s.promptRepo.Create(ctx, p)
}

func (s *promptService) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	p, err := s.promptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	return p, nil
}

// Discover dispatches a requested view to a selection and ordering.
// Priority order:
//  1. the reserved trending lens (any search text is ignored)
//  2. a category filter (wins over a simultaneously supplied search)
//  3. free-text search
//  4. everything, newest first
func (s *promptService) Discover(ctx context.Context, view DiscoveryView) ([]models.Prompt, error) {
	search := strings.TrimSpace(view.Search)

	switch {
	case view.CategoryID == TrendingCategoryID:
		return s.Trending(ctx, time.Now())
	case view.CategoryID != "":
		return s.promptRepo.ListByCategory(ctx, view.CategoryID)
	case search != "":
		return s.promptRepo.Search(ctx, search)
	default:
		return s.promptRepo.List(ctx)
	}
}

// Trending returns prompts created within the sliding window, ranked by
// rating count. Recomputed on every call - nothing is precomputed or cached.
// An empty window yields an empty slice, never an error.
func (s *promptService) Trending(ctx context.Context, now time.Time) ([]models.Prompt, error) {
	cutoff := now.Add(-s.trendingWindow)
	prompts, err := s.promptRepo.ListCreatedSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	rankByRatings(prompts)
	return prompts, nil
}

// rankByRatings orders prompts by rating count descending. Ties break
// newest-first; the stable sort keeps the repository's newest-first order for
// prompts with equal count and equal timestamp.
func rankByRatings(prompts []models.Prompt) {
	sort.SliceStable(prompts, func(i, j int) bool {
		if len(prompts[i].Ratings) != len(prompts[j].Ratings) {
			return len(prompts[i].Ratings) > len(prompts[j].Ratings)
		}
		return prompts[i].CreatedAt.After(prompts[j].CreatedAt)
	})
}

// Home builds the sectioned homepage: the trending shelf plus per-category
// sections partitioned from the full newest-first listing.
func (s *promptService) Home(ctx context.Context, cap int) (*HomeView, error) {
	trending, err := s.Trending(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	prompts, err := s.promptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &HomeView{
		Trending: trending,
		Sections: PartitionByCategory(prompts, categories, cap),
	}, nil
}
