package service

import (
	"context"

	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/repository"
)

// CategoryWithCount pairs a category with the number of prompts filed under
// it.
type CategoryWithCount struct {
	models.Category
	PromptCount int64 `json:"prompt_count"`
}

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetAllWithCounts(ctx context.Context) ([]CategoryWithCount, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(r repository.CategoryRepository) CategoryService {
	return &categoryService{repo: r}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetAllWithCounts(ctx context.Context) ([]CategoryWithCount, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		count, err := s.repo.CountPrompts(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryWithCount{Category: c, PromptCount: count})
	}
	return out, nil
}
