package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ratemyprompt/internal/http-api/models"

	"gorm.io/gorm"
)

type PromptRepository interface {
	Create(ctx context.Context, p *models.Prompt) error
	GetByID(ctx context.Context, id string) (*models.Prompt, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Prompt, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Prompt, error)
	ListCreatedSince(ctx context.Context, cutoff time.Time) ([]models.Prompt, error)
	Search(ctx context.Context, query string) ([]models.Prompt, error)
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

// withJoined preloads everything a discovery result carries: category, author
// summary and the full rating list (raters included, newest first).
func (r *promptRepository) withJoined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Author").
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Ratings.User")
}

func (r *promptRepository) Create(ctx context.Context, p *models.Prompt) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}
	// GORM will populate p.ID and p.CreatedAt
	return nil
}

func (r *promptRepository) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.withJoined(ctx).First(&p, "prompts.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Exists is the cheap prompt-presence check used before rating writes.
func (r *promptRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Prompt{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *promptRepository) List(ctx context.Context) ([]models.Prompt, error) {
	var list []models.Prompt
	if err := r.withJoined(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *promptRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.Prompt, error) {
	var list []models.Prompt
	err := r.withJoined(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListCreatedSince returns prompts created at or after cutoff, newest first.
// The boundary is inclusive - the trending window is "within the last N days",
// edge included.
func (r *promptRepository) ListCreatedSince(ctx context.Context, cutoff time.Time) ([]models.Prompt, error) {
	var list []models.Prompt
	err := r.withJoined(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// likeEscaper neutralizes LIKE metacharacters so user search text matches
// literally. Backslash is the default LIKE escape character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches the query as a case-insensitive substring of title or text,
// or as a case-sensitive exact element of the tag set. Tags live in a jsonb
// array, so exact-element match is a containment check.
func (r *promptRepository) Search(ctx context.Context, query string) ([]models.Prompt, error) {
	var list []models.Prompt

	needle := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	tagJSON, err := json.Marshal([]string{query})
	if err != nil {
		return nil, fmt.Errorf("encode tag query: %w", err)
	}

	err = r.withJoined(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(text) LIKE ? OR tags @> ?::jsonb", needle, needle, string(tagJSON)).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("search prompts: %w", err)
	}
	return list, nil
}
