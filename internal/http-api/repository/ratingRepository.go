package repository

import (
	"context"
	"errors"

	"ratemyprompt/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	GetByPromptAndUser(ctx context.Context, promptID, userID string) (*models.Rating, error)
	ListByPrompt(ctx context.Context, promptID string) ([]models.Rating, error)
	ListRecent(ctx context.Context, limit int) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// Update an existing rating
func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

// GetByPromptAndUser retrieves a user's rating for a prompt. Keyed by the
// (prompt, user) pair only - the llm column is attribution, not identity.
func (r *ratingRepository) GetByPromptAndUser(ctx context.Context, promptID, userID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("prompt_id = ? AND user_id = ?", promptID, userID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByPrompt retrieves all ratings for a prompt, newest first, with the
// rating author attached.
func (r *ratingRepository) ListByPrompt(ctx context.Context, promptID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("prompt_id = ?", promptID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListRecent retrieves the latest ratings across all prompts for the activity
// feed.
func (r *ratingRepository) ListRecent(ctx context.Context, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Prompt").
		Order("created_at DESC").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The upsert path uses it to turn a lost create race on
// idx_ratings_prompt_user into an update.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
