package service

import (
	"context"
	"testing"

	"ratemyprompt/internal/cache"
	"ratemyprompt/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ratingKey struct {
	promptID string
	userID   string
}

// fakeRatingRepo keeps one rating per (prompt, user) pair, like the unique
// index does in Postgres.
type fakeRatingRepo struct {
	rows map[ratingKey]*models.Rating

	// raceOnCreate makes the next Create fail as a unique violation and
	// plant the winning row, simulating a concurrent first submission.
	raceOnCreate *models.Rating

	creates int
	updates int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{rows: map[ratingKey]*models.Rating{}}
}

func raterID(rating *models.Rating) string {
	if rating.UserID == nil {
		return ""
	}
	return *rating.UserID
}

func (f *fakeRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	key := ratingKey{rating.PromptID, raterID(rating)}
	if f.raceOnCreate != nil {
		f.rows[key] = f.raceOnCreate
		f.raceOnCreate = nil
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_ratings_prompt_user"}
	}
	if _, ok := f.rows[key]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_ratings_prompt_user"}
	}
	f.creates++
	f.rows[key] = rating
	return nil
}

func (f *fakeRatingRepo) Update(ctx context.Context, rating *models.Rating) error {
	f.updates++
	f.rows[ratingKey{rating.PromptID, raterID(rating)}] = rating
	return nil
}

func (f *fakeRatingRepo) GetByPromptAndUser(ctx context.Context, promptID, userID string) (*models.Rating, error) {
	if r, ok := f.rows[ratingKey{promptID, userID}]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRatingRepo) ListByPrompt(ctx context.Context, promptID string) ([]models.Rating, error) {
	var out []models.Rating
	for key, r := range f.rows {
		if key.promptID == promptID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) ListRecent(ctx context.Context, limit int) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.rows {
		if len(out) == limit {
			break
		}
		out = append(out, *r)
	}
	return out, nil
}

func newRatingServiceUnderTest(promptIDs ...string) (RatingService, *fakeRatingRepo) {
	prompts := make([]models.Prompt, 0, len(promptIDs))
	for _, id := range promptIDs {
		prompts = append(prompts, models.Prompt{ID: id, Title: id, Text: "body"})
	}
	repo := newFakeRatingRepo()
	svc := NewRatingService(repo, &fakePromptRepo{prompts: prompts}, cache.NewNoopCache())
	return svc, repo
}

func TestSubmit_RejectsOutOfRangeScore(t *testing.T) {
	svc, repo := newRatingServiceUnderTest("p1")

	for _, score := range []int{0, 6, -1, 100} {
		_, _, err := svc.Submit(context.Background(), "p1", "u1", "gpt-4o", score, nil)
		assert.ErrorIs(t, err, ErrInvalidScore, "score %d", score)
	}
	assert.Zero(t, repo.creates, "nothing is stored when validation fails")
	assert.Zero(t, repo.updates)
}

func TestSubmit_UnknownPrompt(t *testing.T) {
	svc, _ := newRatingServiceUnderTest("p1")

	_, _, err := svc.Submit(context.Background(), "missing", "u1", "gpt-4o", 4, nil)

	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestSubmit_FirstRatingCreates(t *testing.T) {
	svc, repo := newRatingServiceUnderTest("p1")

	rating, created, err := svc.Submit(context.Background(), "p1", "u1", "gpt-4o", 5, nil)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 5, rating.Score)
	assert.Equal(t, 1, repo.creates)
}

func TestSubmit_SecondRatingOverwrites(t *testing.T) {
	svc, repo := newRatingServiceUnderTest("p1")
	comment := "solid"

	_, created, err := svc.Submit(context.Background(), "p1", "u1", "gpt-4o", 2, nil)
	require.NoError(t, err)
	require.True(t, created)

	rating, created, err := svc.Submit(context.Background(), "p1", "u1", "claude-3-5-sonnet", 5, &comment)

	require.NoError(t, err)
	assert.False(t, created, "re-rating replaces, it never appends")
	assert.Equal(t, 5, rating.Score)
	assert.Equal(t, "claude-3-5-sonnet", rating.Llm, "llm is overwritten too, it is not part of the key")
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "solid", *rating.Comment)

	stored, err := repo.ListByPrompt(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, stored, 1, "one rating per user per prompt")
}

func TestSubmit_DistinctUsersDistinctRows(t *testing.T) {
	svc, repo := newRatingServiceUnderTest("p1")

	_, created, err := svc.Submit(context.Background(), "p1", "u1", "gpt-4o", 4, nil)
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = svc.Submit(context.Background(), "p1", "u2", "gpt-4o", 3, nil)
	require.NoError(t, err)
	assert.True(t, created)

	stored, err := repo.ListByPrompt(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSubmit_LostCreateRaceRetriesAsUpdate(t *testing.T) {
	svc, repo := newRatingServiceUnderTest("p1")
	winner := "u1"
	repo.raceOnCreate = &models.Rating{PromptID: "p1", UserID: &winner, Llm: "gpt-4o", Score: 3}

	rating, created, err := svc.Submit(context.Background(), "p1", "u1", "claude-3-5-sonnet", 5, nil)

	require.NoError(t, err)
	assert.False(t, created, "the loser of the race reports an overwrite")
	assert.Equal(t, 5, rating.Score)
	assert.Equal(t, "claude-3-5-sonnet", rating.Llm)
	assert.Equal(t, 1, repo.updates)

	stored, err := repo.ListByPrompt(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPromptAggregate_ComputedFromStoredRatings(t *testing.T) {
	svc, _ := newRatingServiceUnderTest("p1")

	_, _, err := svc.Submit(context.Background(), "p1", "u1", "gpt-4o", 5, nil)
	require.NoError(t, err)
	_, _, err = svc.Submit(context.Background(), "p1", "u2", "gpt-4o", 4, nil)
	require.NoError(t, err)

	summary, err := svc.PromptAggregate(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.Equal(t, 4.5, summary.Average)
}

func TestPromptAggregate_UnknownPrompt(t *testing.T) {
	svc, _ := newRatingServiceUnderTest()

	_, err := svc.PromptAggregate(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestListByPrompt_UnknownPrompt(t *testing.T) {
	svc, _ := newRatingServiceUnderTest("p1")

	_, err := svc.ListByPrompt(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPromptNotFound)
}
