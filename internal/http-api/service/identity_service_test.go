package service

import (
	"context"
	"testing"

	"ratemyprompt/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Upsert(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func TestIdentitySync_UpsertsAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewIdentityService(repo)

	user, err := svc.Sync(context.Background(), Identity{
		ID:       "user_1",
		Email:    "dev@example.com",
		Name:     "Dev",
		ImageURL: "https://img.example.com/a.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", user.Email)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Dev", *user.Name)
	assert.Contains(t, repo.users, "user_1")
}

func TestIdentitySync_SynthesizesPlaceholderEmail(t *testing.T) {
	svc := NewIdentityService(newFakeUserRepo())

	user, err := svc.Sync(context.Background(), Identity{ID: "user_1"})

	require.NoError(t, err)
	assert.Equal(t, "user_1@placeholder.com", user.Email)
	assert.Nil(t, user.Name)
	assert.Nil(t, user.ImageURL)
}

func TestIdentityRemove_DeletesOnlyTheUserRow(t *testing.T) {
	userRepo := newFakeUserRepo()
	identity := NewIdentityService(userRepo)
	_, err := identity.Sync(context.Background(), Identity{ID: "user_1"})
	require.NoError(t, err)

	// The same user has rated a prompt. Account deletion goes through the
	// user repository alone; the rating row stays and the prompt's
	// aggregate is unchanged (attribution is NULLed by the schema, not
	// deleted by code).
	ratings, ratingRepo := newRatingServiceUnderTest("p1")
	_, _, err = ratings.Submit(context.Background(), "p1", "user_1", "gpt-4o", 5, nil)
	require.NoError(t, err)

	before, err := ratings.PromptAggregate(context.Background(), "p1")
	require.NoError(t, err)

	require.NoError(t, identity.Remove(context.Background(), "user_1"))

	_, err = userRepo.FindByID(context.Background(), "user_1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	stored, err := ratingRepo.ListByPrompt(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, stored, 1, "ratings survive the rater's deletion")

	after, err := ratings.PromptAggregate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
