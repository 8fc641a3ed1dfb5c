package service

import (
	"context"
	"strings"

	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/repository"
)

// Identity is what the identity provider tells us about an account, either
// through session claims or a webhook event. Empty strings mean the provider
// supplied nothing.
type Identity struct {
	ID       string
	Email    string
	Name     string
	ImageURL string
}

type IdentityService interface {
	// Sync upserts the account row. Runs on every authenticated request
	// (sync-on-access) and on user.created/user.updated webhook events.
	Sync(ctx context.Context, id Identity) (*models.User, error)
	// Remove deletes the account row on a provider deletion event.
	Remove(ctx context.Context, userID string) error
}

type identityService struct {
	userRepo repository.UserRepository
}

func NewIdentityService(userRepo repository.UserRepository) IdentityService {
	return &identityService{userRepo: userRepo}
}

func (s *identityService) Sync(ctx context.Context, id Identity) (*models.User, error) {
	email := strings.TrimSpace(id.Email)
	if email == "" {
		// email is non-null here even when the provider omits it
		email = id.ID + "@placeholder.com"
	}

	user := &models.User{
		ID:       id.ID,
		Email:    email,
		Name:     optional(id.Name),
		ImageURL: optional(id.ImageURL),
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *identityService) Remove(ctx context.Context, userID string) error {
	return s.userRepo.Delete(ctx, userID)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
