package firebase

import (
	"context"
	"fmt"

	"admin-claims/internal/domain/claims"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
)

// AuthStore exposes a Firebase Auth client as a claims.UserStore.
type AuthStore struct {
	client *auth.Client
}

// NewAuthStore wraps c.
func NewAuthStore(c *auth.Client) *AuthStore {
	return &AuthStore{client: c}
}

func (s *AuthStore) LookupUser(ctx context.Context, uid string) (*claims.User, error) {
	u, err := s.client.GetUser(ctx, uid)
	if err != nil {
		return nil, classifyAuthError(err)
	}
	return &claims.User{
		UID:          u.UID,
		Email:        u.Email,
		CustomClaims: u.CustomClaims,
	}, nil
}

// SetCustomClaims replaces the user's custom claims with c.
func (s *AuthStore) SetCustomClaims(ctx context.Context, uid string, c claims.Claims) error {
	if err := s.client.SetCustomUserClaims(ctx, uid, c); err != nil {
		return classifyAuthError(err)
	}
	return nil
}

func classifyAuthError(err error) error {
	switch {
	case err == nil:
		return nil
	case auth.IsUserNotFound(err):
		return fmt.Errorf("%w: %w", claims.ErrUserNotFound, err)
	case errorutils.IsInvalidArgument(err):
		return fmt.Errorf("%w: %w", claims.ErrInvalidArgument, err)
	default:
		return fmt.Errorf("%w: %w", claims.ErrBackend, err)
	}
}
