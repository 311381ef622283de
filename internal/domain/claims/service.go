package claims

import (
	"context"
	"fmt"
	"log"
)

// UserStore is the identity backend as seen by the service.
// Implementations return errors wrapping ErrUserNotFound, ErrInvalidArgument
// or ErrBackend.
type UserStore interface {
	LookupUser(ctx context.Context, uid string) (*User, error)
	SetCustomClaims(ctx context.Context, uid string, claims Claims) error
}

// Mirror copies applied claims to a secondary store.
type Mirror interface {
	MirrorClaims(ctx context.Context, uid string, claims Claims) error
}

type Service struct {
	users  UserStore
	mirror Mirror
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// SetMirror enables mirroring of applied claims. A nil mirror disables it.
func (s *Service) SetMirror(m Mirror) {
	s.mirror = m
}

// ApplyAdminClaim sets isAdmin=true on the user, keeping every other claim.
func (s *Service) ApplyAdminClaim(ctx context.Context, uid string) (*Result, error) {
	return s.Apply(ctx, uid, Claims{AdminClaim: true})
}

// Apply merges update into the user's current custom claims.
// Nothing is written when the user does not exist.
func (s *Service) Apply(ctx context.Context, uid string, update Claims) (*Result, error) {
	if err := ValidateUID(uid); err != nil {
		return nil, err
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: claim update is empty", ErrInvalidArgument)
	}

	current, err := s.users.LookupUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	merged := current.CustomClaims.Merge(update)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.SetCustomClaims(ctx, uid, merged); err != nil {
		return nil, err
	}

	if s.mirror != nil {
		if err := s.mirror.MirrorClaims(ctx, uid, update); err != nil {
			log.Printf("warning: claims for %s applied but mirror failed: %v", uid, err)
		}
	}

	return &Result{UID: uid, Applied: merged}, nil
}

// Verify re-reads the user so the operator can confirm the claim set.
func (s *Service) Verify(ctx context.Context, res *Result) error {
	u, err := s.users.LookupUser(ctx, res.UID)
	if err != nil {
		return err
	}
	res.Verified = u
	return nil
}
