// Package claimstest provides in-memory fakes for the claims service.
package claimstest

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"admin-claims/internal/domain/claims"
)

// Store is an in-memory claims.UserStore.
type Store struct {
	mu    sync.Mutex
	users map[string]*claims.User

	// Calls records "lookup:<uid>" and "set:<uid>" in order.
	Calls []string

	LookupErr error
	SetErr    error
}

func NewStore(users ...claims.User) *Store {
	s := &Store{users: map[string]*claims.User{}}
	for _, u := range users {
		u.CustomClaims = maps.Clone(u.CustomClaims)
		s.users[u.UID] = &u
	}
	return s
}

func (s *Store) LookupUser(_ context.Context, uid string) (*claims.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "lookup:"+uid)

	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	u, ok := s.users[uid]
	if !ok {
		return nil, fmt.Errorf("%w: no user record found for uid %q", claims.ErrUserNotFound, uid)
	}
	cp := *u
	cp.CustomClaims = maps.Clone(u.CustomClaims)
	return &cp, nil
}

// SetCustomClaims replaces the claim set, like the real backend does.
func (s *Store) SetCustomClaims(_ context.Context, uid string, c claims.Claims) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "set:"+uid)

	if s.SetErr != nil {
		return s.SetErr
	}
	u, ok := s.users[uid]
	if !ok {
		return fmt.Errorf("%w: no user record found for uid %q", claims.ErrUserNotFound, uid)
	}
	u.CustomClaims = maps.Clone(c)
	return nil
}

// Claims returns the stored claim set for uid.
func (s *Store) Claims(uid string) claims.Claims {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[uid]; ok {
		return maps.Clone(u.CustomClaims)
	}
	return nil
}

// Mirror records mirrored claims.
type Mirror struct {
	Docs map[string]claims.Claims
	Err  error
}

func (m *Mirror) MirrorClaims(_ context.Context, uid string, c claims.Claims) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Docs == nil {
		m.Docs = map[string]claims.Claims{}
	}
	m.Docs[uid] = m.Docs[uid].Merge(c)
	return nil
}
