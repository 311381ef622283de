package firebase

import (
	"context"

	"admin-claims/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// Clients bundles the Firebase clients used for one claim update.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *Firestore // nil unless mirroring is configured

	ProjectID string
}

// NewClients opens the app, the Auth client and, when mirroring is
// configured, Firestore. Errors wrap claims.ErrSessionInit.
func NewClients(ctx context.Context, src Source, cfg config.Config) (*Clients, error) {
	app, err := NewApp(ctx, src)
	if err != nil {
		return nil, err
	}

	authClient, err := NewAuthClient(ctx, app)
	if err != nil {
		return nil, err
	}

	c := &Clients{
		App:       app,
		Auth:      authClient,
		ProjectID: src.ProjectID(),
	}

	if cfg.MirrorCollection != "" {
		fs, err := NewFirestore(ctx, app)
		if err != nil {
			return nil, err
		}
		c.Firestore = fs
	}

	return c, nil
}

// Users returns the Auth client as a claims.UserStore.
func (c *Clients) Users() *AuthStore {
	return NewAuthStore(c.Auth)
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	c.Firestore.Close()
}
