package firebase

import (
	"context"
	"fmt"

	"admin-claims/internal/domain/claims"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// NewApp initializes the Firebase app from a resolved credential source.
func NewApp(ctx context.Context, src Source) (*firebase.App, error) {
	opt, err := src.ClientOption()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", claims.ErrSessionInit, err)
	}

	// If the credential names a project, pass it (the SDK otherwise has to
	// discover it from the environment).
	appCfg := &firebase.Config{}
	if pid := src.ProjectID(); pid != "" {
		appCfg.ProjectID = pid
	}

	app, err := firebase.NewApp(ctx, appCfg, opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", claims.ErrSessionInit, err)
	}
	return app, nil
}

// NewAuthClient returns the app's Auth client.
func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	c, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", claims.ErrSessionInit, err)
	}
	return c, nil
}
