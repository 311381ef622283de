// Package cli drives one claim update from configuration to operator report.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"admin-claims/internal/config"
	"admin-claims/internal/domain/claims"
	"admin-claims/internal/firebase"
)

type Stage int

const (
	StageStart Stage = iota
	StageCredentialResolved
	StageSessionInitialized
	StageClaimApplied
	StageVerified
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageCredentialResolved:
		return "credential-resolved"
	case StageSessionInitialized:
		return "session-initialized"
	case StageClaimApplied:
		return "claim-applied"
	case StageVerified:
		return "verified"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Session is an initialized connection to the identity backend.
type Session struct {
	Users  claims.UserStore
	Mirror claims.Mirror // optional
	Close  func()
}

// Connector initializes a session from a resolved credential.
type Connector func(ctx context.Context, src firebase.Source, cfg config.Config) (*Session, error)

// FirebaseConnector opens a session against Firebase.
func FirebaseConnector(ctx context.Context, src firebase.Source, cfg config.Config) (*Session, error) {
	c, err := firebase.NewClients(ctx, src, cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{Users: c.Users(), Close: c.Close}
	if c.Firestore != nil {
		s.Mirror = c.Firestore.ClaimsMirror(cfg.MirrorCollection)
	}
	return s, nil
}

type Options struct {
	Config  config.Config
	Connect Connector
	// Source skips credential resolution when set.
	Source firebase.Source
	Stat   firebase.StatFunc
	Out    io.Writer
	// SkipVerify disables the read-back of the user record.
	SkipVerify bool
	// UIDHint replaces the .env advice printed when no UID is configured.
	UIDHint string
}

// Outcome is the terminal state of a run.
type Outcome struct {
	Stage Stage
	// Reached is the last stage completed before Done or Failed.
	Reached Stage
	Err     error
	Result  *claims.Result
}

func (o Outcome) OK() bool { return o.Stage == StageDone }

// Run performs one admin claim update. Every step runs once; the first
// failure ends the run and is reported on opts.Out.
func Run(ctx context.Context, opts Options) Outcome {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.Connect == nil {
		opts.Connect = FirebaseConnector
	}
	uid := opts.Config.AdminUserUID
	oc := Outcome{Stage: StageStart, Reached: StageStart}

	fail := func(err error) Outcome {
		report(out, uid, opts.UIDHint, err)
		oc.Stage = StageFailed
		oc.Err = err
		return oc
	}

	if uid == "" {
		return fail(claims.ErrMissingUID)
	}

	src := opts.Source
	if src == nil {
		var err error
		if src, err = firebase.Resolve(opts.Config, opts.Stat); err != nil {
			return fail(err)
		}
	}
	fmt.Fprintln(out, src.Describe())
	oc.Reached = StageCredentialResolved

	sess, err := opts.Connect(ctx, src, opts.Config)
	if err != nil {
		if !claims.IsErrSessionInit(err) {
			err = fmt.Errorf("%w: %w", claims.ErrSessionInit, err)
		}
		return fail(err)
	}
	if sess.Close != nil {
		defer sess.Close()
	}
	fmt.Fprintln(out, "Firebase Admin SDK Initialized successfully.")
	oc.Reached = StageSessionInitialized

	svc := claims.NewService(sess.Users)
	if sess.Mirror != nil {
		svc.SetMirror(sess.Mirror)
	}

	fmt.Fprintf(out, "Attempting to set %s=true claim for user UID: %s\n", claims.AdminClaim, uid)
	res, err := svc.ApplyAdminClaim(ctx, uid)
	if err != nil {
		return fail(err)
	}
	oc.Result = res
	oc.Reached = StageClaimApplied
	fmt.Fprintf(out, "\nSUCCESS: Successfully set %s=true claim for user: %s\n", claims.AdminClaim, uid)
	fmt.Fprintln(out, "IMPORTANT: The user must sign out and sign back in for the claim to take effect.")

	if !opts.SkipVerify {
		if err := svc.Verify(ctx, res); err != nil {
			return fail(err)
		}
		fmt.Fprintf(out, "Verification - Current claims for user %s: %s\n", res.Verified.Email, res.Verified.CustomClaims)
		if !res.Verified.CustomClaims.IsAdmin() {
			fmt.Fprintf(out, "WARNING: %s is not reported as true yet; the change may still be propagating.\n", claims.AdminClaim)
		}
		oc.Reached = StageVerified
	}

	oc.Stage = StageDone
	return oc
}

func report(w io.Writer, uid, uidHint string, err error) {
	switch {
	case errors.Is(err, claims.ErrMissingUID) && uidHint != "":
		fmt.Fprintln(w, "ERROR: No target user UID given.")
		fmt.Fprintln(w, uidHint)
	case errors.Is(err, claims.ErrMissingUID):
		fmt.Fprintln(w, "ERROR: ADMIN_USER_UID not found in environment variables.")
		fmt.Fprintln(w, "Please set ADMIN_USER_UID in your .env file.")
	case errors.Is(err, claims.ErrCredentialMissing):
		fmt.Fprintln(w, "ERROR: No valid Firebase credentials found.")
		fmt.Fprintln(w, "Please either:")
		fmt.Fprintln(w, "1. Set all FIREBASE_ADMIN_* environment variables in your .env file")
		fmt.Fprintln(w, "2. Set FIREBASE_SERVICE_ACCOUNT_PATH to point to your service account JSON file")
	case claims.IsErrSessionInit(err):
		fmt.Fprintf(w, "\nERROR: Failed to initialize Firebase Admin SDK: %s\n", detail(err, claims.ErrSessionInit))
	case claims.IsErrUserNotFound(err):
		fmt.Fprintf(w, "\nERROR: User with UID '%s' not found in Firebase Authentication.\n", uid)
	case claims.IsErrInvalidArgument(err):
		fmt.Fprintf(w, "\nERROR: Invalid parameter - %s\n", detail(err, claims.ErrInvalidArgument))
	case claims.IsErrBackend(err):
		fmt.Fprintf(w, "\nERROR: %s\n", detail(err, claims.ErrBackend))
	default:
		fmt.Fprintf(w, "\nERROR: %v\n", err)
	}
}

// detail strips the leading "<sentinel>: " from err's message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
