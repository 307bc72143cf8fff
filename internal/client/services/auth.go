package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NodEm9/myflix-client/internal/client/api"
	"github.com/NodEm9/myflix-client/internal/client/models"
	"github.com/NodEm9/myflix-client/internal/client/session"
	"github.com/NodEm9/myflix-client/internal/common"
	"github.com/NodEm9/myflix-client/internal/logging"
)

// AuthService defines account and session operations for the client.
//
// Contract:
//   - Register: create a new account on the server; no session is created.
//   - Login: authenticate, persist the session, navigate to the movie list.
//   - Logout: clear the local session, navigate to the welcome screen.
//   - Profile/UpdateProfile/ResetPassword/DeleteAccount: operate on the
//     signed-in user; they fail with common.ErrNotAuthenticated when no
//     session exists, before any request is sent.
//   - Close: release underlying client resources.
//
// The session store is mutated only after the server reports success;
// a failed operation leaves it untouched.
type AuthService interface {
	Register(ctx context.Context, reg models.Registration) error
	Login(ctx context.Context, username, password string) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error)
	ResetPassword(ctx context.Context, newPassword string) (*models.UserProfile, error)
	DeleteAccount(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   api.Client
	sessions *session.Store
	router   Router
	notify   Notifier
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store, and UI collaborators.
func NewAuthService(client api.Client, sessions *session.Store, router Router, notify Notifier, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, router: router, notify: notify, log: log}
}

// Register creates a new account. The server validates the profile fields;
// the client only rejects blank credentials to avoid a pointless round trip.
func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	if strings.TrimSpace(reg.Username) == "" || reg.Password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	created, err := a.client.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	a.log.Info(ctx, "account created", "username", created.Username)
	a.notify.Notify(fmt.Sprintf("Account %s created, please log in", created.Username))
	a.router.Navigate(RouteLogin)
	return nil
}

// Login authenticates against the server and persists {user, token} as the
// new session, replacing any previous one.
func (a *authService) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	user, token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Save(ctx, user, token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "username", user.Username)
	a.notify.Notify(fmt.Sprintf("Welcome back, %s", user.Username))
	a.router.Navigate(RouteMovies)
	return user, nil
}

// Logout clears the persisted session. It is a purely local operation;
// the bearer token simply stops being presented.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}

	a.notify.Notify("Logged out")
	a.router.Navigate(RouteWelcome)
	return nil
}

// Profile returns the server's current user record and refreshes the cached
// copy in the session store.
func (a *authService) Profile(ctx context.Context) (*models.UserProfile, error) {
	sess, err := a.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	user, err := a.client.FetchProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile fetch error: %w", err)
	}

	if err := a.sessions.Save(ctx, user, sess.Token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial edit and stores the server's updated record
// under the existing token.
func (a *authService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error) {
	sess, err := a.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := a.client.UpdateProfile(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("profile update error: %w", err)
	}

	if err := a.sessions.Save(ctx, updated, sess.Token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.notify.Notify("Profile updated")
	return updated, nil
}

// ResetPassword sets a new password for the signed-in user.
func (a *authService) ResetPassword(ctx context.Context, newPassword string) (*models.UserProfile, error) {
	if newPassword == "" {
		return nil, fmt.Errorf("%w: new password is required", common.ErrValidation)
	}

	sess, err := a.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	creds := models.Credentials{Username: sess.User.Username, Password: newPassword}
	updated, err := a.client.ResetPassword(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("password reset error: %w", err)
	}

	if err := a.sessions.Save(ctx, updated, sess.Token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.notify.Notify("Password updated")
	return updated, nil
}

// DeleteAccount removes the account on the server, then clears the local
// session. The session stays intact when the server call fails.
func (a *authService) DeleteAccount(ctx context.Context) error {
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}

	if err := a.client.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("account deletion error: %w", err)
	}

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}

	a.notify.Notify("Account deleted")
	a.router.Navigate(RouteWelcome)
	return nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) requireSession(ctx context.Context) (*session.Session, error) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, common.ErrNotAuthenticated
	}
	return sess, nil
}
