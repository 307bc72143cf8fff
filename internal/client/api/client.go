// Package api translates domain operations into HTTP requests against the
// remote myFlix service and normalizes responses and errors.
package api

import (
	"context"

	"github.com/NodEm9/myflix-client/internal/client/models"
)

// SessionSource supplies the bearer token and the current username used in
// per-user endpoints. Implemented by the session store; operations that
// require auth fail fast with common.ErrNotAuthenticated when it is empty.
type SessionSource interface {
	Token(ctx context.Context) (string, error)
	CurrentUsername(ctx context.Context) (string, error)
}

// Client is the full wire surface of the backend. Every call issues exactly
// one HTTP request (or none, when the session precondition fails); there is
// no retrying and no request queueing.
type Client interface {
	Close() error

	// Account operations.
	Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error)
	Login(ctx context.Context, username, password string) (*models.UserProfile, string, error)
	FetchProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error)
	DeleteAccount(ctx context.Context) error
	ResetPassword(ctx context.Context, creds models.Credentials) (*models.UserProfile, error)

	// Catalog operations.
	FetchAllMovies(ctx context.Context) ([]models.Movie, error)
	FetchMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	FetchDirector(ctx context.Context, name string) (*models.Director, error)
	FetchGenre(ctx context.Context, name string) (*models.Genre, error)

	// Favorites operations. Add/Remove return the server's authoritative
	// favorites set; callers must never compute the set locally.
	AddFavorite(ctx context.Context, movieID string) ([]string, error)
	RemoveFavorite(ctx context.Context, movieID string) ([]string, error)
	FetchFavorites(ctx context.Context) ([]models.Movie, error)
}
