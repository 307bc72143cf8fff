package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NodEm9/myflix-client/internal/client/models"
	"github.com/NodEm9/myflix-client/internal/client/session"
	"github.com/NodEm9/myflix-client/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func setupDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS app_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM app_state;
`)
	require.NoError(t, err)
	return db
}

func setupStore(t *testing.T, name string) (*session.Store, *sql.DB) {
	t.Helper()
	db := setupDB(t, name)
	return session.NewStore(db, testLogger()), db
}

func seedSession(t *testing.T, store *session.Store, favorites ...string) *models.UserProfile {
	t.Helper()
	if favorites == nil {
		favorites = []string{}
	}
	user := &models.UserProfile{
		Username:       "alice",
		Email:          "alice@example.com",
		Birthday:       time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC),
		FavoriteMovies: favorites,
	}
	require.NoError(t, store.Save(context.Background(), user, "tok-123"))
	return user
}

// ---- fake collaborators ----

type fakeRouter struct {
	routes []Route
}

func (f *fakeRouter) Navigate(r Route) { f.routes = append(f.routes, r) }

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(msg string) { f.messages = append(f.messages, msg) }

// ---- fake API client ----

// fakeClient implements api.Client for service unit tests. Configure the
// *Ret/*Err fields per operation; Last* fields capture arguments. The *Fn
// hooks, when set, take precedence and allow blocking behavior.
type fakeClient struct {
	CloseErr error

	RegisterRet  *models.UserProfile
	RegisterErr  error
	LastRegister models.Registration

	LoginUserRet      *models.UserProfile
	LoginTokenRet     string
	LoginErr          error
	LastLoginUsername string
	LoginCalls        int

	ProfileRet *models.UserProfile
	ProfileErr error

	UpdateRet *models.UserProfile
	UpdateErr error
	LastPatch models.ProfilePatch

	DeleteErr   error
	DeleteCalls int

	ResetRet  *models.UserProfile
	ResetErr  error
	LastReset models.Credentials

	MoviesRet   []models.Movie
	MoviesErr   error
	MoviesCalls int

	MovieRet *models.Movie
	MovieErr error

	DirectorRet *models.Director
	DirectorErr error

	GenreRet *models.Genre
	GenreErr error

	AddFavoriteFn func(ctx context.Context, movieID string) ([]string, error)
	AddRet        []string
	AddErr        error
	AddCalls      int
	LastAddID     string

	RemoveFavoriteFn func(ctx context.Context, movieID string) ([]string, error)
	RemoveRet        []string
	RemoveErr        error
	RemoveCalls      int
	LastRemoveID     string

	FavoritesRet []models.Movie
	FavoritesErr error
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error) {
	f.LastRegister = reg
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.UserProfile, string, error) {
	f.LoginCalls++
	f.LastLoginUsername = username
	return f.LoginUserRet, f.LoginTokenRet, f.LoginErr
}

func (f *fakeClient) FetchProfile(ctx context.Context) (*models.UserProfile, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error) {
	f.LastPatch = patch
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context) error {
	f.DeleteCalls++
	return f.DeleteErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, creds models.Credentials) (*models.UserProfile, error) {
	f.LastReset = creds
	return f.ResetRet, f.ResetErr
}

func (f *fakeClient) FetchAllMovies(ctx context.Context) ([]models.Movie, error) {
	f.MoviesCalls++
	return f.MoviesRet, f.MoviesErr
}

func (f *fakeClient) FetchMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return f.MovieRet, f.MovieErr
}

func (f *fakeClient) FetchDirector(ctx context.Context, name string) (*models.Director, error) {
	return f.DirectorRet, f.DirectorErr
}

func (f *fakeClient) FetchGenre(ctx context.Context, name string) (*models.Genre, error) {
	return f.GenreRet, f.GenreErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, movieID string) ([]string, error) {
	f.AddCalls++
	f.LastAddID = movieID
	if f.AddFavoriteFn != nil {
		return f.AddFavoriteFn(ctx, movieID)
	}
	return f.AddRet, f.AddErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, movieID string) ([]string, error) {
	f.RemoveCalls++
	f.LastRemoveID = movieID
	if f.RemoveFavoriteFn != nil {
		return f.RemoveFavoriteFn(ctx, movieID)
	}
	return f.RemoveRet, f.RemoveErr
}

func (f *fakeClient) FetchFavorites(ctx context.Context) ([]models.Movie, error) {
	return f.FavoritesRet, f.FavoritesErr
}
