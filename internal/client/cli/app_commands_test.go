package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NodEm9/myflix-client/internal/client/models"
)

// stubInputs replaces the interactive input seams with canned answers.
// Text prompts are answered in order from texts; the password and date are
// fixed. The returned func restores the originals.
func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP, origGD := getSimpleText, getPassword, getDate
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			t.Fatalf("unexpected text prompt #%d", i)
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	getDate = func(_ *bufio.Reader, _ string, _ io.Writer) (time.Time, bool, error) {
		return time.Time{}, false, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getDate = origGD
	})
}

// ---- fake services ----

type fakeAuthSvc struct {
	lastReg      models.Registration
	lastUsername string
	lastPassword string
	lastPatch    models.ProfilePatch
	lastNewPw    string

	profile *models.UserProfile
	err     error

	deleteCalled bool
	logoutCalled bool
}

func (f *fakeAuthSvc) Register(_ context.Context, reg models.Registration) error {
	f.lastReg = reg
	return f.err
}
func (f *fakeAuthSvc) Login(_ context.Context, username, password string) (*models.UserProfile, error) {
	f.lastUsername, f.lastPassword = username, password
	return f.profile, f.err
}
func (f *fakeAuthSvc) Logout(context.Context) error { f.logoutCalled = true; return f.err }
func (f *fakeAuthSvc) Profile(context.Context) (*models.UserProfile, error) {
	return f.profile, f.err
}
func (f *fakeAuthSvc) UpdateProfile(_ context.Context, patch models.ProfilePatch) (*models.UserProfile, error) {
	f.lastPatch = patch
	return f.profile, f.err
}
func (f *fakeAuthSvc) ResetPassword(_ context.Context, newPassword string) (*models.UserProfile, error) {
	f.lastNewPw = newPassword
	return f.profile, f.err
}
func (f *fakeAuthSvc) DeleteAccount(context.Context) error { f.deleteCalled = true; return f.err }
func (f *fakeAuthSvc) Close(context.Context) error         { return nil }

type fakeCatalogSvc struct {
	movies    []models.Movie
	movie     *models.Movie
	director  *models.Director
	genre     *models.Genre
	err       error
	lastQuery string
	lastTitle string

	invalidated bool
}

func (f *fakeCatalogSvc) Get(context.Context) ([]models.Movie, error) { return f.movies, f.err }
func (f *fakeCatalogSvc) Invalidate(context.Context) error {
	f.invalidated = true
	return f.err
}
func (f *fakeCatalogSvc) Search(_ context.Context, query string) ([]models.Movie, error) {
	f.lastQuery = query
	return f.movies, f.err
}
func (f *fakeCatalogSvc) MovieByTitle(_ context.Context, title string) (*models.Movie, error) {
	f.lastTitle = title
	return f.movie, f.err
}
func (f *fakeCatalogSvc) Director(_ context.Context, name string) (*models.Director, error) {
	return f.director, f.err
}
func (f *fakeCatalogSvc) Genre(_ context.Context, name string) (*models.Genre, error) {
	return f.genre, f.err
}

type fakeFavoritesSvc struct {
	lastMovieID string
	nowFavorite bool
	movies      []models.Movie
	err         error
}

func (f *fakeFavoritesSvc) Toggle(_ context.Context, movieID string) (bool, error) {
	f.lastMovieID = movieID
	return f.nowFavorite, f.err
}
func (f *fakeFavoritesSvc) Favorites(context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}

// ---- tests ----

func TestRegister_CollectsFields(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice", "alice@example.com"}, []byte("secret"))

	f := &fakeAuthSvc{}
	a := &App{auth: f}

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, "alice", f.lastReg.Username)
	require.Equal(t, "secret", f.lastReg.Password)
	require.Equal(t, "alice@example.com", f.lastReg.Email)
	require.True(t, f.lastReg.Birthday.IsZero())
}

func TestLogin_PassesCredentials(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice"}, []byte("secret"))

	f := &fakeAuthSvc{profile: &models.UserProfile{Username: "alice"}}
	a := &App{auth: f}

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "alice", f.lastUsername)
	require.Equal(t, "secret", f.lastPassword)
}

func TestLogin_ErrorPropagates(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice"}, []byte("bad"))

	f := &fakeAuthSvc{err: errors.New("denied")}
	a := &App{auth: f}

	require.Error(t, a.Login(context.Background()))
}

func TestToggleFavorite_UsesInlineArgument(t *testing.T) {
	silencePrintln(t)
	origST := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		t.Fatal("should not prompt when an id was given")
		return "", nil
	}
	t.Cleanup(func() { getSimpleText = origST })

	f := &fakeFavoritesSvc{nowFavorite: true}
	a := &App{favorites: f}

	require.NoError(t, a.ToggleFavorite(context.Background(), "m1"))
	require.Equal(t, "m1", f.lastMovieID)
}

func TestToggleFavorite_PromptsWithoutArgument(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"m7"}, nil)

	f := &fakeFavoritesSvc{}
	a := &App{favorites: f}

	require.NoError(t, a.ToggleFavorite(context.Background(), ""))
	require.Equal(t, "m7", f.lastMovieID)
}

func TestSearch_PassesQuery(t *testing.T) {
	silencePrintln(t)

	f := &fakeCatalogSvc{}
	a := &App{catalog: f, sessions: testSessions(t, "cli_search")}

	require.NoError(t, a.Search(context.Background(), "matrix"))
	require.Equal(t, "matrix", f.lastQuery)
}

func TestShow_PrintsFavoriteMarker(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	sessions := testSessions(t, "cli_show")
	seedSession(t, sessions, "m1")

	f := &fakeCatalogSvc{movie: &models.Movie{ID: "m1", Title: "Inception"}}
	a := &App{catalog: f, sessions: sessions}

	require.NoError(t, a.Show(context.Background(), "Inception"))
	require.Equal(t, "Inception", f.lastTitle)
	require.Contains(t, lines, "  (in your favorites)")
}

func TestRefresh_Invalidates(t *testing.T) {
	silencePrintln(t)

	f := &fakeCatalogSvc{}
	a := &App{catalog: f}

	require.NoError(t, a.Refresh(context.Background()))
	require.True(t, f.invalidated)
}

func TestDeleteAccount_RequiresConfirmation(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"no"}, nil)

	f := &fakeAuthSvc{}
	a := &App{auth: f}

	require.NoError(t, a.DeleteAccount(context.Background()))
	require.False(t, f.deleteCalled)
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"yes"}, nil)

	f := &fakeAuthSvc{}
	a := &App{auth: f}

	require.NoError(t, a.DeleteAccount(context.Background()))
	require.True(t, f.deleteCalled)
}

func TestEdit_NothingToUpdateSkipsRequest(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{""}, nil)

	f := &fakeAuthSvc{}
	a := &App{auth: f}

	require.NoError(t, a.Edit(context.Background()))
	require.Equal(t, models.ProfilePatch{}, f.lastPatch)
}

func TestEdit_SubmitsPatch(t *testing.T) {
	silencePrintln(t)
	origST, origGD := getSimpleText, getDate
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return "new@example.com", nil
	}
	birthday := time.Date(1991, 7, 2, 0, 0, 0, 0, time.UTC)
	getDate = func(_ *bufio.Reader, _ string, _ io.Writer) (time.Time, bool, error) {
		return birthday, true, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getDate = origGD
	})

	f := &fakeAuthSvc{profile: &models.UserProfile{Username: "alice"}}
	a := &App{auth: f}

	require.NoError(t, a.Edit(context.Background()))
	require.Equal(t, "new@example.com", f.lastPatch.Email)
	require.NotNil(t, f.lastPatch.Birthday)
	require.True(t, f.lastPatch.Birthday.Equal(birthday))
}

func TestResetPassword_SubmitsNewPassword(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, nil, []byte("n3w-pass"))

	f := &fakeAuthSvc{profile: &models.UserProfile{Username: "alice"}}
	a := &App{auth: f}

	require.NoError(t, a.ResetPassword(context.Background()))
	require.Equal(t, "n3w-pass", f.lastNewPw)
}

func TestMovies_MarksFavorites(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	sessions := testSessions(t, "cli_movies")
	seedSession(t, sessions, "m2")

	f := &fakeCatalogSvc{movies: []models.Movie{
		{ID: "m1", Title: "Inception"},
		{ID: "m2", Title: "Interstellar"},
	}}
	a := &App{catalog: f, sessions: sessions}

	require.NoError(t, a.Movies(context.Background()))
	require.Len(t, lines, 3)
	require.Equal(t, byte(' '), lines[0][0])
	require.Equal(t, byte('*'), lines[1][0])
}
