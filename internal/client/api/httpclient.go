package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NodEm9/myflix-client/internal/client/models"
	"github.com/NodEm9/myflix-client/internal/logging"
)

// HTTPClient is the Client implementation over the backend's REST API.
// The bearer token and the username used in per-user paths always come from
// the injected SessionSource, never from a parameter, so every call reflects
// the session at the moment it is issued.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	sessions SessionSource
	log      logging.Logger
}

func NewHTTPClient(baseURL string, sessions SessionSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues one request and decodes a 2xx JSON response into out (which may
// be nil for empty results). Transport failures and non-2xx statuses are
// normalized into *RequestError. When authed is set, a missing session
// surfaces as common.ErrNotAuthenticated before any request is built.
func (c *HTTPClient) do(ctx context.Context, method, path string, authed bool, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if authed {
		token, err := c.sessions.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "transport failure", "error", err)
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "failed to read response body", "error", err)
		return &RequestError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn(ctx, "server returned error status", "status", resp.StatusCode)
		return &RequestError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// userPath builds "/users/<current username>" plus an optional suffix,
// escaping every path segment.
func (c *HTTPClient) userPath(ctx context.Context, suffix ...string) (string, error) {
	username, err := c.sessions.CurrentUsername(ctx)
	if err != nil {
		return "", err
	}
	parts := append([]string{"users", username}, suffix...)
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/" + strings.Join(parts, "/"), nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error) {
	var created models.UserProfile
	if err := c.do(ctx, http.MethodPost, "/users", false, reg, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type loginResponse struct {
	User  *models.UserProfile `json:"user"`
	Token string              `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.UserProfile, string, error) {
	body := models.Credentials{Username: username, Password: password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", false, body, &resp); err != nil {
		return nil, "", err
	}
	if resp.User == nil || resp.Token == "" {
		return nil, "", &RequestError{Message: "login response missing user or token"}
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users", true, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error) {
	path, err := c.userPath(ctx)
	if err != nil {
		return nil, err
	}
	var updated models.UserProfile
	if err := c.do(ctx, http.MethodPut, path, true, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	path, err := c.userPath(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, true, nil, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, creds models.Credentials) (*models.UserProfile, error) {
	var updated models.UserProfile
	if err := c.do(ctx, http.MethodPut, "/users/resetpassword", true, creds, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) FetchAllMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", true, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *HTTPClient) FetchMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie
	path := "/movies/" + url.PathEscape(title)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *HTTPClient) FetchDirector(ctx context.Context, name string) (*models.Director, error) {
	var director models.Director
	path := "/movies/director/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &director); err != nil {
		return nil, err
	}
	return &director, nil
}

func (c *HTTPClient) FetchGenre(ctx context.Context, name string) (*models.Genre, error) {
	var genre models.Genre
	path := "/movies/genre/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

// AddFavorite adds the movie to the current user's favorites. The server
// responds with the updated user record; only its favorites set is returned.
func (c *HTTPClient) AddFavorite(ctx context.Context, movieID string) ([]string, error) {
	path, err := c.userPath(ctx, "movies", movieID)
	if err != nil {
		return nil, err
	}
	var updated models.UserProfile
	if err := c.do(ctx, http.MethodPost, path, true, nil, &updated); err != nil {
		return nil, err
	}
	return updated.FavoriteMovies, nil
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, movieID string) ([]string, error) {
	path, err := c.userPath(ctx, "movies", movieID)
	if err != nil {
		return nil, err
	}
	var updated models.UserProfile
	if err := c.do(ctx, http.MethodDelete, path, true, nil, &updated); err != nil {
		return nil, err
	}
	return updated.FavoriteMovies, nil
}

func (c *HTTPClient) FetchFavorites(ctx context.Context) ([]models.Movie, error) {
	path, err := c.userPath(ctx, "movies", "favorites")
	if err != nil {
		return nil, err
	}
	var movies []models.Movie
	if err := c.do(ctx, http.MethodGet, path, true, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
