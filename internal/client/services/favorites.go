package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/NodEm9/myflix-client/internal/client/api"
	"github.com/NodEm9/myflix-client/internal/client/models"
	"github.com/NodEm9/myflix-client/internal/client/session"
	"github.com/NodEm9/myflix-client/internal/common"
	"github.com/NodEm9/myflix-client/internal/logging"
)

// FavoritesService coordinates favorite toggles: it decides between add and
// remove from the cached membership, calls the API, and reconciles the
// session store with the server's authoritative favorites set.
//
// At most one toggle may be in flight per movie id; a second attempt while
// the first is pending fails with common.ErrOperationInProgress.
type FavoritesService interface {
	// Toggle flips the favorite state of the movie and reports the state
	// after the server applied it.
	Toggle(ctx context.Context, movieID string) (bool, error)

	// Favorites returns the current user's favorite movies from the server.
	// Stale ids with no matching movie are simply absent from the result.
	Favorites(ctx context.Context) ([]models.Movie, error)
}

type favoritesService struct {
	client   api.Client
	sessions *session.Store
	notify   Notifier
	log      logging.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewFavoritesService(client api.Client, sessions *session.Store, notify Notifier, log logging.Logger) FavoritesService {
	return &favoritesService{
		client:   client,
		sessions: sessions,
		notify:   notify,
		log:      log,
		inflight: make(map[string]struct{}),
	}
}

// begin marks the movie id as in flight. Returns false when a toggle for the
// same id is already pending.
func (s *favoritesService) begin(movieID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, pending := s.inflight[movieID]; pending {
		return false
	}
	s.inflight[movieID] = struct{}{}
	return true
}

func (s *favoritesService) end(movieID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, movieID)
}

func (s *favoritesService) Toggle(ctx context.Context, movieID string) (bool, error) {
	if movieID == "" {
		return false, fmt.Errorf("%w: movie id is required", common.ErrValidation)
	}

	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, common.ErrNotAuthenticated
	}

	if !s.begin(movieID) {
		return false, fmt.Errorf("%w: movie %s", common.ErrOperationInProgress, movieID)
	}
	defer s.end(movieID)

	wasFavorite := sess.User.IsFavorite(movieID)

	var favorites []string
	if wasFavorite {
		favorites, err = s.client.RemoveFavorite(ctx, movieID)
	} else {
		favorites, err = s.client.AddFavorite(ctx, movieID)
	}
	if err != nil {
		// session store stays untouched on failure
		return false, fmt.Errorf("favorites update error: %w", err)
	}
	if favorites == nil {
		favorites = []string{}
	}

	// The server's set is authoritative; never union/diff locally.
	sess.User.FavoriteMovies = favorites
	if err := s.sessions.Save(ctx, sess.User, sess.Token); err != nil {
		return false, fmt.Errorf("session saving error: %w", err)
	}

	nowFavorite := sess.User.IsFavorite(movieID)
	s.log.Info(ctx, "favorites updated", "movie_id", movieID, "favorite", nowFavorite)
	if nowFavorite {
		s.notify.Notify("Added to favorites")
	} else {
		s.notify.Notify("Removed from favorites")
	}
	return nowFavorite, nil
}

func (s *favoritesService) Favorites(ctx context.Context) ([]models.Movie, error) {
	if _, err := s.sessions.CurrentUsername(ctx); err != nil {
		return nil, err
	}
	return s.client.FetchFavorites(ctx)
}
