package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/NodEm9/myflix-client/internal/client/api"
	"github.com/NodEm9/myflix-client/internal/client/models"
	"github.com/NodEm9/myflix-client/internal/client/repositories/state"
	"github.com/NodEm9/myflix-client/internal/logging"
)

// CatalogService owns the movie catalog cache. The catalog is fetched in full
// once per session, kept in memory, and persisted under the "movies" key so a
// restart within the same session does not refetch. Only Invalidate forces a
// refetch.
type CatalogService interface {
	Get(ctx context.Context) ([]models.Movie, error)
	Invalidate(ctx context.Context) error
	Search(ctx context.Context, query string) ([]models.Movie, error)
	MovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	Director(ctx context.Context, name string) (*models.Director, error)
	Genre(ctx context.Context, name string) (*models.Genre, error)
}

type catalogService struct {
	client    api.Client
	stateRepo state.Repository
	log       logging.Logger

	mu     sync.Mutex
	movies []models.Movie // nil until first load
}

func NewCatalogService(client api.Client, stateRepo state.Repository, log logging.Logger) CatalogService {
	return &catalogService{client: client, stateRepo: stateRepo, log: log}
}

// Get returns the catalog in server order: from memory when populated,
// otherwise from the persisted snapshot, otherwise from the server (in which
// case the snapshot is written).
func (s *catalogService) Get(ctx context.Context) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.movies != nil {
		return s.movies, nil
	}

	snapshot, err := s.stateRepo.Get(ctx, "movies")
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		var movies []models.Movie
		if err := json.Unmarshal(snapshot, &movies); err == nil {
			s.movies = movies
			return s.movies, nil
		}
		// unreadable snapshot: drop it and fall through to a fresh fetch
		s.log.Warn(ctx, "discarding unreadable catalog snapshot")
		_ = s.stateRepo.Delete(ctx, "movies")
	}

	movies, err := s.client.FetchAllMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch error: %w", err)
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	data, err := json.Marshal(movies)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize catalog: %w", err)
	}
	if err := s.stateRepo.Set(ctx, "movies", data); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "catalog fetched", "count", len(movies))
	s.movies = movies
	return s.movies, nil
}

// Invalidate clears the in-memory copy and the persisted snapshot, forcing
// the next Get to refetch.
func (s *catalogService) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies = nil
	return s.stateRepo.Delete(ctx, "movies")
}

// Search filters the catalog by a case-insensitive substring match against
// the title. The result is computed fresh on every call and never cached
// per-query. An empty query returns the full catalog in original order.
func (s *catalogService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	movies, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return movies, nil
	}

	needle := strings.ToLower(query)
	matched := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// MovieByTitle fetches full movie details from the server. Detail lookups are
// pass-through reads and never touch the cached catalog.
func (s *catalogService) MovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.client.FetchMovieByTitle(ctx, title)
}

func (s *catalogService) Director(ctx context.Context, name string) (*models.Director, error) {
	return s.client.FetchDirector(ctx, name)
}

func (s *catalogService) Genre(ctx context.Context, name string) (*models.Genre, error) {
	return s.client.FetchGenre(ctx, name)
}
