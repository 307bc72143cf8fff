package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/NodEm9/myflix-client/internal/client/models"
)

// currentUser returns the cached profile or nil when no session is persisted.
// Rendering favorite markers must never fail a listing, so errors only log.
func (a *App) currentUser(ctx context.Context) *models.UserProfile {
	sess, err := a.sessions.Load(ctx)
	if err != nil || sess == nil {
		return nil
	}
	return sess.User
}

func (a *App) printMovieLine(m models.Movie, user *models.UserProfile) {
	marker := " "
	if user != nil && user.IsFavorite(m.ID) {
		marker = "*"
	}
	printlnFn(fmt.Sprintf("%s %-12s %s (%s)", marker, m.ID, m.Title, m.Genre.Name))
}

// Movies lists the catalog, one line per movie, with favorites marked '*'.
func (a *App) Movies(ctx context.Context) error {
	movies, err := a.catalog.Get(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	user := a.currentUser(ctx)
	for _, m := range movies {
		a.printMovieLine(m, user)
	}
	printlnFn(fmt.Sprintf("%d movie(s)", len(movies)))
	return nil
}

// Search filters the catalog by a case-insensitive title substring. Run
// without an argument it prompts for one; an empty query lists everything.
func (a *App) Search(ctx context.Context, query string) error {
	if query == "" {
		q, err := getSimpleText(a.reader, "Enter search text", os.Stdout)
		if err != nil {
			return err
		}
		query = q
	}
	movies, err := a.catalog.Search(ctx, query)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	user := a.currentUser(ctx)
	for _, m := range movies {
		a.printMovieLine(m, user)
	}
	printlnFn(fmt.Sprintf("%d match(es)", len(movies)))
	return nil
}

// Show displays a single movie's synopsis view.
func (a *App) Show(ctx context.Context, title string) error {
	if title == "" {
		t, err := getSimpleText(a.reader, "Enter movie title", os.Stdout)
		if err != nil {
			return err
		}
		title = t
	}
	m, err := a.catalog.MovieByTitle(ctx, title)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(m.Title)
	printlnFn("  id:       " + m.ID)
	printlnFn("  genre:    " + m.Genre.Name)
	printlnFn("  director: " + m.Director.Name)
	printlnFn("  image:    " + m.ImageURL)
	printlnFn("  " + m.Description)
	if user := a.currentUser(ctx); user != nil && user.IsFavorite(m.ID) {
		printlnFn("  (in your favorites)")
	}
	return nil
}

// Director displays a director's bio.
func (a *App) Director(ctx context.Context, name string) error {
	if name == "" {
		n, err := getSimpleText(a.reader, "Enter director name", os.Stdout)
		if err != nil {
			return err
		}
		name = n
	}
	d, err := a.catalog.Director(ctx, name)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	years := d.Birth
	if d.Death != "" {
		years += "–" + d.Death
	}
	printlnFn(fmt.Sprintf("%s (%s)", d.Name, years))
	printlnFn("  " + d.Bio)
	return nil
}

// Genre displays a genre's description.
func (a *App) Genre(ctx context.Context, name string) error {
	if name == "" {
		n, err := getSimpleText(a.reader, "Enter genre name", os.Stdout)
		if err != nil {
			return err
		}
		name = n
	}
	g, err := a.catalog.Genre(ctx, name)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(g.Name)
	printlnFn("  " + g.Description)
	return nil
}

// Refresh drops the cached catalog so the next listing refetches it.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.catalog.Invalidate(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Catalog cache cleared")
	return nil
}
