package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// ToggleFavorite flips a movie's favorite state. The service announces the
// outcome via Notify, so there is nothing to print on success here.
func (a *App) ToggleFavorite(ctx context.Context, movieID string) error {
	if movieID == "" {
		id, err := getSimpleText(a.reader, "Enter movie id", os.Stdout)
		if err != nil {
			return err
		}
		movieID = id
	}
	if _, err := a.favorites.Toggle(ctx, movieID); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

// Favorites lists the signed-in user's favorite movies.
func (a *App) Favorites(ctx context.Context) error {
	movies, err := a.favorites.Favorites(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, m := range movies {
		printlnFn(fmt.Sprintf("* %-12s %s (%s)", m.ID, m.Title, m.Genre.Name))
	}
	printlnFn(fmt.Sprintf("%d favorite(s)", len(movies)))
	return nil
}
