package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/NodEm9/myflix-client/internal/client/models"
)

// Profile fetches and displays the signed-in user's account details.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(user.Username)
	printlnFn("  email:    " + user.Email)
	if !user.Birthday.IsZero() {
		printlnFn("  birthday: " + user.Birthday.Format("2006-01-02"))
	}
	printlnFn(fmt.Sprintf("  %d favorite(s)", len(user.FavoriteMovies)))
	return nil
}

// Edit interactively collects profile changes. Empty answers leave the
// corresponding field unchanged.
func (a *App) Edit(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	birthday, set, err := getDate(a.reader, "New birthday", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	patch := models.ProfilePatch{Email: email}
	if set {
		patch.Birthday = &birthday
	}
	if patch.Email == "" && patch.Birthday == nil {
		printlnFn("Nothing to update")
		return nil
	}

	if _, err := a.auth.UpdateProfile(ctx, patch); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

// ResetPassword prompts for a new password and submits it.
func (a *App) ResetPassword(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if _, err := a.auth.ResetPassword(ctx, string(password)); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

// DeleteAccount removes the account after an explicit confirmation. The
// session is cleared by the service on success.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account? This cannot be undone. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}
	if err := a.auth.DeleteAccount(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}
