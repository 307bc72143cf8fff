package cli

import (
	"context"
	"log"
	"os"

	"github.com/NodEm9/myflix-client/internal/client/models"
)

// getSimpleText, getPassword and getDate are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getDate = GetDate

// Register prompts for the new account's fields and attempts to create it.
// On success the user is told to log in; validation happens server-side.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	birthday, _, err := getDate(a.reader, "Enter birthday", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	reg := models.Registration{
		Username: username,
		Password: string(password),
		Email:    email,
		Birthday: birthday,
	}
	if err := a.auth.Register(ctx, reg); err != nil {
		log.Printf("Registration unsuccessful: %v", err)
		return err
	}
	return nil
}

// Login prompts for credentials and authenticates against the server.
// On success the session is persisted locally and the prompt moves to the
// movies view.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, username, string(password)); err != nil {
		log.Printf("Login unsuccessful: %v", err)
		return err
	}
	return nil
}

// Logout clears the locally persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}
