package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Movies(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, title string) error
	Director(ctx context.Context, name string) error
	Genre(ctx context.Context, name string) error
	ToggleFavorite(ctx context.Context, movieID string) error
	Favorites(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the myFlix CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the remainder as its argument, and dispatches to methods on
// 'a'. Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - register          — create an account
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - movies            — list the catalog, favorites marked with '*'
//	  - search <text>     — filter the catalog by title
//	  - show <title>      — show a single movie
//	  - director <name>   — show director details
//	  - genre <name>      — show genre details
//	  - fav <movie id>    — toggle a favorite
//	  - favorites         — list favorite movies
//	  - profile           — show the account profile
//	  - edit              — update profile fields (interactive)
//	  - resetpw           — change the password
//	  - delete            — delete the account (interactive confirmation)
//	  - refresh           — drop the cached catalog and refetch
//	  - logout            — log out
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("myflix> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (m)ovies, search, show, director, genre, fav, favorites, profile, edit, resetpw, delete, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "m", "movies":
			_ = a.Movies(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "show":
			_ = a.Show(ctx, arg)

		case "director":
			_ = a.Director(ctx, arg)

		case "genre":
			_ = a.Genre(ctx, arg)

		case "fav":
			_ = a.ToggleFavorite(ctx, arg)

		case "favorites", "favs":
			_ = a.Favorites(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "delete":
			_ = a.DeleteAccount(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
