// Package cli provides the interactive myFlix command-line client.
//
// It wires configuration, local storage, the API client, and an interactive
// REPL over the catalog and account services. Typical flow: register or log
// in, browse and search the movie list, open director/genre/synopsis details,
// and toggle favorites.
//
// Key features:
//   - Register / Login / Logout
//   - Movie list, search, and detail views
//   - Favorites toggling and listing
//   - Profile display, edit, password reset, account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The App also acts as the services' Router and Notifier collaborator: route
// changes show up in the prompt and notifications are printed inline.
// See App and runREPL for details.
package cli
