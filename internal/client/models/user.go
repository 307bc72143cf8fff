// Package models defines the wire types exchanged with the myFlix backend
// and the locally cached session state derived from them.
package models

import "time"

// UserProfile mirrors the server's user record. Password is the server-side
// hash and is treated as opaque; the client never sees the plaintext after
// submission.
type UserProfile struct {
	Username       string    `json:"Username"`
	Password       string    `json:"Password,omitempty"`
	Email          string    `json:"Email"`
	Birthday       time.Time `json:"Birthday"`
	FavoriteMovies []string  `json:"FavoriteMovies"`
	Role           string    `json:"Role,omitempty"`
}

// IsFavorite reports whether the movie id is in the user's favorites set.
// The server owns the set; this is only a membership check over the cached copy.
func (u *UserProfile) IsFavorite(movieID string) bool {
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}

// Credentials carries a username/password pair for login and password reset.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// Registration is the request body for creating a new account.
// All field validation happens server-side.
type Registration struct {
	Username string    `json:"Username"`
	Password string    `json:"Password"`
	Email    string    `json:"Email"`
	Birthday time.Time `json:"Birthday"`
}

// ProfilePatch is a partial profile update. Zero-valued fields are omitted
// from the request body and left unchanged by the server.
type ProfilePatch struct {
	Username string     `json:"Username,omitempty"`
	Password string     `json:"Password,omitempty"`
	Email    string     `json:"Email,omitempty"`
	Birthday *time.Time `json:"Birthday,omitempty"`
}
