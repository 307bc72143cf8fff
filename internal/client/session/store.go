// Package session owns the locally persisted authentication token and user
// profile. All session reads and writes in the client go through the Store;
// no other component touches the underlying storage keys directly.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NodEm9/myflix-client/internal/client/models"
	"github.com/NodEm9/myflix-client/internal/client/repositories/state"
	"github.com/NodEm9/myflix-client/internal/common"
	"github.com/NodEm9/myflix-client/internal/dbx"
	"github.com/NodEm9/myflix-client/internal/logging"
)

// Session is the locally held proof of authentication plus the cached profile
// for the currently signed-in user. Token and User are always set together.
type Session struct {
	Token string
	User  *models.UserProfile
}

// Store persists the session in the local state database under the "token"
// and "user" keys. Both entries are written and removed in one transaction
// so a crash cannot leave a token without a user or vice versa.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo(db dbx.DBTX) state.Repository {
	return state.NewSQLiteRepository(db)
}

// Save persists user and token, overwriting any prior session.
func (s *Store) Save(ctx context.Context, user *models.UserProfile, token string) error {
	if user == nil || user.Username == "" || token == "" {
		return fmt.Errorf("%w: user and token are required", common.ErrValidation)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, "token", []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, "user", data)
	})
}

// Load returns the persisted session, or nil if never set or cleared.
// An expired bearer token is still returned (the server is the authority);
// a warning is logged so the user understands the upcoming 401.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, "token")
	if err != nil {
		return nil, err
	}
	userData, err := repo.Get(ctx, "user")
	if err != nil {
		return nil, err
	}
	if token == nil || userData == nil {
		return nil, nil
	}

	var user models.UserProfile
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, fmt.Errorf("failed to deserialize user: %w", err)
	}

	if tokenExpired(string(token)) {
		s.log.Warn(ctx, "stored bearer token is expired, re-login required", "username", user.Username)
	}

	return &Session{Token: string(token), User: &user}, nil
}

// Clear removes both entries; a subsequent Load returns nil.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, "token"); err != nil {
			return err
		}
		return repo.Delete(ctx, "user")
	})
}

// CurrentUsername returns the signed-in user's name, or ErrNotAuthenticated
// when no session exists. Callers performing username-scoped requests rely on
// this failing fast instead of dereferencing absent data.
func (s *Store) CurrentUsername(ctx context.Context) (string, error) {
	sess, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", common.ErrNotAuthenticated
	}
	return sess.User.Username, nil
}

// Token returns the stored bearer token, or ErrNotAuthenticated when no
// session exists.
func (s *Store) Token(ctx context.Context) (string, error) {
	sess, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", common.ErrNotAuthenticated
	}
	return sess.Token, nil
}

// tokenExpired decodes the token without verifying its signature and checks
// the exp claim. Tokens that are not JWTs or carry no exp are treated as
// non-expired; only the server can really judge them.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
