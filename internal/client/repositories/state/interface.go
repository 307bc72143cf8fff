// Package state implements the client's locally persisted key-value store.
// It holds the serialized session ("token", "user") and the movie catalog
// snapshot ("movies"). Absence of a key means "unset", not an error.
package state

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
