package repository

import (
	"context"
)

// Repository defines the local key/value storage for client preferences, such
// as the anonymous user id. It plays the role browser local storage plays for
// a web front-end.
type Repository interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
	DeletePreference(ctx context.Context, key string) error
}
