package repository

import (
	"context" // Standard for request-scoped deadlines, cancellation signals, etc.
)

// Keys of the two persisted blobs.
const (
	KeyCurrentUser = "currentUser"
	KeyWorkoutPlan = "workoutPlan"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// StateStore is a small key/value store scoped to one installation of the
// client. Values are opaque serialized blobs.
type StateStore interface {
	// Get returns ErrNotFound when key has never been stored or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value of key wholesale.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key of the scope.
	Clear(ctx context.Context) error
	Close() error
}
