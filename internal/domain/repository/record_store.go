package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is the absent-record outcome shared by every backend.
	ErrNotFound = errors.New("record not found")
	// ErrBackendUnavailable wraps failures where no backend could serve the
	// call, neither the database nor the local file store.
	ErrBackendUnavailable = errors.New("storage backend unavailable")
)

// Record is anything the stores can persist. FieldValue lets file-backed
// stores evaluate field filters without reflection; it returns false for
// fields that are not queryable.
type Record interface {
	RecordID() string
	FieldValue(name string) (string, bool)
}

// Store is the data-access contract for one collection. Writes are
// synchronous: when Put returns nil the record is durable.
type Store[T Record] interface {
	// Put inserts or replaces the record keyed by its id. Overwriting is
	// not an error.
	Put(ctx context.Context, rec T) error
	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id string) (T, error)
	// FindOneBy returns the first record whose field equals value, or
	// ErrNotFound. With duplicate values the choice of match is
	// backend-dependent and callers must not rely on it.
	FindOneBy(ctx context.Context, field, value string) (T, error)
	// GetAll returns every record keyed by id.
	GetAll(ctx context.Context) (map[string]T, error)
}
