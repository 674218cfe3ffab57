// Package store provides a generic CRUD+query contract over persisted
// entities with an explicit commit boundary. Mutations are staged and become
// visible only after Commit, which applies them atomically.
package store

import "context"

// Identifiable constrains entity pointer types that expose an integer
// identifier. The identifier is resolved at compile time, no reflection.
type Identifiable[T any] interface {
	*T
	EntityID() int
	SetEntityID(id int)
}

// Store is the persistence contract shared by all domain services.
// Reads return value snapshots that are never tracked for later mutation.
type Store[T any, P Identifiable[T]] interface {
	// GetAll returns every row with no implicit filtering.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the row and true, or a zero value and false when the
	// id is absent. Absence is not an error.
	GetByID(ctx context.Context, id int) (T, bool, error)

	// Add stages a new row. The identifier is assigned through the pointer
	// at commit time and is not valid before then.
	Add(ctx context.Context, entity P) error

	// Update stages an in-place modification keyed by the entity's id.
	// Existence checks are the caller's responsibility.
	Update(ctx context.Context, entity P) error

	// Delete stages removal of the row with the given id; staging is a
	// no-op signal when the id is absent at commit.
	Delete(ctx context.Context, id int) error

	// Exists reports whether a row with the given id is committed.
	Exists(ctx context.Context, id int) (bool, error)

	// Find returns all committed rows matching the predicate. The scan runs
	// client-side over the same snapshot GetAll sees.
	Find(ctx context.Context, predicate func(T) bool) ([]T, error)

	// Commit atomically persists all staged adds, updates and deletes and
	// returns the number of affected rows. Nothing staged is visible to
	// readers before Commit returns.
	Commit(ctx context.Context) (int, error)
}
