package user

import (
	"context"
	"errors"
)

// ErrMissing reports that no record exists for the requested id. Store
// implementations return it from FindByID and Delete; Service translates it
// into a NotFoundError carrying the id.
var ErrMissing = errors.New("user: record missing")

// Store is the persistence port. Implementations must provide atomic
// single-record operations; FindAll returns records in insertion order.
type Store interface {
	// FindAll returns every stored record.
	FindAll(ctx context.Context) ([]User, error)
	// FindByID returns the record with the given id, or ErrMissing.
	FindByID(ctx context.Context, id int64) (*User, error)
	// Save inserts or updates a record. When u.ID is zero the store assigns
	// the next id; the returned record always carries the final id.
	Save(ctx context.Context, u *User) (*User, error)
	// Delete removes the record with the given id, or returns ErrMissing.
	Delete(ctx context.Context, id int64) error
}
