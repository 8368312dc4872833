// Package store persists network documents.
//
// [Store] abstracts the backend: [NewMongoStore] for MongoDB (the
// document form's bson tags map directly onto collection documents) and
// [NewMemStore] for tests and single-process embedding. Networks are
// keyed by name; Save upserts.
package store

import (
	"context"

	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/netio"
)

// Store persists network documents by name.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save inserts or replaces the document under its Name.
	Save(ctx context.Context, doc netio.Network) error

	// Load returns the document with the given name, or a
	// NETWORK_NOT_FOUND error.
	Load(ctx context.Context, name string) (netio.Network, error)

	// List returns the names of all stored networks in sorted order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the document with the given name, or returns a
	// NETWORK_NOT_FOUND error if it does not exist.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// notFound builds the shared not-found error for store backends.
func notFound(name string) error {
	return errors.New(errors.ErrCodeNetworkNotFound, "network %q not found", name)
}
