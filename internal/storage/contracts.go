package storage

import "context"

// ObjectStore is the byte-storage collaborator contract. Locations are
// opaque strings owned by the backend.
type ObjectStore interface {
	Store(ctx context.Context, data []byte) (location string, err error)
	Fetch(ctx context.Context, location string) ([]byte, error)
	Delete(ctx context.Context, location string) error
}
