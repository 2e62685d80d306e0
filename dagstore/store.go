package dagstore

import (
	"context"

	"github.com/google/uuid"
)

type ObjectReader interface {
	// Get reads a whole object. A missing object yields an error matching
	// ErrNotFound.
	Get(ctx context.Context, buildID uuid.UUID, otype ObjectType) ([]byte, error)
}

type ObjectWriter interface {
	// Put writes a whole object. With failIfExists an existing object is left
	// untouched and the error matches ErrExists.
	Put(ctx context.Context, buildID uuid.UUID, otype ObjectType, data []byte, failIfExists bool) error
}

type ObjectReaderWriter interface {
	ObjectReader
	ObjectWriter
}
