package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no snapshot has been materialized yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists materialized collection snapshots keyed by owner
// and collection. The mirror worker writes them, read paths may serve them
// when the record store is unreachable.
type SnapshotStore interface {
	// SaveSnapshot stores the serialized snapshot of a collection.
	SaveSnapshot(ctx context.Context, ownerUID, collection string, payload []byte, ttl time.Duration) error

	// LoadSnapshot retrieves the serialized snapshot of a collection.
	LoadSnapshot(ctx context.Context, ownerUID, collection string) ([]byte, error)
}
