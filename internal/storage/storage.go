// Package storage persists the whole-state snapshot blob. The core treats
// persistence as an external collaborator: stores load and save the entire
// collection set as one JSON document, nothing finer-grained.
package storage

import (
	"context"
	"errors"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
)

// ErrNoSnapshot is returned by Load when the backend holds no snapshot yet
// (fresh install).
var ErrNoSnapshot = errors.New("storage: no snapshot stored")

// SnapshotStore saves and loads the full application snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, snap model.Snapshot) error
	Load(ctx context.Context) (model.Snapshot, error)
}
