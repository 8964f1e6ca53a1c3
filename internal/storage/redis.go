package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/redis/go-redis/v9"
)

// snapshotKey is the single key the whole state blob lives under.
const snapshotKey = "delibross:snapshot"

// RedisStore keeps the snapshot as one JSON value in Redis — the key-value
// blob convention the storefront used with localStorage, moved server-side.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, snap model.Snapshot) error {
	now := time.Now()
	snap.Version = model.SnapshotVersion
	snap.ExportDate = &now

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, snapshotKey, data, 0).Err()
}

func (s *RedisStore) Load(ctx context.Context) (model.Snapshot, error) {
	data, err := s.rdb.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return model.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return model.Snapshot{}, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

var _ SnapshotStore = (*RedisStore)(nil)
