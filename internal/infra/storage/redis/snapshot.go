package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/kaspawatch/internal/snapshot"

	"github.com/redis/go-redis/v9"
)

// snapshotKeyPrefix is the namespace of every key written by kaspawatch.
const snapshotKeyPrefix = "kaspawatch"

// snapshotKey returns the key holding the JSON snapshot document.
//
// Format: "kaspawatch:snapshot"
func snapshotKey() string {
	return fmt.Sprintf("%s:snapshot", snapshotKeyPrefix)
}

// Save implements snapshot.Storage by writing the whole document under a
// single key with no expiration.
func (c *client) Save(ctx context.Context, doc snapshot.Snapshot) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return c.conn.Set(ctx, snapshotKey(), data, 0).Err()
}

// Load implements snapshot.Storage.
//
// Returns snapshot.ErrSnapshotNotFound if the key does not exist.
func (c *client) Load(ctx context.Context) (snapshot.Snapshot, error) {
	data, err := c.conn.Get(ctx, snapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = snapshot.ErrSnapshotNotFound
		}

		return snapshot.Snapshot{}, err
	}

	var doc snapshot.Snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: %w", snapshot.ErrMalformedSnapshot, err)
	}

	return doc, nil
}

// Compile-time assertion to ensure *client satisfies the snapshot.Storage interface
var _ snapshot.Storage = new(client)
