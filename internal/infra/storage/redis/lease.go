package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/kaspawatch/internal/snapshot"

	"github.com/redis/go-redis/v9"
)

// leaseKey returns the key holding the owner id of the snapshot lease.
//
// Format: "kaspawatch:lease"
func leaseKey() string {
	return fmt.Sprintf("%s:lease", snapshotKeyPrefix)
}

// acquireLeaseScript sets the lease when it is free or already owned by
// ARGV[1], with a TTL of ARGV[2] milliseconds. Returns 1 on success.
var acquireLeaseScript = redis.NewScript(`
local holder = redis.call("GET", KEYS[1])
if holder == false or holder == ARGV[1] then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 1
end
return 0
`)

// releaseLeaseScript deletes the lease only if ARGV[1] owns it.
var releaseLeaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Acquire implements snapshot.Lease.
//
// The check and the write run as one script so two processes can never
// both see the lease as free.
func (c *client) Acquire(ctx context.Context, owner string, ttl time.Duration) error {
	ok, err := acquireLeaseScript.Run(ctx, c.conn, []string{leaseKey()}, owner, ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}

	if ok != 1 {
		return snapshot.ErrLeaseHeld
	}

	return nil
}

// Release implements snapshot.Lease.
func (c *client) Release(ctx context.Context, owner string) error {
	return releaseLeaseScript.Run(ctx, c.conn, []string{leaseKey()}, owner).Err()
}

// Compile-time assertion to ensure *client satisfies the snapshot.Lease interface
var _ snapshot.Lease = new(client)
