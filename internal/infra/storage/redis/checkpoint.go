package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hasselalcala/near-event-listener/internal/eventstream"

	"github.com/redis/go-redis/v9"
)

// checkpointKeyPrefix namespaces every key of the listener checkpoint system.
const checkpointKeyPrefix = "eventstream"

// checkpointKey builds the key storing the last processed block height for
// one watch target, e.g. "eventstream:checkpoint:nft.near:nft_mint".
func checkpointKey(watchID string) string {
	return fmt.Sprintf("%s:checkpoint:%s", checkpointKeyPrefix, watchID)
}

// SaveCheckpoint persists the last fully processed block height for the
// given watch target. The key has no expiration: the checkpoint must survive
// arbitrarily long downtime.
func (c *client) SaveCheckpoint(ctx context.Context, watchID string, height uint64) error {
	key := checkpointKey(watchID)
	return c.conn.Set(ctx, key, strconv.FormatUint(height, 10), 0).Err()
}

// LoadLatestCheckpoint returns the most recently saved height for the given
// watch target, or eventstream.ErrNoCheckpointFound when none exists.
func (c *client) LoadLatestCheckpoint(ctx context.Context, watchID string) (uint64, error) {
	key := checkpointKey(watchID)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = eventstream.ErrNoCheckpointFound
		}

		return 0, err
	}

	return strconv.ParseUint(val, 10, 64)
}

// Compile-time assertion that client implements CheckpointStorage.
var _ eventstream.CheckpointStorage = new(client)
