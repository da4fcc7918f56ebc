// Package kvslot provides durable single-slot stores for the serialized cart.
// The cart lives whole in one value under the fixed key "cart".
package kvslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/furnistore/storefront/internal/cart/app"
)

const slotKey = "cart"

// RedisSlot stores the cart under <prefix><key> in redis with no expiry.
type RedisSlot struct {
	client *redis.Client
	key    string
}

func NewRedisSlot(client *redis.Client, prefix string) *RedisSlot {
	return &RedisSlot{
		client: client,
		key:    prefix + slotKey,
	}
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, app.ErrSlotEmpty
		}
		return nil, fmt.Errorf("slot read: %w", err)
	}
	return data, nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("slot write: %w", err)
	}
	return nil
}
