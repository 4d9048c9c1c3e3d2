package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// RedisGateway grava o snapshot JSON inteiro sob uma única chave.
type RedisGateway struct {
	rdb *redis.Client
	key string
}

func NewRedisGateway(rdb *redis.Client, key string) *RedisGateway {
	return &RedisGateway{rdb: rdb, key: key}
}

func (g *RedisGateway) Load(ctx context.Context) (*model.Snapshot, error) {
	raw, err := g.rdb.Get(ctx, g.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSemSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("gateway redis: get: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("gateway redis: decode snapshot: %w", err)
	}
	return &snap, nil
}

func (g *RedisGateway) Save(ctx context.Context, snap *model.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("gateway redis: encode snapshot: %w", err)
	}
	// Sem TTL — o snapshot é o estado autoritativo, não um cache.
	if err := g.rdb.Set(ctx, g.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("gateway redis: set: %w", err)
	}
	return nil
}
