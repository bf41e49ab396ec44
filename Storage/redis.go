package Storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

const redisKeyPrefix = "docbook:"

// RedisStore keeps each collection as a single value under a prefixed key,
// the closest server-side analogue of the key-value namespace the data
// model was designed around.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Read(ctx context.Context, collection string, dest any) error {
	data, err := s.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		Utils.GetLogger().Error("malformed collection, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	return nil
}

func (s *RedisStore) Write(ctx context.Context, collection string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
