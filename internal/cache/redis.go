package cache

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type RedisConfigurator interface {
	GetRedisUrl() (string, error)
}

const scanCount = 100

type CacheRedisApi interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

type Redis struct {
	client CacheRedisApi
}

func (rc *Redis) Get(ctx context.Context, key Key) (string, error, bool) {

	value, err := rc.client.Get(ctx, string(key)).Result()

	if err == redis.Nil {
		return "", nil, false
	} else if err != nil {
		return "", fmt.Errorf("failed to retrieve cached value - %w", err), false
	}

	return value, nil, true
}

func (rc *Redis) Set(ctx context.Context, key Key, value string, ttl time.Duration) error {

	_, err := rc.client.Set(ctx, string(key), value, ttl).Result()

	if err != nil {
		return fmt.Errorf("failed to set cached value - %w", err)
	}

	return nil
}

func (rc *Redis) Del(ctx context.Context, keys ...Key) error {

	rawKeys := make([]string, 0, len(keys))

	for _, key := range keys {
		rawKeys = append(rawKeys, string(key))
	}

	_, err := rc.client.Del(ctx, rawKeys...).Result()

	if err == redis.Nil {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to delete cached values - %w", err)
	}

	return nil
}

func (rc *Redis) DelWithPrefix(ctx context.Context, prefix Key) error {

	match := fmt.Sprintf("%s*", prefix)

	var cursor uint64

	for {
		keys, next, err := rc.client.Scan(ctx, cursor, match, scanCount).Result()

		if err != nil {
			return fmt.Errorf("failed to scan cached keys - %w", err)
		}

		if len(keys) > 0 {
			if _, err := rc.client.Del(ctx, keys...).Result(); err != nil {
				return fmt.Errorf("failed to delete cached values - %w", err)
			}
		}

		cursor = next

		if cursor == 0 {
			break
		}
	}

	return nil
}

func NewRedisClient(c RedisConfigurator) (*redis.Client, error) {

	url, err := c.GetRedisUrl()

	if err != nil {
		return nil, err
	}

	opt, err := redis.ParseURL(url)

	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url - %w", err)
	}

	return redis.NewClient(opt), nil
}

func NewRedisCache(client CacheRedisApi) (*Redis, error) {
	cache := Redis{client: client}
	return &cache, nil
}
