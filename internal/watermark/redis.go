package watermark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(board string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PW"),
	})
	return &RedisStore{client: client, key: "watermark:" + board}
}

func (s *RedisStore) Load() (int, bool, error) {
	text, err := s.client.Get(context.Background(), s.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("loading %s: %w", s.key, err)
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("parsing %s: %w", s.key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Save(value int) error {
	err := s.client.Set(context.Background(), s.key, strconv.Itoa(value), 0).Err()
	if err != nil {
		return fmt.Errorf("saving %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
