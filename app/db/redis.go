package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const prefixDocument = "document:"

type RedisStorage struct {
	db *redis.Client
}

// Read document from redis
func (s *RedisStorage) Read(name string) (string, error) {
	text, err := s.db.Get(context.Background(), prefixDocument+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("fetching document: %w", err)
	}
	return text, nil
}

// Write overwrites document only if it exists
func (s *RedisStorage) Write(name string, text string) error {
	ok, err := s.db.SetXX(context.Background(), prefixDocument+name, text, 0).Result()
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Create saves document only if it does not exist yet
func (s *RedisStorage) Create(name string, text string) error {
	ok, err := s.db.SetNX(context.Background(), prefixDocument+name, text, 0).Result()
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

// NewRedisStorage creates RedisStorage with given url
func NewRedisStorage(url string) (*RedisStorage, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStorage{db: rdb}, nil
}
