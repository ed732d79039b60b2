package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sitegate-http-service/config"
)

// InterfaceRedisService defines the Redis cache interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheSession(userID uint, token string, expiration time.Duration) error
	InvalidateSession(userID uint) error
}

// RedisService handles Redis operations. The client may be nil, in which
// case every call is a no-op miss so the backend runs without a cache.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	if s.Client == nil {
		return nil
	}
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value by key
func (s *RedisService) Get(key string, dest interface{}) error {
	if s.Client == nil {
		return redis.Nil
	}
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key
func (s *RedisService) Delete(key string) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Del(s.Ctx, key).Err()
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

// CacheSession stores the active token of a user
func (s *RedisService) CacheSession(userID uint, token string, expiration time.Duration) error {
	return s.Set(sessionKey(userID), token, expiration)
}

// InvalidateSession drops the cached session of a user, used when an
// account is deactivated.
func (s *RedisService) InvalidateSession(userID uint) error {
	return s.Delete(sessionKey(userID))
}
