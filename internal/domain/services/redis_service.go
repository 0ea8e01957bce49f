package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheLockState(lock *models.TourniquetLock, expiration time.Duration) error
	GetLockState(lockID uint) (*models.TourniquetLock, error)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheLockState caches a snapshot of a lock row with expiration.
// The database stays authoritative; the snapshot only serves reads.
func (s *RedisService) CacheLockState(lock *models.TourniquetLock, expiration time.Duration) error {
	key := fmt.Sprintf("lock_state:%d", lock.ID)
	return s.Set(key, lock, expiration)
}

// 5 GetLockState gets a cached lock snapshot by lock ID
func (s *RedisService) GetLockState(lockID uint) (*models.TourniquetLock, error) {
	var lock models.TourniquetLock
	key := fmt.Sprintf("lock_state:%d", lockID)
	if err := s.Get(key, &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}
