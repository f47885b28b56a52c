package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"visitor-http-service/config"
)

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
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

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheVisitStats caches the dashboard statistics
func (s *RedisService) CacheVisitStats(stats interface{}, expiration time.Duration) error {
	return s.Set("visit_stats", stats, expiration)
}

// GetVisitStats reads the dashboard statistics from cache
func (s *RedisService) GetVisitStats(dest interface{}) error {
	return s.Get("visit_stats", dest)
}

// CacheVisitReport caches a visit report for a date range
func (s *RedisService) CacheVisitReport(startDate, endDate string, report interface{}, expiration time.Duration) error {
	return s.Set("visit_report:"+startDate+":"+endDate, report, expiration)
}

// GetVisitReport reads a cached visit report for a date range
func (s *RedisService) GetVisitReport(startDate, endDate string, dest interface{}) error {
	return s.Get("visit_report:"+startDate+":"+endDate, dest)
}
