package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/application/reports"
)

var _ reports.ReportCache = (*RedisReportCache)(nil)

const redisKeyPrefix = "retail-pos:report:"

// RedisReportCache caché compartida entre instancias; la expiración la aplica Redis (SET con TTL).
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache construye el cliente sin conectarse; la conexión se verifica en Start.
func NewRedisReportCache(addr, password string, db int) *RedisReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisReportCache{client: client}
}

// Start verifica la conexión con Redis.
func (c *RedisReportCache) Start(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Stop cierra el cliente.
func (c *RedisReportCache) Stop() error {
	return c.client.Close()
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (*dto.ExecutiveReportDTO, bool, error) {
	val, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	report, err := decodeReport(val)
	if err != nil {
		return nil, false, err
	}
	return report, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, report *dto.ExecutiveReportDTO, ttl time.Duration) error {
	if report == nil || ttl <= 0 {
		return nil
	}
	payload, err := encodeReport(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisKey(key), payload, ttl).Err()
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func encodeReport(report *dto.ExecutiveReportDTO) ([]byte, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("redis encode: %w", err)
	}
	return payload, nil
}

func decodeReport(payload []byte) (*dto.ExecutiveReportDTO, error) {
	var report dto.ExecutiveReportDTO
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("redis decode: %w", err)
	}
	return &report, nil
}
