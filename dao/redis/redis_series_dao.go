package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"daylight-server/db"
	"daylight-server/models"
)

const DAILY_SERIES_KEY_FORMAT_V1 = "daily_series_v1:%.4f_%.4f_%s_%d"
const HOURLY_SERIES_KEY_FORMAT_V1 = "hourly_series_v1:%.4f_%.4f_%s_%d"

// RedisSeriesDAO caches fetched weather series in Redis. Keys carry the full
// fetch identity (lat, lon, timezone, year); values are JSON-encoded record
// slices with a TTL supplied by the caller. Current-weather responses never
// go through this DAO.
type RedisSeriesDAO struct {
	client db.RedisClient
}

// NewRedisSeriesDAO initializes a RedisSeriesDAO with the Redis client.
func NewRedisSeriesDAO(client db.RedisClient) *RedisSeriesDAO {
	return &RedisSeriesDAO{client: client}
}

// GetDailySeries returns the cached daily series, or (nil, nil) on a miss.
func (dao *RedisSeriesDAO) GetDailySeries(lat, lon float64, tz string, year int) ([]models.DailyRecord, error) {
	key := fmt.Sprintf(DAILY_SERIES_KEY_FORMAT_V1, lat, lon, tz, year)
	str, err := dao.client.Get(key)
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily series from redis: %w", err)
	}
	var records []models.DailyRecord
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily series JSON: %w", err)
	}
	return records, nil
}

// SetDailySeries caches a daily series with the given TTL.
func (dao *RedisSeriesDAO) SetDailySeries(lat, lon float64, tz string, year int, records []models.DailyRecord, ttl time.Duration) error {
	key := fmt.Sprintf(DAILY_SERIES_KEY_FORMAT_V1, lat, lon, tz, year)
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal daily series for %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set daily series in redis: %w", err)
	}
	log.Printf("[RedisSeriesDAO] Cached daily series under %s", key)
	return nil
}

// GetHourlySeries returns the cached hourly series, or (nil, nil) on a miss.
func (dao *RedisSeriesDAO) GetHourlySeries(lat, lon float64, tz string, year int) ([]models.HourlyRecord, error) {
	key := fmt.Sprintf(HOURLY_SERIES_KEY_FORMAT_V1, lat, lon, tz, year)
	str, err := dao.client.Get(key)
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hourly series from redis: %w", err)
	}
	var records []models.HourlyRecord
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hourly series JSON: %w", err)
	}
	return records, nil
}

// SetHourlySeries caches an hourly series with the given TTL.
func (dao *RedisSeriesDAO) SetHourlySeries(lat, lon float64, tz string, year int, records []models.HourlyRecord, ttl time.Duration) error {
	key := fmt.Sprintf(HOURLY_SERIES_KEY_FORMAT_V1, lat, lon, tz, year)
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal hourly series for %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set hourly series in redis: %w", err)
	}
	log.Printf("[RedisSeriesDAO] Cached hourly series under %s", key)
	return nil
}
