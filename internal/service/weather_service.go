package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/syntaxkim/project1/internal/models"
	"github.com/syntaxkim/project1/internal/weather"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

const weatherCacheTTL = 5 * time.Minute

// WeatherProvider is the outbound gateway contract.
type WeatherProvider interface {
	GetCurrentWeather(lat, long float64) (*weather.Snapshot, error)
}

// WeatherService fronts the provider with a short-lived Redis cache so
// repeated views of a location page do not hammer the provider.
type WeatherService struct {
	provider WeatherProvider
	redis    *redis.Client
}

// NewWeatherService creates a WeatherService. redisClient may be nil; the
// cache is then disabled and every call reaches the provider.
func NewWeatherService(provider WeatherProvider, redisClient *redis.Client) *WeatherService {
	return &WeatherService{provider: provider, redis: redisClient}
}

// CurrentForLocation returns the current weather snapshot for a location,
// served from cache when fresh. Provider failures propagate as the gateway
// sentinel; callers render the page without weather.
func (s *WeatherService) CurrentForLocation(ctx context.Context, location *models.Location) (*weather.Snapshot, error) {
	key := fmt.Sprintf("weather:%d", location.ID)

	if s.redis != nil {
		if payload, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var snapshot weather.Snapshot
			if err := json.Unmarshal(payload, &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	snapshot, err := s.provider.GetCurrentWeather(location.Lat, location.Long)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(snapshot); err == nil {
			if err := s.redis.Set(ctx, key, payload, weatherCacheTTL).Err(); err != nil {
				zaplogger.Warn("failed to cache weather snapshot", zaplogger.Fields{
					"location_id": location.ID,
					"error":       err.Error(),
				})
			}
		}
	}

	return snapshot, nil
}
