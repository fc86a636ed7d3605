package service

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/syntaxkim/project1/internal/repository"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

// RedisFeedChannel is the Redis channel new check-ins are republished on.
var RedisFeedChannel = "CH:GEOCHECK:CHECKINS"

// PublishCheckinsToRedisChannel bridges the Postgres NOTIFY channel written
// by the check-in repository to a Redis channel, for the lifetime of the
// process. Run it on its own goroutine.
func PublishCheckinsToRedisChannel(redisClient *redis.Client, pgConnStr string) {
	listener := pq.NewListener(pgConnStr, 10*time.Second, time.Minute, nil)
	if err := listener.Listen(repository.FeedChannel); err != nil {
		zaplogger.Error("FEED SERVICE: failed to listen on Postgres channel", zaplogger.Fields{
			"Postgres Channel": repository.FeedChannel,
			"error":            err.Error(),
		})
		return
	}

	zaplogger.Info("FEED SERVICE: starting to publish", zaplogger.Fields{
		"Postgres Channel": repository.FeedChannel,
		"Redis Channel":    RedisFeedChannel,
	})

	ctx := context.Background()

	for {
		select {
		case n := <-listener.Notify:
			if n == nil {
				continue
			}
			if err := redisClient.Publish(ctx, RedisFeedChannel, n.Extra).Err(); err != nil {
				zaplogger.Error("FEED SERVICE: failed to publish to Redis", zaplogger.Fields{
					"Redis Channel": RedisFeedChannel,
					"error":         err.Error(),
				})
			}
		case <-time.After(90 * time.Second):
			go func() {
				if err := listener.Ping(); err != nil {
					zaplogger.Error("FEED SERVICE: error pinging Postgres", zaplogger.Fields{
						"error": err.Error(),
					})
				}
			}()
		}
	}
}
