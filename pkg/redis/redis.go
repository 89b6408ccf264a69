package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

type IRedis interface {
	IncrRecommendations(ctx context.Context, userID string) (int64, error)
	GetRecommendations(ctx context.Context, userID string) (int64, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func recommendationKey(userID string) string {
	return fmt.Sprintf("recommendations:%s", userID)
}

func (r *redisClient) IncrRecommendations(ctx context.Context, userID string) (int64, error) {
	key := recommendationKey(userID)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error incrementing recommendation counter for key %s: %v", key, err))
		return 0, err
	}
	return count, nil
}

func (r *redisClient) GetRecommendations(ctx context.Context, userID string) (int64, error) {
	key := recommendationKey(userID)
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting recommendation counter for key %s: %v", key, err))
		return 0, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logrus.Error(fmt.Sprintf("Malformed recommendation counter for key %s: %v", key, err))
		return 0, err
	}

	return count, nil
}
