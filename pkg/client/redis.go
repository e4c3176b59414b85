package client

import (
	"context"

	"moodmap/config"
	"moodmap/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置地址时返回 nil，作者缓存随之关闭
func NewRedisClient(conf *config.Config) (*redis.Client, func(), error) {
	if !conf.Redis.Enabled() {
		log.L.Info("redis disabled")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		_ = client.Close()
		return nil, nil, err
	}
	log.L.Info("redis client success")
	return client, func() { _ = client.Close() }, nil
}
