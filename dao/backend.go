package dao

import (
	"context"
	"fmt"
	"time"

	"moodmap/config"
	"moodmap/dao/cache"
	"moodmap/dao/memory"
	mongostore "moodmap/dao/mongo"
	"moodmap/dao/postgis"
	"moodmap/pkg/database"
	"moodmap/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backend 按 store.driver 选出的存储实现
type Backend struct {
	Posts   SpatialStore
	Authors AuthorDirectory
}

// NewBackend 建立对应驱动的连接，返回的 cleanup 负责释放连接
func NewBackend(cfg *config.Config) (*Backend, func(), error) {
	ctx := context.Background()

	switch cfg.Store.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		if cfg.Store.Fixture != "" {
			if err := store.LoadFixture(cfg.Store.Fixture); err != nil {
				return nil, nil, err
			}
			log.L.Info("fixture loaded", zap.String("path", cfg.Store.Fixture), zap.Int("posts", store.Len()))
		}
		return &Backend{Posts: store, Authors: store}, func() {}, nil

	case config.DriverMySQL:
		db, err := database.NewDB(cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return &Backend{Posts: NewPostDAO(db), Authors: NewUsers(db)}, cleanup, nil

	case config.DriverMongo:
		client, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		posts := mongostore.NewPostStore(db, cfg.Mongo.Posts)
		if err := posts.EnsureIndexes(ctx); err != nil {
			log.L.Warn("ensure mongo indexes failed", zap.Error(err))
		}
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return &Backend{Posts: posts, Authors: mongostore.NewUserStore(db, cfg.Mongo.Users)}, cleanup, nil

	case config.DriverPostgres:
		pool, err := database.NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		posts := postgis.NewPostStore(pool)
		if err := posts.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("unable to ping database: %w", err)
		}
		log.L.Info("connect postgres success")
		return &Backend{Posts: posts, Authors: postgis.NewUserStore(pool)}, pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func ProvideSpatialStore(b *Backend) SpatialStore {
	return NewInstrumentedStore(b.Posts)
}

// ProvideAuthorDirectory 配置了 redis 时在作者查询外包一层缓存
func ProvideAuthorDirectory(b *Backend, rds *redis.Client, cfg *config.Config) AuthorDirectory {
	if rds == nil {
		return b.Authors
	}
	ttl, err := time.ParseDuration(cfg.Redis.TTL)
	if err != nil {
		ttl = 0
	}
	return cache.NewAuthorStorage(rds, b.Authors, ttl)
}
