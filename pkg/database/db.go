package database

import (
	"context"
	"fmt"
	"time"

	"moodmap/config"
	"moodmap/pkg/log"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化 MySQL 连接
func NewDB(conf *config.MySQL) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(conf.Dsn()), &gorm.Config{})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}
	log.L.Info("connect database success")
	return db, nil
}

// NewMongo 初始化 MongoDB 连接
func NewMongo(ctx context.Context, conf *config.Mongo) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("unable to ping mongo: %w", err)
	}
	log.L.Info("connect mongo success", zap.String("database", conf.Database))
	return client, nil
}

// NewPostgres 初始化 PostGIS 连接池，连通性由调用方检查
func NewPostgres(ctx context.Context, conf *config.Postgres) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.ConnString())
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return db, nil
}
