package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes $geoNear 依赖 location.point 上的 2dsphere 索引
func (s *PostStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "location.point", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "privacy", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}
