package mongo

import (
	"context"
	"strconv"

	"moodmap/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDoc struct {
	ID          int64  `bson:"_id"`
	DisplayName string `bson:"displayName"`
	Avatar      string `bson:"avatar"`
}

type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(db *mongo.Database, collection string) *UserStore {
	if collection == "" {
		collection = "users"
	}
	return &UserStore{users: db.Collection(collection)}
}

func (s *UserStore) FindAuthors(ctx context.Context, ids []int64) (map[int64]types.AuthorBrief, error) {
	out := make(map[int64]types.AuthorBrief, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(bson.D{
		{Key: "displayName", Value: 1},
		{Key: "avatar", Value: 1},
	})
	cursor, err := s.users.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ID] = types.AuthorBrief{
			ID:          strconv.FormatInt(d.ID, 10),
			DisplayName: d.DisplayName,
			Avatar:      d.Avatar,
		}
	}
	return out, nil
}
