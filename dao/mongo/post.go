package mongo

import (
	"context"
	"time"

	"moodmap/models"
	"moodmap/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// geoJSON location.point 以 GeoJSON Point 存储，需要 2dsphere 索引
type geoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type locationDoc struct {
	LandmarkName *string  `bson:"landmarkName,omitempty"`
	Point        *geoJSON `bson:"point,omitempty"`
}

// postDoc 投影后的帖子文档，likes/comments 在管道里换成长度
type postDoc struct {
	ID            int64          `bson:"_id"`
	AuthorID      int64          `bson:"authorId"`
	Emotion       models.Emotion `bson:"emotion"`
	Reason        *string        `bson:"reason,omitempty"`
	People        []string       `bson:"people"`
	Activities    []string       `bson:"activities"`
	Location      *locationDoc   `bson:"location,omitempty"`
	Privacy       models.Privacy `bson:"privacy"`
	Timestamp     time.Time      `bson:"timestamp"`
	LikesCount    int            `bson:"likesCount"`
	CommentsCount int            `bson:"commentsCount"`
	CreatedAt     time.Time      `bson:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt"`
	Distance      float64        `bson:"distance,omitempty"`
}

func (d *postDoc) toPost() *models.Post {
	p := &models.Post{
		ID:            d.ID,
		AuthorID:      d.AuthorID,
		Emotion:       d.Emotion,
		Reason:        d.Reason,
		People:        d.People,
		Activities:    d.Activities,
		Privacy:       d.Privacy,
		Timestamp:     d.Timestamp,
		LikesCount:    d.LikesCount,
		CommentsCount: d.CommentsCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if p.People == nil {
		p.People = []string{}
	}
	if p.Activities == nil {
		p.Activities = []string{}
	}
	if d.Location != nil {
		p.Location = &models.Location{LandmarkName: d.Location.LandmarkName}
		if pt := d.Location.Point; pt != nil && len(pt.Coordinates) == 2 {
			p.Location.Point = &models.GeoPoint{Lon: pt.Coordinates[0], Lat: pt.Coordinates[1]}
		}
	}
	return p
}

// countsStage 只保留点赞/评论数量
var countsStage = bson.D{{Key: "$addFields", Value: bson.D{
	{Key: "likesCount", Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}}}},
	{Key: "commentsCount", Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$comments", bson.A{}}}}}}},
}}}

var dropListsStage = bson.D{{Key: "$project", Value: bson.D{
	{Key: "likes", Value: 0},
	{Key: "comments", Value: 0},
}}}

type PostStore struct {
	posts *mongo.Collection
}

func NewPostStore(db *mongo.Database, collection string) *PostStore {
	if collection == "" {
		collection = "posts"
	}
	return &PostStore{posts: db.Collection(collection)}
}

func boxMatch(f types.BoxFilter) bson.D {
	return bson.D{
		{Key: "privacy", Value: f.Privacy},
		{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: f.Since}}},
		{Key: "location.point", Value: bson.D{{Key: "$geoWithin", Value: bson.D{
			{Key: "$box", Value: bson.A{
				bson.A{f.Box.MinLng, f.Box.MinLat},
				bson.A{f.Box.MaxLng, f.Box.MaxLat},
			}},
		}}}},
	}
}

func (s *PostStore) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*postDoc, error) {
	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *PostStore) FindInBox(ctx context.Context, f types.BoxFilter) ([]*models.Post, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: boxMatch(f)}},
		{{Key: "$sort", Value: bson.D{{Key: "timestamp", Value: -1}}}},
	}
	if f.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: f.Limit}})
	}
	pipeline = append(pipeline, countsStage, dropListsStage)

	docs, err := s.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	posts := make([]*models.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toPost())
	}
	return posts, nil
}

// FindNear $geoNear 必须是管道的第一个阶段
func (s *PostStore) FindNear(ctx context.Context, f types.NearFilter) ([]types.NearHit, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: geoJSON{Type: "Point", Coordinates: []float64{f.Center.Lng, f.Center.Lat}}},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: f.MaxDistanceMeters},
			{Key: "key", Value: "location.point"},
			{Key: "spherical", Value: true},
			{Key: "query", Value: bson.D{
				{Key: "privacy", Value: f.Privacy},
				{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: f.Since}}},
			}},
		}}},
		{{Key: "$limit", Value: f.Limit}},
		countsStage,
		dropListsStage,
	}

	docs, err := s.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	hits := make([]types.NearHit, 0, len(docs))
	for _, d := range docs {
		hits = append(hits, types.NearHit{Post: d.toPost(), DistanceMeters: d.Distance})
	}
	return hits, nil
}

func (s *PostStore) CountByEmotion(ctx context.Context, f types.BoxFilter) (*types.AreaCounts, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: boxMatch(f)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$emotion.name"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		ID    any `bson:"_id"`
		Count int `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	counts := &types.AreaCounts{ByEmotion: make([]types.EmotionCount, 0, len(groups))}
	for _, g := range groups {
		// 非字符串的情绪名归入空名
		name, _ := g.ID.(string)
		counts.Total += g.Count
		counts.ByEmotion = append(counts.ByEmotion, types.EmotionCount{Name: name, Count: g.Count})
	}
	return counts, nil
}

func (s *PostStore) FindByID(ctx context.Context, id int64, privacy models.Privacy) (*models.Post, error) {
	docs, err := s.aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}, {Key: "privacy", Value: privacy}}}},
		{{Key: "$limit", Value: 1}},
		countsStage,
		dropListsStage,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0].toPost(), nil
}
