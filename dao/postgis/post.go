package postgis

import (
	"context"
	"fmt"
	"time"

	"moodmap/models"
	"moodmap/types"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// postColumns location 为 geography(Point,4326)，likes/comments 为 jsonb 数组
const postColumns = `
	id, author_id, emotion, reason,
	COALESCE(people, '{}'), COALESCE(activities, '{}'),
	landmark_name,
	ST_Y(location::geometry) AS lat, ST_X(location::geometry) AS lng,
	privacy, "timestamp",
	jsonb_array_length(COALESCE(likes, '[]'::jsonb)),
	jsonb_array_length(COALESCE(comments, '[]'::jsonb)),
	created_at, updated_at`

const boxWhere = `
	privacy = $1
	AND "timestamp" >= $2
	AND location IS NOT NULL
	AND ST_Covers(ST_MakeEnvelope($3, $4, $5, $6, 4326), location::geometry)`

type PostStore struct {
	db *pgxpool.Pool
}

func NewPostStore(db *pgxpool.Pool) *PostStore {
	return &PostStore{db: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row scanner, extra ...interface{}) (*models.Post, error) {
	var (
		p        models.Post
		landmark *string
		lat, lng *float64
		privacy  string
	)
	dest := []interface{}{
		&p.ID, &p.AuthorID, &p.Emotion, &p.Reason,
		&p.People, &p.Activities,
		&landmark, &lat, &lng,
		&privacy, &p.Timestamp,
		&p.LikesCount, &p.CommentsCount,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	p.Privacy = models.Privacy(privacy)
	if landmark != nil || (lat != nil && lng != nil) {
		p.Location = &models.Location{LandmarkName: landmark}
		if lat != nil && lng != nil {
			p.Location.Point = &models.GeoPoint{Lon: *lng, Lat: *lat}
		}
	}
	return &p, nil
}

func boxArgs(f types.BoxFilter) []interface{} {
	return []interface{}{
		string(f.Privacy), f.Since,
		f.Box.MinLng, f.Box.MinLat, f.Box.MaxLng, f.Box.MaxLat,
	}
}

func (s *PostStore) FindInBox(ctx context.Context, f types.BoxFilter) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE ` + boxWhere + ` ORDER BY "timestamp" DESC`
	args := boxArgs(f)
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

func (s *PostStore) FindNear(ctx context.Context, f types.NearFilter) ([]types.NearHit, error) {
	query := `
		SELECT ` + postColumns + `,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance
		FROM posts
		WHERE privacy = $3
		AND "timestamp" >= $4
		AND location IS NOT NULL
		AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $5)
		ORDER BY distance ASC
		LIMIT $6`

	rows, err := s.db.Query(ctx, query,
		f.Center.Lng, f.Center.Lat, string(f.Privacy), f.Since, f.MaxDistanceMeters, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	hits := make([]types.NearHit, 0)
	for rows.Next() {
		var distance float64
		p, err := scanPost(rows, &distance)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		hits = append(hits, types.NearHit{Post: p, DistanceMeters: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return hits, nil
}

func (s *PostStore) CountByEmotion(ctx context.Context, f types.BoxFilter) (*types.AreaCounts, error) {
	query := `
		SELECT emotion->>'name' AS name, COUNT(*)
		FROM posts
		WHERE ` + boxWhere + `
		GROUP BY emotion->>'name'`

	rows, err := s.db.Query(ctx, query, boxArgs(f)...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	counts := &types.AreaCounts{ByEmotion: make([]types.EmotionCount, 0)}
	for rows.Next() {
		var (
			name  *string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("error scanning group: %w", err)
		}
		ec := types.EmotionCount{Count: count}
		if name != nil {
			ec.Name = *name
		}
		counts.Total += count
		counts.ByEmotion = append(counts.ByEmotion, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}
	return counts, nil
}

func (s *PostStore) FindByID(ctx context.Context, id int64, privacy models.Privacy) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND privacy = $2`

	p, err := scanPost(s.db.QueryRow(ctx, query, id, string(privacy)))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	return p, nil
}

// Ping 启动时的连通性检查
func (s *PostStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.db.Ping(ctx)
}
