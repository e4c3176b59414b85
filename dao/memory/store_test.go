package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"moodmap/models"
	"moodmap/pkg/geo"
	"moodmap/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func post(id int64, lat, lng float64, emotion string, privacy models.Privacy, age time.Duration) *models.Post {
	return &models.Post{
		ID:        id,
		AuthorID:  id * 10,
		Emotion:   models.Emotion{Name: emotion},
		Location:  &models.Location{Point: &models.GeoPoint{Lat: lat, Lon: lng}},
		Privacy:   privacy,
		Timestamp: now.Add(-age),
	}
}

func seed() *Store {
	s := NewStore()
	s.PutPost(
		post(1, 34.07, -118.44, "Happy", models.PrivacyPublic, time.Hour),
		post(2, 34.08, -118.43, "Sad", models.PrivacyPublic, 2*time.Hour),
		post(3, 40.0, -74.0, "Happy", models.PrivacyPublic, 3*time.Hour),
		post(4, 34.07, -118.44, "Happy", models.PrivacyPrivate, time.Hour),
		post(5, 34.07, -118.44, "Happy", models.PrivacyPublic, 60*24*time.Hour),
		&models.Post{ID: 6, Privacy: models.PrivacyPublic, Timestamp: now},
	)
	return s
}

var laBox = geo.Box{MinLat: 34, MaxLat: 34.2, MinLng: -118.5, MaxLng: -118.3}

func TestFindInBox(t *testing.T) {
	s := seed()
	posts, err := s.FindInBox(context.Background(), types.BoxFilter{
		Box:     laBox,
		Since:   now.Add(-7 * 24 * time.Hour),
		Privacy: models.PrivacyPublic,
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, int64(2), posts[1].ID)

	posts, err = s.FindInBox(context.Background(), types.BoxFilter{
		Box:     laBox,
		Since:   now.Add(-7 * 24 * time.Hour),
		Privacy: models.PrivacyPublic,
		Limit:   1,
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].ID)
}

func TestFindNear(t *testing.T) {
	s := seed()
	hits, err := s.FindNear(context.Background(), types.NearFilter{
		Center:            geo.Point{Lat: 34.07, Lng: -118.44},
		MaxDistanceMeters: 1000,
		Since:             now.Add(-30 * 24 * time.Hour),
		Privacy:           models.PrivacyPublic,
		Limit:             50,
	})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1), hits[0].Post.ID)
	assert.InDelta(t, 0, hits[0].DistanceMeters, 1e-6)

	hits, err = s.FindNear(context.Background(), types.NearFilter{
		Center:            geo.Point{Lat: 34.07, Lng: -118.44},
		MaxDistanceMeters: 5000,
		Since:             now.Add(-30 * 24 * time.Hour),
		Privacy:           models.PrivacyPublic,
		Limit:             50,
	})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Less(t, hits[0].DistanceMeters, hits[1].DistanceMeters)
}

func TestCountByEmotion(t *testing.T) {
	s := seed()
	s.PutPost(post(7, 34.1, -118.4, "", models.PrivacyPublic, time.Hour))

	counts, err := s.CountByEmotion(context.Background(), types.BoxFilter{
		Box:     laBox,
		Since:   now.Add(-30 * 24 * time.Hour),
		Privacy: models.PrivacyPublic,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, []types.EmotionCount{
		{Name: "", Count: 1},
		{Name: "Happy", Count: 1},
		{Name: "Sad", Count: 1},
	}, counts.ByEmotion)
}

func TestFindByID(t *testing.T) {
	s := seed()
	p, err := s.FindByID(context.Background(), 1, models.PrivacyPublic)
	require.NoError(t, err)
	require.NotNil(t, p)

	p, err = s.FindByID(context.Background(), 4, models.PrivacyPublic)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = s.FindByID(context.Background(), 404, models.PrivacyPublic)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFindAuthors(t *testing.T) {
	s := NewStore()
	s.PutAuthor(10, types.AuthorBrief{ID: "10", DisplayName: "Mia"})

	got, err := s.FindAuthors(context.Background(), []int64{10, 20})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Mia", got[10].DisplayName)
}

func TestLoadFixture(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.LoadFixture(filepath.Join("..", "..", "configs", "fixtures", "posts.json")))
	assert.Equal(t, 4, s.Len())

	p, err := s.FindByID(context.Background(), 1846152332660477952, models.PrivacyPublic)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.LikesCount)
	assert.Equal(t, 1, p.CommentsCount)
	assert.Equal(t, "UCLA", *p.Location.LandmarkName)

	authors, err := s.FindAuthors(context.Background(), []int64{1001})
	require.NoError(t, err)
	assert.Equal(t, "Mia", authors[1001].DisplayName)
}

func TestLoadFixture_Errors(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.LoadFixture(filepath.Join(t.TempDir(), "missing.json")))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"posts": [{"id": "abc"}]}`), 0o644))
	assert.Error(t, s.LoadFixture(path))
}

func TestLoadFixture_GeneratedID(t *testing.T) {
	s := NewStore()
	path := filepath.Join(t.TempDir(), "noid.json")
	content := `{"posts": [
		{"authorId": 1, "emotion": {"name": "Calm"}, "privacy": "public", "timestamp": "2026-10-14T10:00:00Z",
		 "location": {"point": {"lon": 2.35, "lat": 48.85}}},
		{"authorId": 2, "emotion": {"name": "Calm"}, "privacy": "public", "timestamp": "2026-10-14T11:00:00Z",
		 "location": {"point": {"lon": 2.36, "lat": 48.86}}}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, s.LoadFixture(path))
	assert.Equal(t, 2, s.Len())

	posts, err := s.FindInBox(context.Background(), types.BoxFilter{
		Box:     geo.Box{MinLat: 48, MaxLat: 49, MinLng: 2, MaxLng: 3},
		Privacy: models.PrivacyPublic,
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Positive(t, posts[0].ID)
	assert.NotEqual(t, posts[0].ID, posts[1].ID)
}
