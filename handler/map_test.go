package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moodmap/config"
	"moodmap/dao/memory"
	"moodmap/models"
	"moodmap/pkg/jwt"
	"moodmap/service"
	"moodmap/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	now := time.Now()
	mem := memory.NewStore()
	mem.PutPost(
		&models.Post{
			ID: 1846152332660477001, AuthorID: 1001,
			Emotion:   models.Emotion{Name: "Happy"},
			Location:  &models.Location{Point: &models.GeoPoint{Lat: 34.07, Lon: -118.44}},
			Privacy:   models.PrivacyPublic,
			Timestamp: now.Add(-time.Hour),
		},
		&models.Post{
			ID: 1846152332660477002, AuthorID: 1002,
			Emotion:   models.Emotion{Name: "Sad"},
			Location:  &models.Location{Point: &models.GeoPoint{Lat: 34.08, Lon: -118.43}},
			Privacy:   models.PrivacyPublic,
			Timestamp: now.Add(-2 * time.Hour),
		},
		&models.Post{
			ID: 1846152332660477003, AuthorID: 1001,
			Emotion:   models.Emotion{Name: "Happy"},
			Location:  &models.Location{Point: &models.GeoPoint{Lat: 34.07, Lon: -118.44}},
			Privacy:   models.PrivacyPrivate,
			Timestamp: now.Add(-time.Hour),
		},
	)
	mem.PutAuthor(1001, types.AuthorBrief{ID: "1001", DisplayName: "Mia"})

	conf := &config.Config{Jwt: &config.Jwt{Secret: secret}, Geo: config.DefaultGeo()}
	h := &Map{
		MapService: &service.MapService{Store: mem, Authors: mem, Config: conf},
		Config:     conf,
	}

	r := gin.New()
	h.RegisterRouter(r.Group("/api"))
	return r
}

func get(t *testing.T, r http.Handler, url string, auth bool) (int, gjson.Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if auth {
		token, err := jwt.GenerateToken([]byte(secret), 42, jwt.TokenTypeAccess, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code, gjson.ParseBytes(w.Body.Bytes())
}

const laBounds = "swLat=34.0&swLng=-118.5&neLat=34.2&neLng=-118.3"

func TestMap_RequiresAuth(t *testing.T) {
	r := newEngine(t)
	code, body := get(t, r, "/api/v1/map/posts?"+laBounds, false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, body.Get("success").Bool())
}

func TestMap_Viewport(t *testing.T) {
	r := newEngine(t)

	code, body := get(t, r, "/api/v1/map/posts?"+laBounds+"&privacy=private", true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Get("success").Bool())
	assert.Equal(t, int64(2), body.Get("data.#").Int())
	assert.Equal(t, "1846152332660477001", body.Get("data.0.id").String())
	assert.Equal(t, "Mia", body.Get("data.0.author.displayName").String())
	assert.Equal(t, gjson.Null, body.Get("data.1.author").Type)
	assert.False(t, body.Get("data.0.distanceKm").Exists())
	assert.False(t, body.Get("data.0.likes").Exists())

	code, body = get(t, r, "/api/v1/map/posts?"+laBounds+"&cluster=true&zoomLevel=5", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Get("data.#").Int())
	assert.Equal(t, "cluster", body.Get("data.0.type").String())
	assert.Equal(t, int64(2), body.Get("data.0.count").Int())
	assert.Equal(t, "Happy", body.Get("data.0.representativeEmotion.name").String())

	code, body = get(t, r, "/api/v1/map/posts?"+laBounds+"&cluster=true&zoomLevel=12", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "single", body.Get("data.0.type").String())
	assert.Equal(t, "1846152332660477001", body.Get("data.0.id").String())
}

func TestMap_ViewportValidation(t *testing.T) {
	r := newEngine(t)
	code, body := get(t, r, "/api/v1/map/posts?swLat=91&swLng=0&neLat=1&neLng=1", true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Get("success").Bool())
	assert.NotEmpty(t, body.Get("error").String())
}

func TestMap_Heatmap(t *testing.T) {
	r := newEngine(t)

	code, body := get(t, r, "/api/v1/map/heatmap?"+laBounds+"&gridSize=2", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Get("data.#").Int())
	assert.Equal(t, int64(2), body.Get("data.0.intensity").Int())
	assert.Equal(t, "Happy", body.Get("data.0.dominantEmotion.name").String())

	code, body = get(t, r, "/api/v1/map/heatmap?swLat=34&swLng=-118.5&neLat=34&neLng=-118.3", true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Get("data").IsArray())
	assert.Equal(t, int64(0), body.Get("data.#").Int())

	code, _ = get(t, r, "/api/v1/map/heatmap?"+laBounds+"&gridSize=0", true)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMap_Nearby(t *testing.T) {
	r := newEngine(t)

	code, body := get(t, r, "/api/v1/map/nearby/34.07/-118.44?maxDistance=1000", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Get("data.#").Int())
	assert.InDelta(t, 0, body.Get("data.0.distance").Float(), 1e-9)

	code, body = get(t, r, "/api/v1/map/nearby/34.07/-118.44", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), body.Get("data.#").Int())
	assert.InDelta(t, 1.43, body.Get("data.1.distance").Float(), 0.05)

	code, _ = get(t, r, "/api/v1/map/nearby/91/0", true)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMap_Stats(t *testing.T) {
	r := newEngine(t)

	code, body := get(t, r, "/api/v1/map/stats?"+laBounds, true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), body.Get("data.totalPosts").Int())
	assert.Equal(t, int64(1), body.Get("data.emotionBreakdown.Happy").Int())
	assert.Equal(t, 0.07, body.Get("data.postsPerDay").Float())

	code, body = get(t, r, "/api/v1/map/stats?swLat=-10&swLng=-10&neLat=-5&neLng=-5", true)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"totalPosts":0,"emotionBreakdown":{},"postsPerDay":0}`, body.Get("data").Raw)
}

func TestMap_Detail(t *testing.T) {
	r := newEngine(t)

	code, body := get(t, r, "/api/v1/map/posts/1846152332660477001", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Happy", body.Get("data.emotion.name").String())

	code, _ = get(t, r, "/api/v1/map/posts/1846152332660477003", true)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, r, "/api/v1/map/posts/not-an-id", true)
	assert.Equal(t, http.StatusBadRequest, code)
}
