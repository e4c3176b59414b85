package mongo

import (
	"testing"
	"time"

	"moodmap/models"
	"moodmap/pkg/geo"
	"moodmap/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPostDocToPost(t *testing.T) {
	name := "UCLA"
	d := &postDoc{
		ID:         1,
		AuthorID:   2,
		Emotion:    models.Emotion{Name: "Happy"},
		Location:   &locationDoc{LandmarkName: &name, Point: &geoJSON{Type: "Point", Coordinates: []float64{-118.44, 34.07}}},
		Privacy:    models.PrivacyPublic,
		LikesCount: 4,
	}

	p := d.toPost()
	require.NotNil(t, p.Location.Point)
	assert.Equal(t, 34.07, p.Location.Point.Lat)
	assert.Equal(t, -118.44, p.Location.Point.Lon)
	assert.Equal(t, 4, p.LikesCount)
	assert.Equal(t, []string{}, p.People)

	d.Location.Point.Coordinates = []float64{1}
	assert.Nil(t, d.toPost().Location.Point)
}

func TestBoxMatch(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := boxMatch(types.BoxFilter{
		Box:     geo.Box{MinLat: 1, MaxLat: 2, MinLng: 3, MaxLng: 4},
		Since:   since,
		Privacy: models.PrivacyPublic,
	})

	require.Len(t, m, 3)
	assert.Equal(t, models.PrivacyPublic, m[0].Value)
	assert.Equal(t, bson.D{{Key: "$gte", Value: since}}, m[1].Value)

	assert.Equal(t, "location.point", m[2].Key)
	within := m[2].Value.(bson.D)[0]
	assert.Equal(t, "$geoWithin", within.Key)
	box := within.Value.(bson.D)[0].Value.(bson.A)
	assert.Equal(t, bson.A{3.0, 1.0}, box[0])
	assert.Equal(t, bson.A{4.0, 2.0}, box[1])
}
