package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestPostPoint(t *testing.T) {
	p := &Post{}
	_, ok := p.Point()
	assert.False(t, ok)

	p.Location = &Location{Point: &GeoPoint{Lon: -118.44, Lat: 34.07}}
	pt, ok := p.Point()
	assert.True(t, ok)
	assert.Equal(t, 34.07, pt.Lat)
	assert.Equal(t, -118.44, pt.Lng)

	p.Location.Point.Lat = 91
	_, ok = p.Point()
	assert.False(t, ok)
}

func TestPostRecordToPost(t *testing.T) {
	lat, lng := 34.07, -118.44
	r := &PostRecord{
		ID:       7,
		AuthorID: 3,
		Emotion:  datatypes.NewJSONType(Emotion{Name: "Happy"}),
		Lat:      &lat,
		Lng:      &lng,
		Privacy:  PrivacyPublic,
		Likes:    datatypes.JSON(`[1, 2, 3]`),
		Comments: datatypes.JSON(`[{"authorId": 1, "content": "hi"}]`),
	}

	p := r.ToPost()
	assert.Equal(t, "Happy", p.Emotion.Name)
	assert.Equal(t, 3, p.LikesCount)
	assert.Equal(t, 1, p.CommentsCount)
	assert.Equal(t, []string{}, p.People)
	assert.NotNil(t, p.Location)
	assert.Equal(t, -118.44, p.Location.Point.Lon)

	empty := (&PostRecord{}).ToPost()
	assert.Nil(t, empty.Location)
	assert.Zero(t, empty.LikesCount)
}
