package dao

import (
	"context"
	"testing"
	"time"

	"moodmap/dao/memory"
	"moodmap/models"
	"moodmap/pkg/geo"
	"moodmap/types"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedStore(t *testing.T) {
	mem := memory.NewStore()
	mem.PutPost(&models.Post{
		ID:        1,
		Privacy:   models.PrivacyPublic,
		Location:  &models.Location{Point: &models.GeoPoint{Lat: 1, Lon: 1}},
		Timestamp: time.Now(),
	})
	s := NewInstrumentedStore(mem)

	before := testutil.CollectAndCount(storeQueryDuration)
	posts, err := s.FindInBox(context.Background(), types.BoxFilter{
		Box:     geo.Box{MinLat: 0, MaxLat: 2, MinLng: 0, MaxLng: 2},
		Since:   time.Now().Add(-time.Hour),
		Privacy: models.PrivacyPublic,
	})
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	p, err := s.FindByID(context.Background(), 1, models.PrivacyPublic)
	require.NoError(t, err)
	assert.NotNil(t, p)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(storeQueryDuration), before+1)
}
