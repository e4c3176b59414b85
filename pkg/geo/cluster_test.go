package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterRadiusKm(t *testing.T) {
	assert.InDelta(t, 50.0, ClusterRadiusKm(0), 1e-9)
	assert.InDelta(t, 50.0/32, ClusterRadiusKm(5), 1e-9)
	// 50/1024 ≈ 0.0488，被下限截断
	assert.Equal(t, MinClusterRadiusKm, ClusterRadiusKm(10))
	assert.Equal(t, MinClusterRadiusKm, ClusterRadiusKm(20))
}

// 两点相距约 10km
var tenKmApart = []Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.0899}}

func TestClusterPoints_MergeAtLowZoom(t *testing.T) {
	require.InDelta(t, 10, DistanceKm(0, 0, 0, 0.0899), 0.05)

	clusters := ClusterPoints(tenKmApart, []string{"Happy", "Sad"}, 0)
	require.Len(t, clusters, 1)
	assert.Equal(t, 2, clusters[0].Count())
	assert.InDelta(t, 0.04495, clusters[0].Centroid.Lng, 1e-9)
	assert.Equal(t, 0.0, clusters[0].Centroid.Lat)
}

func TestClusterPoints_SplitAtHighZoom(t *testing.T) {
	clusters := ClusterPoints(tenKmApart, []string{"Happy", "Sad"}, 10)
	require.Len(t, clusters, 2)
	for _, c := range clusters {
		assert.Equal(t, 1, c.Count())
	}
	assert.Equal(t, []int{0}, clusters[0].Members)
	assert.Equal(t, []int{1}, clusters[1].Members)
}

func TestClusterPoints_AnchorOnly(t *testing.T) {
	// 半径 50km；B 距 A 40km，C 距 B 40km 但距 A 80km
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 0.3597}
	c := Point{Lat: 0, Lng: 0.7194}

	clusters := ClusterPoints([]Point{a, b, c}, nil, 0)
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 1}, clusters[0].Members)
	assert.Equal(t, []int{2}, clusters[1].Members)
}

func TestClusterPoints_CountsSumToInput(t *testing.T) {
	points := []Point{
		{34.07, -118.44}, {34.08, -118.43}, {40.0, -74.0},
		{40.01, -74.01}, {51.5, -0.12}, {34.0701, -118.4401},
	}
	for zoom := 0; zoom <= 16; zoom++ {
		total := 0
		for _, c := range ClusterPoints(points, nil, zoom) {
			total += c.Count()
		}
		assert.Equal(t, len(points), total, "zoom=%d", zoom)
	}
}

func TestClusterPoints_DominantFirstSeen(t *testing.T) {
	points := []Point{{34.07, -118.44}, {34.08, -118.43}}
	clusters := ClusterPoints(points, []string{"Happy", "Sad"}, 5)
	require.Len(t, clusters, 1)
	assert.Equal(t, "Happy", clusters[0].DominantEmotion)
	assert.Equal(t, 0, clusters[0].Dominant)
}

func TestClusterPoints_Empty(t *testing.T) {
	assert.Empty(t, ClusterPoints(nil, nil, 3))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 34.0751, RoundTo(34.07505001, 4))
	assert.Equal(t, 0.33, RoundTo(10.0/30, 2))
}
