package metrics

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	cases := map[string]string{
		"/api/v1/map/posts":            "map",
		"/api/v1/map/posts/:id":        "map",
		"/api/v1/map/nearby/:lat/:lng": "map",
		"/health":                      "health",
		"/metrics":                     "metrics",
		"/api/v1":                      "root",
		"/":                            "root",
		"/:id":                         "root",
		"":                             "unknown",
	}
	for route, want := range cases {
		assert.Equal(t, want, RouteGroup(route), route)
	}
}

func TestLatencyBucketsSorted(t *testing.T) {
	assert.True(t, sort.Float64sAreSorted(LatencyBuckets))
}
