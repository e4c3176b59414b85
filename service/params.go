package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"moodmap/pkg/errorx"
	"moodmap/pkg/geo"
)

var sinceLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseBounds 四个边界值缺一不可，角点可以任意对角顺序
func parseBounds(swLat, swLng, neLat, neLng string) (geo.Box, error) {
	for _, v := range []string{swLat, swLng, neLat, neLng} {
		if strings.TrimSpace(v) == "" {
			return geo.Box{}, errorx.Validation("missing required bounds: swLat, swLng, neLat, neLng")
		}
	}

	sw, ok := geo.ParseCoordinate(swLat, swLng)
	if !ok {
		return geo.Box{}, errorx.Validation("invalid coordinates for sw corner")
	}
	ne, ok := geo.ParseCoordinate(neLat, neLng)
	if !ok {
		return geo.Box{}, errorx.Validation("invalid coordinates for ne corner")
	}
	return geo.NormalizeBounds(sw, ne), nil
}

// parseSince 缺省或无法解析时回落到 now - lookback
func parseSince(s string, now time.Time, lookback time.Duration) time.Time {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range sinceLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return now.Add(-lookback)
}

// parsePositiveInt 非正数或无法解析时返回 def
func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parsePositiveFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
