package service

import (
	"context"
	"strconv"
	"strings"

	"moodmap/models"
	"moodmap/pkg/errorx"
	"moodmap/pkg/geo"
	"moodmap/types"
)

// Heatmap 把回看窗口内的公开帖按 gridSize×gridSize 网格分桶
func (s *MapService) Heatmap(ctx context.Context, q *types.BoundsQuery) ([]types.HeatCell, error) {
	box, err := parseBounds(q.SwLat, q.SwLng, q.NeLat, q.NeLng)
	if err != nil {
		return nil, err
	}
	size, err := s.gridSize(q.GridSize)
	if err != nil {
		return nil, err
	}

	if box.LatSpan() == 0 || box.LngSpan() == 0 {
		return []types.HeatCell{}, nil
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	posts, err := s.Store.FindInBox(qctx, types.BoxFilter{
		Box:     box,
		Since:   s.now().Add(-s.geo().AreaLookback),
		Privacy: models.PrivacyPublic,
	})
	if err != nil {
		storeFailed("heatmap", err)
		return nil, errorx.Internal("failed to query heatmap posts", err)
	}

	points := make([]geo.Point, 0, len(posts))
	emotions := make([]string, 0, len(posts))
	index := make([]int, 0, len(posts))
	for i, p := range posts {
		pt, ok := p.Point()
		if !ok {
			continue
		}
		points = append(points, pt)
		emotions = append(emotions, p.Emotion.Name)
		index = append(index, i)
	}

	cells := geo.BucketPoints(box, size, points, emotions)
	out := make([]types.HeatCell, 0, len(cells))
	for _, c := range cells {
		cell := types.HeatCell{
			Lat:       c.Center.Lat,
			Lng:       c.Center.Lng,
			Intensity: c.Intensity(),
		}
		// 与聚合点一致，取第一个携带胜出情绪的成员的完整情绪对象
		if c.Dominant >= 0 {
			emotion := posts[index[c.Dominant]].Emotion
			cell.DominantEmotion = &emotion
		}
		out = append(out, cell)
	}
	return out, nil
}

func (s *MapService) gridSize(raw string) (int, error) {
	conf := s.geo()
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return conf.DefaultGridSize, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errorx.Validation("gridSize must be a positive integer")
	}
	if n > conf.MaxGridSize {
		return 0, errorx.Validation("gridSize must not exceed %d", conf.MaxGridSize)
	}
	return n, nil
}
