package service

import (
	"context"

	"moodmap/models"
	"moodmap/pkg/errorx"
	"moodmap/pkg/geo"
	"moodmap/types"
)

// AreaStats 区域内回看窗口的情绪分布与日均发帖量
func (s *MapService) AreaStats(ctx context.Context, q *types.BoundsQuery) (*types.AreaStats, error) {
	box, err := parseBounds(q.SwLat, q.SwLng, q.NeLat, q.NeLng)
	if err != nil {
		return nil, err
	}

	conf := s.geo()
	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	counts, err := s.Store.CountByEmotion(qctx, types.BoxFilter{
		Box:     box,
		Since:   s.now().Add(-conf.AreaLookback),
		Privacy: models.PrivacyPublic,
	})
	if err != nil {
		storeFailed("stats", err)
		return nil, errorx.Internal("failed to query area stats", err)
	}

	stats := &types.AreaStats{EmotionBreakdown: map[string]int{}}
	if counts == nil || counts.Total == 0 {
		return stats, nil
	}

	stats.TotalPosts = counts.Total
	for _, g := range counts.ByEmotion {
		// 没有情绪名的帖子只计入总数
		if g.Name == "" {
			continue
		}
		stats.EmotionBreakdown[g.Name] += g.Count
	}
	days := conf.AreaLookback.Hours() / 24
	stats.PostsPerDay = geo.RoundTo(float64(counts.Total)/days, 2)
	return stats, nil
}
