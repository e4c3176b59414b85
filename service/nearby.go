package service

import (
	"context"

	"moodmap/models"
	"moodmap/pkg/errorx"
	"moodmap/pkg/geo"
	"moodmap/types"
)

// Nearby 半径内的公开帖，距离以公里返回
func (s *MapService) Nearby(ctx context.Context, q *types.NearbyQuery) ([]types.NearbyItem, error) {
	center, ok := geo.ParseCoordinate(q.Lat, q.Lng)
	if !ok {
		return nil, errorx.Validation("invalid coordinates")
	}

	conf := s.geo()
	limit := parsePositiveInt(q.Limit, conf.NearbyLimit)
	if limit > conf.MaxLimit {
		limit = conf.MaxLimit
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	hits, err := s.Store.FindNear(qctx, types.NearFilter{
		Center:            center,
		MaxDistanceMeters: parsePositiveFloat(q.MaxDistance, conf.NearbyMaxDistance),
		Since:             s.now().Add(-conf.AreaLookback),
		Privacy:           models.PrivacyPublic,
		Limit:             limit,
	})
	if err != nil {
		storeFailed("nearby", err)
		return nil, errorx.Internal("failed to query nearby posts", err)
	}

	posts := make([]*models.Post, len(hits))
	for i, h := range hits {
		posts[i] = h.Post
	}
	authors := s.resolveAuthors(ctx, posts)

	items := make([]types.NearbyItem, len(hits))
	for i, h := range hits {
		items[i] = types.NearbyItem{
			PostView: composePost(h.Post, authors, nil),
			Distance: geo.MetersToKm(h.DistanceMeters),
		}
	}
	return items, nil
}
