package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"moodmap/models"
	"moodmap/pkg/errorx"
	"moodmap/pkg/geo"
	"moodmap/pkg/utils"
	"moodmap/types"
)

// Viewport 视口查询。cluster=true 且缩放级别低于上限时返回聚合结果，否则返回平铺列表
func (s *MapService) Viewport(ctx context.Context, q *types.ViewportQuery) ([]any, error) {
	box, err := parseBounds(q.SwLat, q.SwLng, q.NeLat, q.NeLng)
	if err != nil {
		return nil, err
	}

	conf := s.geo()
	var center *geo.Point
	if q.CenterLat != "" && q.CenterLng != "" {
		if pt, ok := geo.ParseCoordinate(q.CenterLat, q.CenterLng); ok {
			center = &pt
		}
	}

	limit := parsePositiveInt(q.Limit, conf.DefaultLimit)
	if limit > conf.MaxLimit {
		limit = conf.MaxLimit
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	// 地图只展示公开帖，忽略调用方传入的 privacy
	posts, err := s.Store.FindInBox(qctx, types.BoxFilter{
		Box:     box,
		Since:   parseSince(q.Since, s.now(), conf.ViewportLookback),
		Privacy: models.PrivacyPublic,
		Limit:   limit,
	})
	if err != nil {
		storeFailed("viewport", err)
		return nil, errorx.Internal("failed to query posts", err)
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}

	authors := s.resolveAuthors(ctx, posts)
	views := make([]types.PostView, len(posts))
	for i, p := range posts {
		views[i] = composePost(p, authors, center)
	}

	if zoom, ok := s.clusterZoom(q); ok {
		return s.cluster(posts, views, zoom), nil
	}

	items := make([]any, len(views))
	for i := range views {
		items[i] = views[i]
	}
	return items, nil
}

// clusterZoom 只有 cluster=true 且 zoom 为整数、低于 cluster_max_zoom 时才聚合。
// 负数 zoom 合法，半径按 50/2^zoom 继续放大
func (s *MapService) clusterZoom(q *types.ViewportQuery) (int, bool) {
	if !strings.EqualFold(strings.TrimSpace(q.Cluster), "true") {
		return 0, false
	}
	conf := s.geo()

	zoom := conf.Zoom()
	if raw := strings.TrimSpace(q.ZoomLevel); raw != "" {
		z, err := strconv.Atoi(raw)
		if err != nil {
			return 0, false
		}
		zoom = z
	}
	if zoom >= conf.ClusterMaxZoom {
		return 0, false
	}
	return zoom, true
}

func (s *MapService) cluster(posts []*models.Post, views []types.PostView, zoom int) []any {
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

	clusters := geo.ClusterPoints(points, emotions, zoom)
	items := make([]any, 0, len(clusters))
	for _, c := range clusters {
		if c.Count() == 1 {
			items = append(items, types.SingleItem{
				Type:     types.ItemTypeSingle,
				PostView: views[index[c.Members[0]]],
			})
			continue
		}

		item := types.ClusterItem{
			Type:     types.ItemTypeCluster,
			ID:       s.clusterID(c),
			Centroid: types.LatLng{Lat: c.Centroid.Lat, Lng: c.Centroid.Lng},
			Count:    c.Count(),
		}
		if c.Dominant >= 0 {
			emotion := posts[index[c.Dominant]].Emotion
			item.RepresentativeEmotion = &emotion
		}
		items = append(items, item)
	}
	return items
}

// clusterID 由四位小数的质心和成员数确定，相同输入得到相同 id
func (s *MapService) clusterID(c geo.Cluster) string {
	lat := int64(math.Round(geo.RoundTo(c.Centroid.Lat, 4)*1e4)) + 900000
	lng := int64(math.Round(geo.RoundTo(c.Centroid.Lng, 4)*1e4)) + 1800000
	return utils.GenHashID(s.geo().ClusterSalt, lat, lng, int64(c.Count()))
}
