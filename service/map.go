package service

import (
	"context"
	"time"

	"moodmap/config"
	"moodmap/dao"
	"moodmap/models"
	"moodmap/pkg/log"
	"moodmap/types"

	"go.uber.org/zap"
)

var _ IMapService = (*MapService)(nil)

type IMapService interface {
	// Viewport 视口内的帖子，按需聚合
	Viewport(ctx context.Context, q *types.ViewportQuery) ([]any, error)
	// Heatmap 视口热力网格
	Heatmap(ctx context.Context, q *types.BoundsQuery) ([]types.HeatCell, error)
	// Nearby 附近帖子，按距离升序
	Nearby(ctx context.Context, q *types.NearbyQuery) ([]types.NearbyItem, error)
	// AreaStats 区域情绪统计
	AreaStats(ctx context.Context, q *types.BoundsQuery) (*types.AreaStats, error)
	// Detail 单条公开帖子
	Detail(ctx context.Context, id string) (*types.PostView, error)
}

type MapService struct {
	Store   dao.SpatialStore
	Authors dao.AuthorDirectory
	Config  *config.Config

	// Now 可替换的时钟，默认 time.Now
	Now func() time.Time `wire:"-"`
}

func (s *MapService) geo() *config.Geo {
	if s.Config == nil || s.Config.Geo == nil {
		return config.DefaultGeo()
	}
	return s.Config.Geo
}

func (s *MapService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// queryCtx 给存储调用加上超时
func (s *MapService) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.geo().QueryTimeout)
}

// resolveAuthors 查不到的作者留空，查询失败只记日志
func (s *MapService) resolveAuthors(ctx context.Context, posts []*models.Post) map[int64]types.AuthorBrief {
	if s.Authors == nil || len(posts) == 0 {
		return map[int64]types.AuthorBrief{}
	}

	seen := make(map[int64]struct{}, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		ids = append(ids, p.AuthorID)
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	authors, err := s.Authors.FindAuthors(qctx, ids)
	if err != nil {
		log.L.Warn("resolve authors failed", zap.Int("count", len(ids)), zap.Error(err))
		return map[int64]types.AuthorBrief{}
	}
	return authors
}

func storeFailed(op string, err error) {
	log.L.Error("store query failed", zap.String("op", op), zap.Error(err))
}
