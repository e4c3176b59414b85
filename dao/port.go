package dao

import (
	"context"

	"moodmap/models"
	"moodmap/types"
)

// SpatialStore 帖子空间查询端口，所有查询都带隐私条件
type SpatialStore interface {
	// FindInBox 矩形范围内 timestamp >= Since 的帖子，按 timestamp 倒序，Limit<=0 不截断
	FindInBox(ctx context.Context, f types.BoxFilter) ([]*models.Post, error)
	// FindNear 半径范围内的帖子，按距离升序并截断到 Limit
	FindNear(ctx context.Context, f types.NearFilter) ([]types.NearHit, error)
	// CountByEmotion 按情绪名分组计数
	CountByEmotion(ctx context.Context, f types.BoxFilter) (*types.AreaCounts, error)
	// FindByID 不存在或隐私不匹配时返回 nil, nil
	FindByID(ctx context.Context, id int64, privacy models.Privacy) (*models.Post, error)
}

// AuthorDirectory 作者信息查询，查不到的 id 不出现在结果里
type AuthorDirectory interface {
	FindAuthors(ctx context.Context, ids []int64) (map[int64]types.AuthorBrief, error)
}
