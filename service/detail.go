package service

import (
	"context"

	"moodmap/models"
	"moodmap/pkg/errorx"
	"moodmap/pkg/snowflake"
	"moodmap/types"
)

// Detail 地图标记点击后的帖子详情，非公开帖视为不存在
func (s *MapService) Detail(ctx context.Context, id string) (*types.PostView, error) {
	postID, err := snowflake.ParseID(id)
	if err != nil {
		return nil, errorx.Validation("invalid post id")
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	post, err := s.Store.FindByID(qctx, postID, models.PrivacyPublic)
	if err != nil {
		storeFailed("detail", err)
		return nil, errorx.Internal("failed to query post", err)
	}
	if post == nil {
		return nil, errorx.NotFound("post not found")
	}

	view := composePost(post, s.resolveAuthors(ctx, []*models.Post{post}), nil)
	return &view, nil
}
