package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moodmap/pkg/log"
	"moodmap/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 作者信息缓存默认过期时间
const authorExpireAt = 10 * time.Minute

// AuthorSource 缓存未命中时的回源
type AuthorSource interface {
	FindAuthors(ctx context.Context, ids []int64) (map[int64]types.AuthorBrief, error)
}

// AuthorStorage 作者简要信息的 read-through 缓存，redis 为 nil 时直接回源
type AuthorStorage struct {
	redis  *redis.Client
	source AuthorSource
	ttl    time.Duration
}

func NewAuthorStorage(rds *redis.Client, source AuthorSource, ttl time.Duration) *AuthorStorage {
	if ttl <= 0 {
		ttl = authorExpireAt
	}
	return &AuthorStorage{redis: rds, source: source, ttl: ttl}
}

func (a *AuthorStorage) FindAuthors(ctx context.Context, ids []int64) (map[int64]types.AuthorBrief, error) {
	if a.redis == nil || len(ids) == 0 {
		return a.source.FindAuthors(ctx, ids)
	}

	out := make(map[int64]types.AuthorBrief, len(ids))
	misses := a.batchGet(ctx, ids, out)
	if len(misses) == 0 {
		return out, nil
	}

	found, err := a.source.FindAuthors(ctx, misses)
	if err != nil {
		return nil, err
	}
	for id, brief := range found {
		out[id] = brief
	}
	a.batchSet(ctx, found)
	return out, nil
}

// batchGet 命中项写入 out，返回未命中的 id；redis 出错时全部视为未命中
func (a *AuthorStorage) batchGet(ctx context.Context, ids []int64, out map[int64]types.AuthorBrief) []int64 {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = a.name(id)
	}

	values, err := a.redis.MGet(ctx, keys...).Result()
	if err != nil {
		log.L.Warn("author cache get failed", zap.Error(err))
		return ids
	}

	misses := make([]int64, 0)
	for i, v := range values {
		text, ok := v.(string)
		if !ok {
			misses = append(misses, ids[i])
			continue
		}
		var brief types.AuthorBrief
		if err := json.Unmarshal([]byte(text), &brief); err != nil {
			misses = append(misses, ids[i])
			continue
		}
		out[ids[i]] = brief
	}
	return misses
}

func (a *AuthorStorage) batchSet(ctx context.Context, found map[int64]types.AuthorBrief) {
	if len(found) == 0 {
		return
	}
	pipe := a.redis.Pipeline()
	for id, brief := range found {
		text, err := json.Marshal(brief)
		if err != nil {
			continue
		}
		pipe.Set(ctx, a.name(id), text, a.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.L.Warn("author cache set failed", zap.Error(err))
	}
}

// moodmap:author:<id>
func (a *AuthorStorage) name(id int64) string {
	return fmt.Sprintf("moodmap:author:%d", id)
}
