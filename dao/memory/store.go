package memory

import (
	"context"
	"sort"

	"moodmap/models"
	"moodmap/pkg/geo"
	"moodmap/types"

	cmap "github.com/orcaman/concurrent-map/v2"
)

func shard(key int64) uint32 {
	return uint32(key) ^ uint32(key>>32)
}

// Store 基于分片并发 map 的内存存储，用于本地开发与测试
type Store struct {
	posts cmap.ConcurrentMap[int64, *models.Post]
	users cmap.ConcurrentMap[int64, types.AuthorBrief]
}

func NewStore() *Store {
	return &Store{
		posts: cmap.NewWithCustomShardingFunction[int64, *models.Post](shard),
		users: cmap.NewWithCustomShardingFunction[int64, types.AuthorBrief](shard),
	}
}

// PutPost 写入或覆盖帖子
func (s *Store) PutPost(posts ...*models.Post) {
	for _, p := range posts {
		s.posts.Set(p.ID, p)
	}
}

func (s *Store) PutAuthor(id int64, brief types.AuthorBrief) {
	s.users.Set(id, brief)
}

func (s *Store) Len() int {
	return s.posts.Count()
}

// scan 遍历满足隐私与时间条件且坐标有效的帖子
func (s *Store) scan(privacy models.Privacy, f func(p *models.Post, pt geo.Point)) {
	for item := range s.posts.IterBuffered() {
		p := item.Val
		if p.Privacy != privacy {
			continue
		}
		pt, ok := p.Point()
		if !ok {
			continue
		}
		f(p, pt)
	}
}

func (s *Store) inBox(f types.BoxFilter) []*models.Post {
	out := make([]*models.Post, 0)
	s.scan(f.Privacy, func(p *models.Post, pt geo.Point) {
		if p.Timestamp.Before(f.Since) || !f.Box.Contains(pt.Lat, pt.Lng) {
			return
		}
		out = append(out, p)
	})
	return out
}

func (s *Store) FindInBox(_ context.Context, f types.BoxFilter) ([]*models.Post, error) {
	posts := s.inBox(f)
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Timestamp.Equal(posts[j].Timestamp) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
	if f.Limit > 0 && len(posts) > f.Limit {
		posts = posts[:f.Limit]
	}
	return posts, nil
}

func (s *Store) FindNear(_ context.Context, f types.NearFilter) ([]types.NearHit, error) {
	hits := make([]types.NearHit, 0)
	s.scan(f.Privacy, func(p *models.Post, pt geo.Point) {
		if p.Timestamp.Before(f.Since) {
			return
		}
		meters := geo.DistanceKm(f.Center.Lat, f.Center.Lng, pt.Lat, pt.Lng) * 1000
		if meters > f.MaxDistanceMeters {
			return
		}
		hits = append(hits, types.NearHit{Post: p, DistanceMeters: meters})
	})

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].DistanceMeters == hits[j].DistanceMeters {
			return hits[i].Post.ID < hits[j].Post.ID
		}
		return hits[i].DistanceMeters < hits[j].DistanceMeters
	})
	if f.Limit > 0 && len(hits) > f.Limit {
		hits = hits[:f.Limit]
	}
	return hits, nil
}

func (s *Store) CountByEmotion(_ context.Context, f types.BoxFilter) (*types.AreaCounts, error) {
	posts := s.inBox(f)
	groups := make(map[string]int)
	for _, p := range posts {
		groups[p.Emotion.Name]++
	}

	counts := &types.AreaCounts{Total: len(posts), ByEmotion: make([]types.EmotionCount, 0, len(groups))}
	for name, n := range groups {
		counts.ByEmotion = append(counts.ByEmotion, types.EmotionCount{Name: name, Count: n})
	}
	sort.Slice(counts.ByEmotion, func(i, j int) bool {
		return counts.ByEmotion[i].Name < counts.ByEmotion[j].Name
	})
	return counts, nil
}

func (s *Store) FindByID(_ context.Context, id int64, privacy models.Privacy) (*models.Post, error) {
	p, ok := s.posts.Get(id)
	if !ok || p.Privacy != privacy {
		return nil, nil
	}
	return p, nil
}

func (s *Store) FindAuthors(_ context.Context, ids []int64) (map[int64]types.AuthorBrief, error) {
	out := make(map[int64]types.AuthorBrief, len(ids))
	for _, id := range ids {
		if brief, ok := s.users.Get(id); ok {
			out[id] = brief
		}
	}
	return out, nil
}
