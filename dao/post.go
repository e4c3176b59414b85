package dao

import (
	"context"

	"moodmap/models"
	"moodmap/types"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.PostRecord]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.PostRecord](db)}
}

func (d *PostDAO) boxScope(f types.BoxFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("privacy = ?", f.Privacy).
			Where("timestamp >= ?", f.Since).
			Where("lat IS NOT NULL AND lng IS NOT NULL").
			Where("lat BETWEEN ? AND ?", f.Box.MinLat, f.Box.MaxLat).
			Where("lng BETWEEN ? AND ?", f.Box.MinLng, f.Box.MaxLng)
	}
}

// FindInBox 视口范围查询
func (d *PostDAO) FindInBox(ctx context.Context, f types.BoxFilter) ([]*models.Post, error) {
	var records []*models.PostRecord
	q := d.Db.WithContext(ctx).
		Scopes(d.boxScope(f)).
		Order("timestamp DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, r.ToPost())
	}
	return posts, nil
}

type nearRow struct {
	models.PostRecord
	Distance float64 `gorm:"column:distance"`
}

// FindNear 使用 ST_Distance_Sphere 计算球面距离（米）
func (d *PostDAO) FindNear(ctx context.Context, f types.NearFilter) ([]types.NearHit, error) {
	const distance = "ST_Distance_Sphere(POINT(lng, lat), POINT(?, ?))"

	var rows []*nearRow
	err := d.Db.WithContext(ctx).
		Model(&models.PostRecord{}).
		Select("posts.*, "+distance+" AS distance", f.Center.Lng, f.Center.Lat).
		Where("privacy = ?", f.Privacy).
		Where("timestamp >= ?", f.Since).
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Where(distance+" <= ?", f.Center.Lng, f.Center.Lat, f.MaxDistanceMeters).
		Order("distance ASC").
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	hits := make([]types.NearHit, 0, len(rows))
	for _, r := range rows {
		hits = append(hits, types.NearHit{Post: r.ToPost(), DistanceMeters: r.Distance})
	}
	return hits, nil
}

type emotionRow struct {
	Name  *string `gorm:"column:name"`
	Total int     `gorm:"column:total"`
}

// CountByEmotion 总数与分组计数并发执行
func (d *PostDAO) CountByEmotion(ctx context.Context, f types.BoxFilter) (*types.AreaCounts, error) {
	var (
		total int64
		rows  []*emotionRow
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return d.Db.WithContext(ctx).
			Model(&models.PostRecord{}).
			Scopes(d.boxScope(f)).
			Count(&total).Error
	})
	eg.Go(func() error {
		return d.Db.WithContext(ctx).
			Model(&models.PostRecord{}).
			Select("JSON_UNQUOTE(JSON_EXTRACT(emotion, '$.name')) AS name, COUNT(*) AS total").
			Scopes(d.boxScope(f)).
			Group("name").
			Find(&rows).Error
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	counts := &types.AreaCounts{Total: int(total), ByEmotion: make([]types.EmotionCount, 0, len(rows))}
	for _, r := range rows {
		name := ""
		if r.Name != nil {
			name = *r.Name
		}
		counts.ByEmotion = append(counts.ByEmotion, types.EmotionCount{Name: name, Count: r.Total})
	}
	return counts, nil
}

func (d *PostDAO) FindByID(ctx context.Context, id int64, privacy models.Privacy) (*models.Post, error) {
	record, err := d.Repo.FindById(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	if record.Privacy != privacy {
		return nil, nil
	}
	return record.ToPost(), nil
}
