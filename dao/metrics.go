package dao

import (
	"context"
	"time"

	"moodmap/models"
	"moodmap/pkg/metrics"
	"moodmap/types"

	"github.com/prometheus/client_golang/prometheus"
)

var storeQueryDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "moodmap_store_query_duration_seconds",
		Help:    "Spatial store query duration in seconds",
		Buckets: metrics.LatencyBuckets,
	},
	[]string{"op", "status"},
)

func init() {
	prometheus.MustRegister(storeQueryDuration)
}

// InstrumentedStore 记录每次存储查询的耗时
type InstrumentedStore struct {
	next SpatialStore
}

func NewInstrumentedStore(next SpatialStore) *InstrumentedStore {
	return &InstrumentedStore{next: next}
}

func observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storeQueryDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) FindInBox(ctx context.Context, f types.BoxFilter) (posts []*models.Post, err error) {
	defer func(start time.Time) { observe("find_in_box", start, err) }(time.Now())
	return s.next.FindInBox(ctx, f)
}

func (s *InstrumentedStore) FindNear(ctx context.Context, f types.NearFilter) (hits []types.NearHit, err error) {
	defer func(start time.Time) { observe("find_near", start, err) }(time.Now())
	return s.next.FindNear(ctx, f)
}

func (s *InstrumentedStore) CountByEmotion(ctx context.Context, f types.BoxFilter) (counts *types.AreaCounts, err error) {
	defer func(start time.Time) { observe("count_by_emotion", start, err) }(time.Now())
	return s.next.CountByEmotion(ctx, f)
}

func (s *InstrumentedStore) FindByID(ctx context.Context, id int64, privacy models.Privacy) (post *models.Post, err error) {
	defer func(start time.Time) { observe("find_by_id", start, err) }(time.Now())
	return s.next.FindByID(ctx, id, privacy)
}
