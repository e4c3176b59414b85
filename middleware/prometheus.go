package middleware

import (
	"strconv"
	"time"

	"moodmap/pkg/metrics"
	"moodmap/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodmap_http_requests_total",
			Help: "HTTP requests by route group, route, status and error kind",
		},
		[]string{"group", "route", "status", "kind"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodmap_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: metrics.LatencyBuckets,
		},
		[]string{"group", "route"},
	)

	httpInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodmap_http_in_flight_requests",
			Help: "HTTP requests currently being served",
		},
		[]string{"group"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpInFlight)
}

// PrometheusMiddleware 按路由模板统计，坐标等路径参数不会进入标签
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		route := c.FullPath()
		group := metrics.RouteGroup(route)
		if route == "" {
			route = "unknown"
		}

		inFlight := httpInFlight.WithLabelValues(group)
		inFlight.Inc()
		defer inFlight.Dec()

		c.Next()

		// 成功响应没有错误分类
		kind := c.GetString(response.CtxErrorKind)
		if kind == "" {
			kind = "none"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(group, route, status, kind).Inc()
		httpRequestDuration.WithLabelValues(group, route).Observe(time.Since(start).Seconds())
	}
}
