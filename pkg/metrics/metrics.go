package metrics

import "strings"

// LatencyBuckets HTTP 与存储查询共用的耗时分桶（秒）
var LatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// RouteGroup 取路由模板中的业务分组，例如 /api/v1/map/posts/:id -> map。
// 未匹配到路由时为 unknown
func RouteGroup(route string) string {
	if route == "" {
		return "unknown"
	}
	segs := strings.Split(strings.Trim(route, "/"), "/")
	for i := 0; i < len(segs); i++ {
		s := segs[i]
		if s == "api" || (len(s) > 1 && s[0] == 'v' && s[1] >= '0' && s[1] <= '9') {
			continue
		}
		if s == "" || s[0] == ':' || s[0] == '*' {
			break
		}
		return s
	}
	return "root"
}
