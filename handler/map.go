package handler

import (
	"moodmap/config"
	"moodmap/middleware"
	"moodmap/pkg/context"
	"moodmap/pkg/errorx"
	"moodmap/pkg/response"
	"moodmap/service"
	"moodmap/types"

	"github.com/gin-gonic/gin"
)

type Map struct {
	MapService service.IMapService
	Config     *config.Config
}

func (m *Map) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(m.Config.Jwt.Secret))
	g := r.Group("/v1/map", authorize)
	g.GET("/posts", context.Wrap(m.Viewport))
	g.GET("/posts/:id", context.Wrap(m.Detail))
	g.GET("/heatmap", context.Wrap(m.Heatmap))
	g.GET("/nearby/:lat/:lng", context.Wrap(m.Nearby))
	g.GET("/stats", context.Wrap(m.Stats))
}

// Viewport 视口内帖子，cluster=true 时返回聚合点
func (m *Map) Viewport(c *gin.Context) error {
	var q types.ViewportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return errorx.Validation("invalid query: %v", err)
	}

	items, err := m.MapService.Viewport(c.Request.Context(), &q)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (m *Map) Heatmap(c *gin.Context) error {
	var q types.BoundsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return errorx.Validation("invalid query: %v", err)
	}

	cells, err := m.MapService.Heatmap(c.Request.Context(), &q)
	if err != nil {
		return err
	}
	response.Success(c, cells)
	return nil
}

func (m *Map) Detail(c *gin.Context) error {
	view, err := m.MapService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

func (m *Map) Nearby(c *gin.Context) error {
	var q types.NearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return errorx.Validation("invalid query: %v", err)
	}
	q.Lat, q.Lng = c.Param("lat"), c.Param("lng")

	items, err := m.MapService.Nearby(c.Request.Context(), &q)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (m *Map) Stats(c *gin.Context) error {
	var q types.BoundsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return errorx.Validation("invalid query: %v", err)
	}

	stats, err := m.MapService.AreaStats(c.Request.Context(), &q)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}
