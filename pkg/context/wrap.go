package context

import (
	"errors"

	"moodmap/pkg/log"
	"moodmap/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			status := response.StatusOf(err)
			if status >= 500 {
				log.L.Error("request failed",
					zap.String("path", c.FullPath()),
					zap.String("request_id", c.GetString(CtxRequestID)),
					zap.Error(err),
				)
			}
			response.Error(c, err)
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}
