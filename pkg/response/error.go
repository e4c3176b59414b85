package response

import (
	"errors"
	"net/http"

	"moodmap/pkg/errorx"
	"moodmap/pkg/log"
	"moodmap/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CtxErrorKind 写出错误响应时记录的错误分类，供指标中间件打标签
const CtxErrorKind = "error_kind"

// StatusOf 错误到 HTTP 状态码的映射
func StatusOf(err error) int {
	switch errorx.KindOf(err) {
	case errorx.KindValidation:
		return http.StatusBadRequest
	case errorx.KindNotFound:
		return http.StatusNotFound
	case errorx.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error 按错误分类写出响应
func Error(c *gin.Context, err error) {
	status := StatusOf(err)
	c.Set(CtxErrorKind, errorx.KindOf(err).String())

	var (
		xe  *errorx.Error
		msg = err.Error()
		det string
	)
	if errors.As(err, &xe) {
		msg, det = xe.Msg, xe.Details()
	}
	Fail(c, status, msg, det)
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Success: false,
					Error:   "internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Error(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}

// Abort 中间件里直接结束请求，按错误分类写出响应
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
