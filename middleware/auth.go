package middleware

import (
	"strings"

	"moodmap/pkg/context"
	"moodmap/pkg/errorx"
	"moodmap/pkg/jwt"
	"moodmap/pkg/log"
	"moodmap/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, errorx.Unauthorized("missing Authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, errorx.Unauthorized("invalid Authorization format"))
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, parts[1])
		if err != nil {
			log.L.Debug("token rejected", zap.Error(err))
			response.Abort(c, errorx.Unauthorized("invalid or expired token"))
			return
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
