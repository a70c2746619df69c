package middleware

import (
	"creator_insight_backend/internal/util"
	"creator_insight_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenValidator 校验令牌并返回其中的邮箱
type TokenValidator interface {
	CurrentUser(token string) (string, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware 要求有效令牌
func AuthMiddleware(auth TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		email, err := auth.CurrentUser(token)
		if err != nil {
			logger.Log.Debug("token rejected", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUserEmail(c, email)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证，令牌无效时按游客处理
func TryAuthMiddleware(auth TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if email, err := auth.CurrentUser(token); err == nil {
				util.SetUserEmail(c, email)
			}
		}
		c.Next()
	}
}
