package controller

import (
	"creator_insight_backend/internal/service"
	"creator_insight_backend/internal/util"
	"creator_insight_backend/pkg/logger"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respond 写出结果；回退到演示数据时记录原因，请求本身不失败
func respond[T any](ctx *gin.Context, r service.Result[T]) {
	if r.IsFallback() && r.Reason != nil {
		fields := []zap.Field{zap.String("path", ctx.FullPath()), zap.Error(r.Reason)}
		if errors.Is(r.Reason, util.ErrNotFound) {
			logger.Log.Debug("serving fallback payload", fields...)
		} else {
			logger.Log.Warn("serving fallback payload", fields...)
		}
	}
	util.SuccessFrom(ctx, r.Source, r.Data)
}
