package util

import (
	"creator_insight_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 错误响应结构，成功时直接返回数据本身
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const DataSourceHeader = "X-Data-Source"

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessFrom 与 Success 相同，同时在响应头中标注数据来源
func SuccessFrom(c *gin.Context, source string, data interface{}) {
	if source != "" {
		c.Header(DataSourceHeader, source)
	}
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", c.FullPath()))
	InternalServerError(c)
}
