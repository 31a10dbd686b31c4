package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wfunc/chain-hunter/internal/errors"
)

// respondOK 成功响应
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError 错误响应。AppError 按错误码映射 HTTP 状态。
func respondError(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Wrap(err, errors.ErrUnknown)
	}
	// 响应里不暴露调用栈
	appErr.Stack = nil
	c.JSON(appErr.HTTPStatus(), errors.NewErrorResponse(appErr, c.GetString("requestID")))
}
