package response

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// msgStorageFailure 存储层细节只写日志，不返回给客户端
const msgStorageFailure = "Internal storage error"

// Success 成功时直接返回数据本身
func Success(c *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回 {error: message}
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// BindError 请求体或查询参数无法解析
func BindError(c *gin.Context, err error) {
	log.DebugContext(c.Request.Context(), "bind request failed", "err", err)
	Fail(c, http.StatusBadRequest, "Invalid request body")
}

// Error 按错误类型映射状态码
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		Fail(c, http.StatusForbidden, validationErr.Reason)
		return
	}

	var partialErr *service.PartialWriteError
	if errors.As(err, &partialErr) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.PartialWriteResponse{
			Error: partialErr.Error(),
			ID:    partialErr.BlogID,
		})
		return
	}

	for sentinel, code := range service.ErrorMap {
		if errors.Is(err, sentinel) {
			Fail(c, code, sentinel.Error())
			return
		}
	}

	var storageErr *service.StorageError
	if errors.As(err, &storageErr) {
		log.ErrorContext(c.Request.Context(), "storage failure", "op", storageErr.Op, "err", storageErr.Cause)
		Fail(c, http.StatusInternalServerError, msgStorageFailure)
		return
	}

	log.ErrorContext(c.Request.Context(), "Error", "err", err)
	Fail(c, http.StatusInternalServerError, err.Error())
}
