package api

import (
	"net/http"
	"strconv"

	"github.com/littlelemon-next/internal/authz"
	"github.com/littlelemon-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// currentUser 读取鉴权中间件注入的当前用户
func currentUser(c *gin.Context) *authz.CurrentUser {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*authz.CurrentUser)
	if !ok {
		return nil
	}
	return user
}

// bindJSON 绑定请求体，失败时返回可直接映射为响应的错误
func bindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return response.WrapError(http.StatusBadRequest, "Invalid request body.", err)
	}
	return nil
}

// parseIDParam 解析路径中的数字 ID，非法时返回 0
func parseIDParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// parseQueryInt 解析查询参数整数，缺省返回 fallback
func parseQueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
