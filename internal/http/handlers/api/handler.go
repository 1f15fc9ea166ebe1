package api

import "github.com/littlelemon-next/internal/provider"

// Handler REST 接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
