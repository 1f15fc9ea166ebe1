package api

import (
	"net/http"

	"github.com/littlelemon-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Title string `json:"title"`
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.OK(c, categories)
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.OK(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	category, err := h.CategoryService.Create(req.Title)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	var req categoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	category, err := h.CategoryService.Update(id, req.Title)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.OK(c, category)
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.Message(c, http.StatusOK, "Deleted.")
}
