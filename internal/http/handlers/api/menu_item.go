package api

import (
	"net/http"
	"strings"

	"github.com/littlelemon-next/internal/http/response"
	"github.com/littlelemon-next/internal/models"
	"github.com/littlelemon-next/internal/service"

	"github.com/gin-gonic/gin"
)

type menuItemRequest struct {
	Title      string       `json:"title"`
	Price      models.Money `json:"price"`
	CategoryID uint         `json:"category_id"`
	Featured   bool         `json:"featured"`
}

type menuItemPatchRequest struct {
	Title      *string       `json:"title"`
	Price      *models.Money `json:"price"`
	CategoryID *uint         `json:"category_id"`
	Featured   *bool         `json:"featured"`
}

// ListMenuItems 菜品列表（支持标题搜索与分类过滤）
func (h *Handler) ListMenuItems(c *gin.Context) {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		value := strings.EqualFold(raw, "true") || raw == "1"
		featured = &value
	}
	items, _, err := h.MenuItemService.List(service.ListMenuItemsInput{
		Page:       parseQueryInt(c, "page", 1),
		PageSize:   parseQueryInt(c, "page_size", 0),
		CategoryID: uint(parseQueryInt(c, "category", 0)),
		Search:     c.Query("search"),
		Featured:   featured,
	})
	if err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	response.OK(c, items)
}

// GetMenuItem 菜品详情
func (h *Handler) GetMenuItem(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	item, err := h.MenuItemService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	response.OK(c, item)
}

// CreateMenuItem 创建菜品
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	item, err := h.MenuItemService.Create(service.CreateMenuItemInput{
		Title:      req.Title,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
	})
	if err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	response.Created(c, item)
}

// UpdateMenuItem 整体更新菜品
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	var req menuItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	item, err := h.MenuItemService.Update(id, service.UpdateMenuItemInput{
		Title:      &req.Title,
		Price:      &req.Price,
		CategoryID: &req.CategoryID,
		Featured:   &req.Featured,
	})
	if err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	response.OK(c, item)
}

// PatchMenuItem 部分更新菜品
func (h *Handler) PatchMenuItem(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	var req menuItemPatchRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	item, err := h.MenuItemService.Update(id, service.UpdateMenuItemInput{
		Title:      req.Title,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
	})
	if err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	response.OK(c, item)
}

// DeleteMenuItem 删除菜品
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	if err := h.MenuItemService.Delete(id); err != nil {
		respondWithMappedError(c, err, menuItemErrorRules)
		return
	}
	response.Message(c, http.StatusOK, "Deleted.")
}
