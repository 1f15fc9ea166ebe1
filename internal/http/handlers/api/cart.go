package api

import (
	"fmt"
	"net/http"

	"github.com/littlelemon-next/internal/http/response"
	"github.com/littlelemon-next/internal/service"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	MenuItemID uint `json:"menuitem_id"`
	Quantity   int  `json:"quantity"`
}

type updateCartItemRequest struct {
	MenuItemID *uint `json:"menuitem_id"`
	Quantity   int   `json:"quantity"`
}

// ListCartItems 当前用户购物车
func (h *Handler) ListCartItems(c *gin.Context) {
	user := currentUser(c)
	items, err := h.CartService.ListByUser(user.ID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, toCartItemResponses(items))
}

// AddCartItem 加购
func (h *Handler) AddCartItem(c *gin.Context) {
	user := currentUser(c)
	var req addCartItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	item, err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:     user.ID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.Created(c, toCartItemResponse(*item))
}

// GetCartItem 购物车行详情
func (h *Handler) GetCartItem(c *gin.Context) {
	user := currentUser(c)
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	item, err := h.CartService.GetItem(user.ID, id)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, toCartItemResponse(*item))
}

// UpdateCartItem 更新购物车行
func (h *Handler) UpdateCartItem(c *gin.Context) {
	user := currentUser(c)
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	var req updateCartItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	item, err := h.CartService.UpdateItem(service.UpdateCartItemInput{
		UserID:     user.ID,
		ItemID:     id,
		Quantity:   req.Quantity,
		MenuItemID: req.MenuItemID,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, toCartItemResponse(*item))
}

// RemoveCartItem 删除购物车行
func (h *Handler) RemoveCartItem(c *gin.Context) {
	user := currentUser(c)
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	if err := h.CartService.RemoveItem(user.ID, id); err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.Message(c, http.StatusOK, "Deleted.")
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	user := currentUser(c)
	deleted, err := h.CartService.Clear(user.ID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, response.Detail{
		Detail: fmt.Sprintf("Successfully cleared %d item(s) from the cart.", deleted),
	})
}
