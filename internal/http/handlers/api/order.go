package api

import (
	"encoding/json"
	"net/http"

	"github.com/littlelemon-next/internal/http/response"
	"github.com/littlelemon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 订单列表（按角色裁剪可见范围，支持状态过滤）
func (h *Handler) ListOrders(c *gin.Context) {
	user := currentUser(c)
	orders, _, err := h.OrderService.List(service.ListOrdersInput{
		Actor:    service.OrderActor{UserID: user.ID, Role: user.Role},
		Status:   c.Query("status"),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 0),
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, toOrderResponses(orders))
}

// PlaceOrder 下单：购物车整单转订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	user := currentUser(c)
	order, err := h.OrderService.Place(user.ID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Created(c, toOrderResponse(*order))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	user := currentUser(c)
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	order, err := h.OrderService.Get(id, service.OrderActor{UserID: user.ID, Role: user.Role})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, toOrderResponse(*order))
}

// UpdateOrder 更新订单状态或配送员
func (h *Handler) UpdateOrder(c *gin.Context) {
	user := currentUser(c)
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}

	var raw map[string]json.RawMessage
	if err := bindJSON(c, &raw); err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	input := service.UpdateOrderInput{}
	if value, ok := raw["status"]; ok {
		var status string
		if err := json.Unmarshal(value, &status); err != nil {
			response.BadRequest(c, "Invalid status.")
			return
		}
		input.Status = &status
	}
	if value, ok := raw["delivery_crew_id"]; ok {
		input.DeliveryCrewSet = true
		if string(value) != "null" {
			var crewID uint
			if err := json.Unmarshal(value, &crewID); err != nil {
				response.BadRequest(c, "Invalid delivery_crew_id.")
				return
			}
			input.DeliveryCrewID = &crewID
		}
	}

	order, err := h.OrderService.Update(id, service.OrderActor{UserID: user.ID, Role: user.Role}, input)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, toOrderResponse(*order))
}

// DeleteOrder 删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	user := currentUser(c)
	id := parseIDParam(c, "id")
	if id == 0 {
		response.NotFound(c, "Not found.")
		return
	}
	if err := h.OrderService.Delete(id, service.OrderActor{UserID: user.ID, Role: user.Role}); err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Message(c, http.StatusOK, "Deleted.")
}
