package api

import (
	"github.com/littlelemon-next/internal/models"
)

// cartItemResponse 购物车行响应体
// unit_price 展示菜品当前价格，price 为加购时冻结的行金额
type cartItemResponse struct {
	ID        uint         `json:"id"`
	User      uint         `json:"user"`
	MenuItem  string       `json:"menuitem"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Price     models.Money `json:"price"`
}

func toCartItemResponse(item models.CartItem) cartItemResponse {
	resp := cartItemResponse{
		ID:        item.ID,
		User:      item.UserID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Price:     item.Price,
	}
	if item.MenuItem != nil {
		resp.MenuItem = item.MenuItem.Title
		resp.UnitPrice = item.MenuItem.Price
	}
	return resp
}

func toCartItemResponses(items []models.CartItem) []cartItemResponse {
	responses := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toCartItemResponse(item))
	}
	return responses
}

// orderItemResponse 订单行响应体
type orderItemResponse struct {
	ID        uint         `json:"id"`
	MenuItem  string       `json:"menuitem"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Price     models.Money `json:"price"`
}

// orderResponse 订单响应体
type orderResponse struct {
	ID           uint                `json:"id"`
	User         string              `json:"user"`
	DeliveryCrew *string             `json:"delivery_crew"`
	OrderItems   []orderItemResponse `json:"order_items"`
	Status       string              `json:"status"`
	Total        models.Money        `json:"total"`
	Date         string              `json:"date"`
}

func toOrderResponse(order models.Order) orderResponse {
	resp := orderResponse{
		ID:         order.ID,
		Status:     order.Status,
		Total:      order.Total,
		Date:       order.Date.Format("2006-01-02"),
		OrderItems: make([]orderItemResponse, 0, len(order.Items)),
	}
	if order.User != nil {
		resp.User = order.User.Username
	}
	if order.DeliveryCrew != nil {
		username := order.DeliveryCrew.Username
		resp.DeliveryCrew = &username
	}
	for _, item := range order.Items {
		itemResp := orderItemResponse{
			ID:        item.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Price:     item.Price,
		}
		if item.MenuItem != nil {
			itemResp.MenuItem = item.MenuItem.Title
		}
		resp.OrderItems = append(resp.OrderItems, itemResp)
	}
	return resp
}

func toOrderResponses(orders []models.Order) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}

// userResponse 组成员响应体
type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserResponses(users []models.User) []userResponse {
	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
	}
	return responses
}
