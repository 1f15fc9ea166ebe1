package api

import (
	"errors"
	"net/http"

	"github.com/littlelemon-next/internal/http/response"
	"github.com/littlelemon-next/internal/logger"
	"github.com/littlelemon-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	status int
	detail string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.Status, appErr.Message)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.detail)
			return
		}
	}
	logger.Errorw("handler_unexpected_error",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.InternalError(c, "Internal server error.")
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, status: http.StatusNotFound, detail: "Not found."},
	{target: service.ErrCategoryTitleRequired, status: http.StatusBadRequest, detail: "Title is required."},
	{target: service.ErrCategoryTitleTaken, status: http.StatusBadRequest, detail: "Category with this title already exists."},
	{target: service.ErrCategoryInUse, status: http.StatusConflict, detail: "Category still has menu items."},
}

var menuItemErrorRules = []mappedHandlerError{
	{target: service.ErrMenuItemNotFound, status: http.StatusNotFound, detail: "Not found."},
	{target: service.ErrMenuItemTitleRequired, status: http.StatusBadRequest, detail: "Title is required."},
	{target: service.ErrMenuItemPriceInvalid, status: http.StatusBadRequest, detail: "Ensure price is greater than or equal to 0."},
	{target: service.ErrMenuItemCategoryInvalid, status: http.StatusBadRequest, detail: "Invalid category_id."},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound, detail: "Not found."},
	{target: service.ErrCartItemExists, status: http.StatusBadRequest, detail: "This menu item is already in your cart."},
	{target: service.ErrCartQuantityInvalid, status: http.StatusBadRequest, detail: "Ensure quantity is greater than or equal to 1."},
	{target: service.ErrCartAlreadyEmpty, status: http.StatusBadRequest, detail: "Cart is already empty."},
	{target: service.ErrMenuItemNotFound, status: http.StatusBadRequest, detail: "Invalid menuitem_id."},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, detail: "Not found."},
	{target: service.ErrCartEmpty, status: http.StatusBadRequest, detail: "Cart is empty."},
	{target: service.ErrOrderStatusInvalid, status: http.StatusBadRequest, detail: "Invalid status."},
	{target: service.ErrDeliveryCrewInvalid, status: http.StatusBadRequest, detail: "Invalid delivery_crew_id."},
	{target: service.ErrDeliveryCrewForbidden, status: http.StatusForbidden, detail: "You do not have permission to perform this action."},
	{target: service.ErrMenuItemNotFound, status: http.StatusBadRequest, detail: "Invalid menuitem_id."},
}
