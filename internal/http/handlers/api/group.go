package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/littlelemon-next/internal/constants"
	"github.com/littlelemon-next/internal/http/response"
	"github.com/littlelemon-next/internal/service"

	"github.com/gin-gonic/gin"
)

type addGroupMemberRequest struct {
	Username string `json:"username"`
}

// ListManagers Manager 组成员列表
func (h *Handler) ListManagers(c *gin.Context) {
	h.listGroupMembers(c, constants.GroupManager)
}

// AddManager 将用户加入 Manager 组
func (h *Handler) AddManager(c *gin.Context) {
	h.addGroupMember(c, constants.GroupManager, constants.GroupDisplayManager)
}

// RemoveManager 将用户移出 Manager 组
func (h *Handler) RemoveManager(c *gin.Context) {
	h.removeGroupMember(c, constants.GroupManager, constants.GroupDisplayManager)
}

// ListDeliveryCrew Delivery Crew 组成员列表
func (h *Handler) ListDeliveryCrew(c *gin.Context) {
	h.listGroupMembers(c, constants.GroupDeliveryCrew)
}

// AddDeliveryCrew 将用户加入 Delivery Crew 组
func (h *Handler) AddDeliveryCrew(c *gin.Context) {
	h.addGroupMember(c, constants.GroupDeliveryCrew, constants.GroupDisplayDeliveryCrew)
}

// RemoveDeliveryCrew 将用户移出 Delivery Crew 组
func (h *Handler) RemoveDeliveryCrew(c *gin.Context) {
	h.removeGroupMember(c, constants.GroupDeliveryCrew, constants.GroupDisplayDeliveryCrew)
}

func (h *Handler) listGroupMembers(c *gin.Context, groupName string) {
	users, err := h.GroupService.ListMembers(groupName)
	if err != nil {
		respondWithMappedError(c, err, nil)
		return
	}
	response.OK(c, toUserResponses(users))
}

func (h *Handler) addGroupMember(c *gin.Context, groupName, displayName string) {
	var req addGroupMemberRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithMappedError(c, err, nil)
		return
	}
	user, err := h.GroupService.AddUser(groupName, req.Username)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, response.Detail{
			Detail: fmt.Sprintf("User %s added to %s group.", user.Username, displayName),
		})
	case errors.Is(err, service.ErrUserAlreadyInGroup):
		response.BadRequest(c, fmt.Sprintf("User %s is already in %s group.", user.Username, displayName))
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found.")
	default:
		respondWithMappedError(c, err, nil)
	}
}

func (h *Handler) removeGroupMember(c *gin.Context, groupName, displayName string) {
	userID := parseIDParam(c, "user_id")
	if userID == 0 {
		response.NotFound(c, "User not found.")
		return
	}
	user, err := h.GroupService.RemoveUser(groupName, userID)
	switch {
	case err == nil:
		response.OK(c, response.Detail{
			Detail: fmt.Sprintf("User %s removed from %s group.", user.Username, displayName),
		})
	case errors.Is(err, service.ErrUserNotInGroup):
		response.BadRequest(c, fmt.Sprintf("User %s not in %s group.", user.Username, displayName))
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found.")
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, fmt.Sprintf("%s group not found.", displayName))
	default:
		respondWithMappedError(c, err, nil)
	}
}
