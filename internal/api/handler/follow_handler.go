package handler

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/pkg/response"
	"Chirper/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) GetUserFollowings(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	items, err := s.followSvc.ListFollowings(c.Request.Context(), id, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	// 空列表返回哨兵对象而非空数组
	if len(items) == 0 {
		response.Success(c, dto.EmptyListDTO{IsEmpty: true})
		return
	}
	response.Success(c, items)
}

func (s *FollowHandler) GetUserFollowers(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	items, err := s.followSvc.ListFollowers(c.Request.Context(), id, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(items) == 0 {
		response.Success(c, dto.EmptyListDTO{IsEmpty: true})
		return
	}
	response.Success(c, items)
}

func (s *FollowHandler) Follow(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	err := s.followSvc.Follow(c.Request.Context(), c.GetUint64("user_id"), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	err := s.followSvc.Unfollow(c.Request.Context(), c.GetUint64("user_id"), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
