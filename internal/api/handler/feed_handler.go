package handler

import (
	"Chirper/internal/pkg/response"
	"Chirper/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) GetUserTweets(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	tweets, err := s.feedSvc.ListTweets(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tweets)
}

func (s *FeedHandler) GetUserRepliedTweets(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	replies, err := s.feedSvc.ListRepliedTweets(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, replies)
}

func (s *FeedHandler) GetUserLikes(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	likes, err := s.feedSvc.ListLikes(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, likes)
}
