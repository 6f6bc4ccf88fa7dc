package handler

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/pkg/response"
	"Chirper/internal/service"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetSvc service.TweetService
}

func NewTweetHandler(tweetSvc service.TweetService) *TweetHandler {
	return &TweetHandler{tweetSvc: tweetSvc}
}

func (s *TweetHandler) CreateTweet(c *gin.Context) {
	var createDTO dto.CreateTweetDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	tweet, err := s.tweetSvc.CreateTweet(c.Request.Context(), c.GetUint64("user_id"), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tweet)
}

func (s *TweetHandler) CreateReply(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	var createDTO dto.CreateReplyDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.tweetSvc.CreateReply(c.Request.Context(), c.GetUint64("user_id"), id, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TweetHandler) Like(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	err := s.tweetSvc.Like(c.Request.Context(), c.GetUint64("user_id"), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TweetHandler) Unlike(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	err := s.tweetSvc.Unlike(c.Request.Context(), c.GetUint64("user_id"), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
