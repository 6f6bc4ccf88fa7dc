package service

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/repository"
	"context"
	"strings"
	"unicode/utf8"
)

type TweetService interface {
	CreateTweet(ctx context.Context, userId uint64, createDTO *dto.CreateTweetDTO) (*dto.TweetFeedItemDTO, error)
	CreateReply(ctx context.Context, userId, tweetId uint64, createDTO *dto.CreateReplyDTO) error
	Like(ctx context.Context, userId, tweetId uint64) error
	Unlike(ctx context.Context, userId, tweetId uint64) error
}

type TweetServiceImpl struct {
	tweetRepo repository.TweetRepo
	replyRepo repository.ReplyRepo
	likeRepo  repository.LikeRepo
}

func NewTweetService(
	tweetRepo repository.TweetRepo,
	replyRepo repository.ReplyRepo,
	likeRepo repository.LikeRepo,
) TweetService {
	return &TweetServiceImpl{
		tweetRepo: tweetRepo,
		replyRepo: replyRepo,
		likeRepo:  likeRepo,
	}
}

func (s *TweetServiceImpl) CreateTweet(ctx context.Context, userId uint64, createDTO *dto.CreateTweetDTO) (*dto.TweetFeedItemDTO, error) {
	description := createDTO.Description
	if strings.TrimSpace(description) == "" {
		return nil, ErrParamInvalid
	}
	// 上限按字符数而非字节数
	if utf8.RuneCountInString(description) > 140 {
		return nil, ErrTweetTooLong
	}

	tweet := &model.Tweet{
		UserID:      userId,
		Description: description,
	}
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}

	return &dto.TweetFeedItemDTO{
		ID:          tweet.ID,
		UserID:      tweet.UserID,
		Description: tweet.Description,
		CreatedAt:   tweet.CreatedAt.Format(consts.TimeLayout),
		UpdatedAt:   tweet.UpdatedAt.Format(consts.TimeLayout),
	}, nil
}

func (s *TweetServiceImpl) CreateReply(ctx context.Context, userId, tweetId uint64, createDTO *dto.CreateReplyDTO) error {
	if strings.TrimSpace(createDTO.Comment) == "" {
		return ErrCommentRequired
	}

	tweet, err := s.tweetRepo.GetTweetById(ctx, tweetId)
	if err != nil {
		return err
	}
	if tweet == nil {
		return ErrTweetNotFound
	}

	reply := &model.Reply{
		UserID:  userId,
		TweetID: tweetId,
		Comment: createDTO.Comment,
	}
	return s.replyRepo.CreateReply(ctx, reply)
}

func (s *TweetServiceImpl) Like(ctx context.Context, userId, tweetId uint64) error {
	tweet, err := s.tweetRepo.GetTweetById(ctx, tweetId)
	if err != nil {
		return err
	}
	if tweet == nil {
		return ErrTweetNotFound
	}

	like, err := s.likeRepo.GetLike(ctx, userId, tweetId)
	if err != nil {
		return err
	}
	if like != nil {
		return ErrLikeExist
	}

	return s.likeRepo.CreateLike(ctx, &model.Like{
		UserID:  userId,
		TweetID: tweetId,
	})
}

func (s *TweetServiceImpl) Unlike(ctx context.Context, userId, tweetId uint64) error {
	tweet, err := s.tweetRepo.GetTweetById(ctx, tweetId)
	if err != nil {
		return err
	}
	if tweet == nil {
		return ErrTweetNotFound
	}

	like, err := s.likeRepo.GetLike(ctx, userId, tweetId)
	if err != nil {
		return err
	}
	if like == nil {
		return ErrLikeAbsent
	}

	return s.likeRepo.DeleteLike(ctx, userId, tweetId)
}
