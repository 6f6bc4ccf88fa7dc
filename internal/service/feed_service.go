package service

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/repository"
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// FeedService 按用户维度组装推文/回复/点赞三种时间线。
// 秒龄由仓储层随查询算出，这里只负责转成人类可读的相对时间
type FeedService interface {
	ListTweets(ctx context.Context, userId uint64) ([]*dto.TweetFeedItemDTO, error)
	ListRepliedTweets(ctx context.Context, userId uint64) ([]*dto.ReplyFeedItemDTO, error)
	ListLikes(ctx context.Context, userId uint64) ([]*dto.LikeFeedItemDTO, error)
}

type FeedServiceImpl struct {
	userRepo  repository.UserRepo
	tweetRepo repository.TweetRepo
	replyRepo repository.ReplyRepo
	likeRepo  repository.LikeRepo
}

func NewFeedService(
	userRepo repository.UserRepo,
	tweetRepo repository.TweetRepo,
	replyRepo repository.ReplyRepo,
	likeRepo repository.LikeRepo,
) FeedService {
	return &FeedServiceImpl{
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
		replyRepo: replyRepo,
		likeRepo:  likeRepo,
	}
}

// diffFromNow 把秒龄还原成过去的时间点再做相对时间格式化
func diffFromNow(ageSeconds int64) string {
	return humanize.Time(time.Now().Add(-time.Duration(ageSeconds) * time.Second))
}

func (s *FeedServiceImpl) ListTweets(ctx context.Context, userId uint64) ([]*dto.TweetFeedItemDTO, error) {
	var user *model.User
	var rows []*repository.TweetFeedRow

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = s.userRepo.GetUserById(egCtx, userId)
		return err
	})
	eg.Go(func() error {
		var err error
		rows, err = s.tweetRepo.ListByUserId(egCtx, userId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if user == nil || user.Role == consts.RoleAdmin {
		return nil, ErrNoUserFound
	}
	// 空时间线按约定视作错误而非空列表
	if len(rows) == 0 {
		return nil, ErrNoTweetsFound
	}

	items := make([]*dto.TweetFeedItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.TweetFeedItemDTO{
			ID:            row.ID,
			UserID:        row.UserID,
			Description:   row.Description,
			CreatedAt:     row.CreatedAt.Format(consts.TimeLayout),
			UpdatedAt:     row.UpdatedAt.Format(consts.TimeLayout),
			DiffCreatedAt: diffFromNow(row.AgeSeconds),
			ReplyCount:    row.ReplyCount,
			LikeCount:     row.LikeCount,
		})
	}
	return items, nil
}

func (s *FeedServiceImpl) ListRepliedTweets(ctx context.Context, userId uint64) ([]*dto.ReplyFeedItemDTO, error) {
	var user *model.User
	var rows []*repository.ReplyFeedRow

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = s.userRepo.GetUserById(egCtx, userId)
		return err
	})
	eg.Go(func() error {
		var err error
		rows, err = s.replyRepo.ListByUserId(egCtx, userId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if user == nil || user.Role == consts.RoleAdmin {
		return nil, ErrNoUserFound
	}
	if len(rows) == 0 {
		return nil, ErrNoRepliesFound
	}

	tweetIds := make([]uint64, 0, len(rows))
	for _, row := range rows {
		tweetIds = append(tweetIds, row.TweetID)
	}
	tweetMap, err := s.getTweetBriefMap(ctx, tweetIds, false)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ReplyFeedItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.ReplyFeedItemDTO{
			ID:            row.ID,
			Comment:       row.Comment,
			CreatedAt:     row.CreatedAt.Format(consts.TimeLayout),
			UpdatedAt:     row.UpdatedAt.Format(consts.TimeLayout),
			DiffCreatedAt: diffFromNow(row.AgeSeconds),
			Tweet:         tweetMap[row.TweetID],
		})
	}
	return items, nil
}

func (s *FeedServiceImpl) ListLikes(ctx context.Context, userId uint64) ([]*dto.LikeFeedItemDTO, error) {
	var user *model.User
	var likes []*model.Like

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = s.userRepo.GetUserById(egCtx, userId)
		return err
	})
	eg.Go(func() error {
		var err error
		likes, err = s.likeRepo.ListByUserId(egCtx, userId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if user == nil || user.Role == consts.RoleAdmin {
		return nil, ErrNoUserFound
	}
	if len(likes) == 0 {
		return nil, ErrNoLikesFound
	}

	tweetIds := make([]uint64, 0, len(likes))
	for _, like := range likes {
		tweetIds = append(tweetIds, like.TweetID)
	}
	// 点赞列表的时间派生字段取自被赞推文而非点赞记录本身
	tweetMap, err := s.getTweetBriefMap(ctx, tweetIds, true)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.LikeFeedItemDTO, 0, len(likes))
	for _, like := range likes {
		items = append(items, &dto.LikeFeedItemDTO{
			ID:        like.ID,
			UserID:    like.UserID,
			TweetID:   like.TweetID,
			CreatedAt: like.CreatedAt,
			Tweet:     tweetMap[like.TweetID],
		})
	}
	return items, nil
}

func (s *FeedServiceImpl) getTweetBriefMap(ctx context.Context, tweetIds []uint64, withDiff bool) (map[uint64]dto.TweetBriefDTO, error) {
	tweetRows, err := s.tweetRepo.ListWithAuthorByIds(ctx, tweetIds)
	if err != nil {
		return nil, err
	}

	tweetMap := make(map[uint64]dto.TweetBriefDTO, len(tweetRows))
	for _, t := range tweetRows {
		brief := dto.TweetBriefDTO{
			ID:          t.ID,
			UserID:      t.UserID,
			Description: t.Description,
			CreatedAt:   t.CreatedAt.Format(consts.TimeLayout),
			UpdatedAt:   t.UpdatedAt.Format(consts.TimeLayout),
			User: dto.UserBriefDTO{
				ID:      t.UserID,
				Name:    t.AuthorName,
				Account: t.AuthorAccount,
				Avatar:  t.AuthorAvatar,
			},
		}
		if withDiff {
			brief.DiffCreatedAt = diffFromNow(t.AgeSeconds)
		}
		tweetMap[t.ID] = brief
	}
	return tweetMap, nil
}
