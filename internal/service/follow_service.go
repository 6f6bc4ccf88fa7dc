package service

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/redis"
	"Chirper/internal/repository"
	"context"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// MaxFollowingCount 与 CDC 侧 zset 的截断长度一致：关注数不越过缓存容量，
// 缓存里的关注集合才始终是全量
const MaxFollowingCount = 1000

type FollowService interface {
	ListFollowings(ctx context.Context, targetId, requesterId uint64) ([]*dto.FollowingDTO, error)
	ListFollowers(ctx context.Context, targetId, requesterId uint64) ([]*dto.FollowerDTO, error)
	Follow(ctx context.Context, followerId, followingId uint64) error
	Unfollow(ctx context.Context, followerId, followingId uint64) error
	IsFollowing(ctx context.Context, userId, followingId uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userId uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userId uint64) (int64, error)
}

type FollowServiceImpl struct {
	userRepo       repository.UserRepo
	followshipRepo repository.FollowshipRepo
}

func NewFollowService(userRepo repository.UserRepo, followshipRepo repository.FollowshipRepo) FollowService {
	return &FollowServiceImpl{
		userRepo:       userRepo,
		followshipRepo: followshipRepo,
	}
}

type fetchCountFunc func(ctx context.Context, userId uint64) (int64, error)

func (s *FollowServiceImpl) ListFollowings(ctx context.Context, targetId, requesterId uint64) ([]*dto.FollowingDTO, error) {
	rows, err := s.listWithTargetCheck(ctx, targetId, s.followshipRepo.ListFollowingsWithUser)
	if err != nil {
		return nil, err
	}

	followingSet, err := s.getFollowingIdSet(ctx, requesterId)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FollowingDTO, 0, len(rows))
	for _, row := range rows {
		_, isFollowed := followingSet[row.UserID]
		items = append(items, &dto.FollowingDTO{
			FollowingID:  row.UserID,
			Name:         row.Name,
			Account:      row.Account,
			Avatar:       row.Avatar,
			Cover:        row.Cover,
			Introduction: row.Introduction,
			IsFollowed:   isFollowed,
		})
	}
	return items, nil
}

func (s *FollowServiceImpl) ListFollowers(ctx context.Context, targetId, requesterId uint64) ([]*dto.FollowerDTO, error) {
	rows, err := s.listWithTargetCheck(ctx, targetId, s.followshipRepo.ListFollowersWithUser)
	if err != nil {
		return nil, err
	}

	followingSet, err := s.getFollowingIdSet(ctx, requesterId)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FollowerDTO, 0, len(rows))
	for _, row := range rows {
		_, isFollowed := followingSet[row.UserID]
		items = append(items, &dto.FollowerDTO{
			FollowerID:   row.UserID,
			Name:         row.Name,
			Account:      row.Account,
			Avatar:       row.Avatar,
			Cover:        row.Cover,
			Introduction: row.Introduction,
			IsFollowed:   isFollowed,
		})
	}
	return items, nil
}

func (s *FollowServiceImpl) Follow(ctx context.Context, followerId, followingId uint64) error {
	if followerId == followingId {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserById(ctx, followingId)
	if err != nil {
		return err
	}
	if target == nil || target.Role == consts.RoleAdmin {
		return ErrNoUserFound
	}

	count, err := s.GetFollowingCount(ctx, followerId)
	if err != nil {
		return err
	}
	if count >= MaxFollowingCount {
		return ErrFollowLimit
	}

	isFollowing, err := s.IsFollowing(ctx, followerId, followingId)
	if err != nil {
		return err
	}
	if isFollowing {
		return ErrFollowExist
	}

	followship := &model.Followship{
		FollowerID:  followerId,
		FollowingID: followingId,
		CreatedAt:   time.Now(),
	}
	return s.followshipRepo.CreateFollowship(ctx, followship)
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerId, followingId uint64) error {
	deleted, err := s.followshipRepo.DeleteFollowship(ctx, followerId, followingId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFollowshipAbsent
	}
	return nil
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, userId, followingId uint64) (bool, error) {
	key := consts.UserFollowingKey + strconv.FormatUint(userId, 10)
	rdb := redis.GetRdbClient()
	res, err := rdb.ZScore(ctx, key, strconv.FormatUint(followingId, 10)).Result()
	if err == nil && res != 0 {
		return true, nil
	}
	followship, err := s.followshipRepo.GetFollowship(ctx, userId, followingId)
	if err != nil {
		return false, err
	}
	return followship != nil, nil
}

func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, userId uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userId,
		consts.UserFollowerCountKey,
		s.followshipRepo.GetFollowerCount,
	)
}

func (s *FollowServiceImpl) GetFollowingCount(ctx context.Context, userId uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userId,
		consts.UserFollowingCountKey,
		s.followshipRepo.GetFollowingCount,
	)
}

// listWithTargetCheck 路径上的目标用户不存在时按 NotFound 处理，
// 不再让后续联表查询裸奔
func (s *FollowServiceImpl) listWithTargetCheck(
	ctx context.Context,
	targetId uint64,
	fetchDB func(ctx context.Context, userId uint64) ([]*repository.FollowUserRow, error),
) ([]*repository.FollowUserRow, error) {
	target, err := s.userRepo.GetUserById(ctx, targetId)
	if err != nil {
		return nil, err
	}
	if target == nil || target.Role == consts.RoleAdmin {
		return nil, ErrNoUserFound
	}
	return fetchDB(ctx, targetId)
}

// getFollowingIdSet 请求者的关注集合，zset 未命中时回源并异步回填
func (s *FollowServiceImpl) getFollowingIdSet(ctx context.Context, userId uint64) (map[uint64]struct{}, error) {
	key := consts.UserFollowingKey + strconv.FormatUint(userId, 10)
	rdb := redis.GetRdbClient()

	members, err := redis.ZRevRange(ctx, key, 0, -1)
	if err == nil && len(members) != 0 {
		set := make(map[uint64]struct{}, len(members))
		for _, m := range members {
			id, err := strconv.ParseUint(m, 10, 64)
			if err != nil {
				return nil, err
			}
			set[id] = struct{}{}
		}
		return set, nil
	}

	rows, err := s.followshipRepo.ListFollowingsWithUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	set := make(map[uint64]struct{}, len(rows))
	for _, row := range rows {
		set[row.UserID] = struct{}{}
	}
	if len(rows) == 0 {
		return set, nil
	}

	go func(data []*repository.FollowUserRow, cacheKey string) {
		_ = redis.DeleteKey(context.Background(), cacheKey) // 使用 Background context 防止 cancel
		pipe := rdb.Pipeline()
		zMembers := make([]redisv9.Z, 0, len(data))
		for _, item := range data {
			zMembers = append(zMembers, redisv9.Z{
				Score:  float64(item.FollowedAt.Unix()),
				Member: item.UserID,
			})
		}
		pipe.ZAdd(context.Background(), cacheKey, zMembers...)
		pipe.Expire(context.Background(), cacheKey, time.Hour*1)
		_, _ = pipe.Exec(context.Background())
	}(rows, key)

	return set, nil
}

func (s *FollowServiceImpl) getCountCommon(
	ctx context.Context,
	userId uint64,
	keyPrefix string,
	fetchDB fetchCountFunc,
) (int64, error) {
	key := keyPrefix + strconv.FormatUint(userId, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := fetchDB(ctx, userId)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}
