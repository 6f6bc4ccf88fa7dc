package job

import (
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/logger"
	"Chirper/internal/pkg/redis"
	"Chirper/internal/pkg/util"
	"Chirper/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FollowCacheJob 对 CDC 增量维护的关注计数缓存做周期性对账：
// 把脏集合里的用户按数据库真值重写计数键，抵消丢消息与重复消费造成的漂移
type FollowCacheJob struct {
	followshipRepo repository.FollowshipRepo
}

func NewFollowCacheJob(followshipRepo repository.FollowshipRepo) *FollowCacheJob {
	return &FollowCacheJob{followshipRepo: followshipRepo}
}

func (s *FollowCacheJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.UserFollowDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserFollowDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	set, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert set to int slice error", "err", err)
		return
	}

	for _, uid := range set {
		followerCount, err := s.followshipRepo.GetFollowerCount(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "get follower count error", "err", err)
			continue
		}
		followingCount, err := s.followshipRepo.GetFollowingCount(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "get following count error", "err", err)
			continue
		}

		uidStr := strconv.FormatUint(uid, 10)
		if err = redis.SetWithExpiration(ctx, consts.UserFollowerCountKey+uidStr, followerCount, time.Hour*1); err != nil {
			log.ErrorContext(ctx, "rewrite follower count error", "err", err)
		}
		if err = redis.SetWithExpiration(ctx, consts.UserFollowingCountKey+uidStr, followingCount, time.Hour*1); err != nil {
			log.ErrorContext(ctx, "rewrite following count error", "err", err)
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete dirty set error", "err", err)
	}

	log.InfoContext(ctx, "reconcile follow cache success", "count", len(set))
}
