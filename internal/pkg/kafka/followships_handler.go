package kafka

import (
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	redisv9 "github.com/redis/go-redis/v9"
)

const maxCachedFollowSetSize = 1000

// FollowshipsHandler 消费 followships 表的 canal 变更，
// 维护双方的关注 zset、计数缓存，并把受影响的用户记入脏集合
type FollowshipsHandler struct {
}

func NewFollowshipsHandler() *FollowshipsHandler {
	return &FollowshipsHandler{}
}

func (s *FollowshipsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("followships consumer setup")
	return nil
}

func (s *FollowshipsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("followships consumer cleanup")
	return nil
}

func (s *FollowshipsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-followships consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-followships process batch error", "err", err)
		return err
	}
	log.Info("topic-followships consume claim end")
	return nil
}

func (s *FollowshipsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "followships")
	if err != nil || canalMsg == nil {
		return nil
	}

	rdb := redis.GetRdbClient()

	pipe := rdb.Pipeline()
	var affectedUIDs []interface{}

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		followingID := StrToUint64(row["following_id"])
		if followerID == 0 || followingID == 0 {
			continue
		}
		affectedUIDs = append(affectedUIDs, followerID, followingID)

		fdrKey := consts.UserFollowerKey + strconv.FormatUint(followingID, 10)
		fngKey := consts.UserFollowingKey + strconv.FormatUint(followerID, 10)
		fdrCountKey := consts.UserFollowerCountKey + strconv.FormatUint(followingID, 10)
		fngCountKey := consts.UserFollowingCountKey + strconv.FormatUint(followerID, 10)

		if canalMsg.Type == INSERT {
			now := float64(time.Now().Unix())
			pipe.ZAdd(ctx, fdrKey, redisv9.Z{Score: now, Member: followerID})
			pipe.ZRemRangeByRank(ctx, fdrKey, 0, -int64(maxCachedFollowSetSize)-1)
			pipe.ZAdd(ctx, fngKey, redisv9.Z{Score: now, Member: followingID})
			pipe.ZRemRangeByRank(ctx, fngKey, 0, -int64(maxCachedFollowSetSize)-1)
			pipe.Incr(ctx, fdrCountKey)
			pipe.Incr(ctx, fngCountKey)
		} else if canalMsg.Type == DELETE {
			pipe.ZRem(ctx, fdrKey, followerID)
			pipe.ZRem(ctx, fngKey, followingID)
			pipe.Decr(ctx, fdrCountKey)
			pipe.Decr(ctx, fngCountKey)
		}
	}

	if len(affectedUIDs) > 0 {
		pipe.SAdd(ctx, consts.UserFollowDirtyKey, affectedUIDs...)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}

	return nil
}
