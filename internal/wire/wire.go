package wire

import (
	"Chirper/internal/api"
	"Chirper/internal/api/config"
	"Chirper/internal/api/handler"
	"Chirper/internal/job"
	"Chirper/internal/pkg/cron"
	"Chirper/internal/pkg/kafka"
	"Chirper/internal/pkg/storage"
	"Chirper/internal/repository"
	"Chirper/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	tweetRepo := repository.NewTweetRepo(db)
	replyRepo := repository.NewReplyRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	followshipRepo := repository.NewFollowshipRepo(db)

	uploader, err := storage.NewUploader(cfg.Storage)
	if err != nil {
		return nil, err
	}

	followService := service.NewFollowService(userRepo, followshipRepo)
	userService := service.NewUserService(userRepo, tweetRepo, followService, uploader)
	feedService := service.NewFeedService(userRepo, tweetRepo, replyRepo, likeRepo)
	tweetService := service.NewTweetService(tweetRepo, replyRepo, likeRepo)

	handlers := &api.HandlersGroup{
		UserHandler:   handler.NewUserHandler(userService),
		FeedHandler:   handler.NewFeedHandler(feedService),
		FollowHandler: handler.NewFollowHandler(followService),
		TweetHandler:  handler.NewTweetHandler(tweetService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewFollowCacheJob(followshipRepo))

	// CDC 链路可按部署环境整体关停
	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		kafkaMgr, err = kafka.NewConsumerManager(cfg)
		if err != nil {
			return nil, err
		}
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
