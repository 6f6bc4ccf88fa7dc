package api

import (
	"Chirper/internal/api/middleware"
	"Chirper/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			// 无需登录即可访问的接口
			userGroup.POST("", group.UserHandler.SignUp)
			userGroup.POST("/signin", group.UserHandler.SignIn)
			userGroup.GET("/:id", group.UserHandler.GetUserProfile)
			userGroup.GET("/:id/tweets", group.FeedHandler.GetUserTweets)
			userGroup.GET("/:id/replied_tweets", group.FeedHandler.GetUserRepliedTweets)
			userGroup.GET("/:id/likes", group.FeedHandler.GetUserLikes)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/current", group.UserHandler.GetCurrentUser)
				authGroup.PUT("/:id", group.UserHandler.UpdateProfile)
				authGroup.GET("/:id/followings", group.FollowHandler.GetUserFollowings)
				authGroup.GET("/:id/followers", group.FollowHandler.GetUserFollowers)
			}
		}

		followshipGroup := apiGroup.Group("/followships")
		followshipGroup.Use(middleware.AuthMiddleware())
		{
			followshipGroup.POST("/:id", group.FollowHandler.Follow)
			followshipGroup.DELETE("/:id", group.FollowHandler.Unfollow)
		}

		tweetGroup := apiGroup.Group("/tweets")
		tweetGroup.Use(middleware.AuthMiddleware())
		{
			tweetGroup.POST("", group.TweetHandler.CreateTweet)
			tweetGroup.POST("/:id/replies", group.TweetHandler.CreateReply)
			tweetGroup.POST("/:id/like", group.TweetHandler.Like)
			tweetGroup.POST("/:id/unlike", group.TweetHandler.Unlike)
		}
	}

	return r
}
