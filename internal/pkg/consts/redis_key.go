package consts

const (
	UserFollowerKey       = "user:follower:"
	UserFollowingKey      = "user:following:"
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	UserFollowDirtyKey    = "user:follow:dirty"
)
