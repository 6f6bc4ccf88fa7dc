package consts

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	TimeLayout = "2006-01-02 15:04:05"
)

const (
	DefaultAvatarURL = "default_avatar.png"
	DefaultCoverURL  = "default_cover.png"
)
