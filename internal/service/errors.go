package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// 注册/登录文案沿用站点历史版本，繁体原文不可改动
var (
	ErrParamInvalid        = errors.New("參數錯誤")
	ErrCheckPasswordUnlike = errors.New("Passwords do not match")
	ErrAccountRequired     = errors.New("帳號為必填項目")
	ErrEmailRequired       = errors.New("Email為必填項目")
	ErrPasswordRequired    = errors.New("密碼為必填項目")
	ErrAccountTooLong      = errors.New("Account 欄位上限 20 字")
	ErrNameTooLong         = errors.New("Name 欄位上限 50 字")
	ErrEmailExist          = errors.New("email已重複註冊")
	ErrAccountExist        = errors.New("account已重複註冊")

	ErrMissingCredentials = errors.New("Account and password is required")
	ErrUserNotExist       = errors.New("使用者不存在")
	ErrPasswordIncorrect  = errors.New("密碼不相符")
	ErrAccountNotFound    = errors.New("帳號不存在！")

	ErrNoUserFound    = errors.New("No user found")
	ErrNoTweetsFound  = errors.New("No tweets found")
	ErrNoRepliesFound = errors.New("No replies found")
	ErrNoLikesFound   = errors.New("No likes found")

	ErrPermissionDenied = errors.New("permission denied")

	ErrTweetNotFound    = errors.New("推文不存在")
	ErrTweetTooLong     = errors.New("推文字數上限 140 字")
	ErrCommentRequired  = errors.New("內容不可空白")
	ErrFollowSelf       = errors.New("不能追蹤自己")
	ErrFollowExist      = errors.New("已經追蹤過了")
	ErrFollowLimit      = errors.New("追蹤人數已達上限")
	ErrFollowshipAbsent = errors.New("尚未追蹤該使用者")
	ErrLikeExist        = errors.New("已經點過讚了")
	ErrLikeAbsent       = errors.New("尚未點過讚")

	UnExpectedError = errors.New("系統異常，請稍後再試")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrCheckPasswordUnlike: BadRequest,
	ErrAccountRequired:     BadRequest,
	ErrEmailRequired:       BadRequest,
	ErrPasswordRequired:    BadRequest,
	ErrAccountTooLong:      BadRequest,
	ErrNameTooLong:         BadRequest,
	ErrEmailExist:          BadRequest,
	ErrAccountExist:        BadRequest,
	ErrMissingCredentials:  Unauthorized,
	ErrUserNotExist:        Unauthorized,
	ErrPasswordIncorrect:   Unauthorized,
	ErrAccountNotFound:     NotFound,
	ErrNoUserFound:         NotFound,
	ErrNoTweetsFound:       NotFound,
	ErrNoRepliesFound:      NotFound,
	ErrNoLikesFound:        NotFound,
	ErrPermissionDenied:    Forbidden,
	ErrTweetNotFound:       NotFound,
	ErrTweetTooLong:        BadRequest,
	ErrCommentRequired:     BadRequest,
	ErrFollowSelf:          BadRequest,
	ErrFollowExist:         BadRequest,
	ErrFollowLimit:         BadRequest,
	ErrFollowshipAbsent:    BadRequest,
	ErrLikeExist:           BadRequest,
	ErrLikeAbsent:          BadRequest,
	UnExpectedError:        InternalServerError,
}
