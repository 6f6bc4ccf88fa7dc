package service

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/redis"
	"Chirper/internal/pkg/security"
	"Chirper/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	userRepo := repository.NewUserRepo(db)
	tweetRepo := repository.NewTweetRepo(db)
	followshipRepo := repository.NewFollowshipRepo(db)
	followSvc := NewFollowService(userRepo, followshipRepo)
	return NewUserService(userRepo, tweetRepo, followSvc, noopUploader{})
}

func TestSignUpValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	base := dto.SignUpDTO{
		Name:          "tester",
		Account:       "tester",
		Email:         "tester@example.com",
		Password:      "12345678",
		CheckPassword: "12345678",
	}

	cases := []struct {
		name    string
		mutate  func(d *dto.SignUpDTO)
		wantErr error
	}{
		{"密碼確認不一致", func(d *dto.SignUpDTO) { d.CheckPassword = "87654321" }, ErrCheckPasswordUnlike},
		{"帳號必填", func(d *dto.SignUpDTO) { d.Account = ""; d.Password = ""; d.CheckPassword = "" }, ErrAccountRequired},
		{"帳號全空白", func(d *dto.SignUpDTO) { d.Account = "   " }, ErrAccountRequired},
		{"Email必填", func(d *dto.SignUpDTO) { d.Email = "" }, ErrEmailRequired},
		{"Email全空白", func(d *dto.SignUpDTO) { d.Email = " \t " }, ErrEmailRequired},
		{"密碼必填", func(d *dto.SignUpDTO) { d.Password = ""; d.CheckPassword = "" }, ErrPasswordRequired},
		{"密碼全空白", func(d *dto.SignUpDTO) { d.Password = "   "; d.CheckPassword = "   " }, ErrPasswordRequired},
		{"帳號超長", func(d *dto.SignUpDTO) { d.Account = "aaaaaaaaaaaaaaaaaaaaa" }, ErrAccountTooLong},
		{"名稱超長", func(d *dto.SignUpDTO) {
			name := ""
			for i := 0; i < 51; i++ {
				name += "字"
			}
			d.Name = name
		}, ErrNameTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := base
			tc.mutate(&d)
			_, err := svc.SignUp(ctx, &d)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSignUpDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	seedUser(t, db, "first", "first")

	_, err := svc.SignUp(ctx, &dto.SignUpDTO{
		Name: "x", Account: "other", Email: "first@example.com",
		Password: "pw", CheckPassword: "pw",
	})
	assert.ErrorIs(t, err, ErrEmailExist)

	_, err = svc.SignUp(ctx, &dto.SignUpDTO{
		Name: "x", Account: "first", Email: "new@example.com",
		Password: "pw", CheckPassword: "pw",
	})
	assert.ErrorIs(t, err, ErrAccountExist)

	// 帳號與 email 同時撞名時先報 email
	_, err = svc.SignUp(ctx, &dto.SignUpDTO{
		Name: "x", Account: "first", Email: "first@example.com",
		Password: "pw", CheckPassword: "pw",
	})
	assert.ErrorIs(t, err, ErrEmailExist)
}

func TestSignUpSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, &dto.SignUpDTO{
		Name: "tester", Account: "tester", Email: "tester@example.com",
		Password: "12345678", CheckPassword: "12345678",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, consts.RoleUser, created.Role)
	assert.Equal(t, consts.DefaultAvatarURL, created.Avatar)

	var stored model.User
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.NotEqual(t, "12345678", stored.Password)
	assert.NoError(t, security.CheckPasswordHash("12345678", stored.Password))
}

func TestSignIn(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "tester", "tester")
	seedAdmin(t, db, "root")

	_, err := svc.SignIn(ctx, &dto.SignInDTO{Account: "", Password: ""})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.SignIn(ctx, &dto.SignInDTO{Account: "nobody", Password: "12345678"})
	assert.ErrorIs(t, err, ErrUserNotExist)

	// 管理員不可走此登入通道
	_, err = svc.SignIn(ctx, &dto.SignInDTO{Account: "root", Password: "12345678"})
	assert.ErrorIs(t, err, ErrUserNotExist)

	_, err = svc.SignIn(ctx, &dto.SignInDTO{Account: "tester", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	result, err := svc.SignIn(ctx, &dto.SignInDTO{Account: "tester", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := security.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Account, claims.Account)
	assert.Equal(t, user.Name, claims.Name)
}

func TestLogoutBlacklistsSignature(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "tester", "tester")
	result, err := svc.SignIn(ctx, &dto.SignInDTO{Account: user.Account, Password: "12345678"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Token))

	signature, err := security.ExtractSignature(result.Token)
	require.NoError(t, err)
	value, err := redis.GetValue(ctx, signature)
	require.NoError(t, err)
	assert.NotEmpty(t, value)
}

func TestGetUserProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "tester", "tester")
	fan1 := seedUser(t, db, "fan1", "fan1")
	fan2 := seedUser(t, db, "fan2", "fan2")
	idol := seedUser(t, db, "idol", "idol")
	admin := seedAdmin(t, db, "root")

	now := time.Now()
	seedFollowship(t, db, fan1.ID, user.ID, now)
	seedFollowship(t, db, fan2.ID, user.ID, now)
	seedFollowship(t, db, user.ID, idol.ID, now)
	seedTweet(t, db, user.ID, "hello", now)

	profile, err := svc.GetUserProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.Follower)
	assert.Equal(t, int64(1), profile.Following)
	assert.Equal(t, int64(1), profile.TweetAmount)
	assert.Equal(t, user.Account, profile.Account)

	_, err = svc.GetUserProfile(ctx, admin.ID)
	assert.ErrorIs(t, err, ErrNoUserFound)

	_, err = svc.GetUserProfile(ctx, 99999)
	assert.ErrorIs(t, err, ErrNoUserFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "tester", "tester")
	other := seedUser(t, db, "other", "other")

	_, err := svc.UpdateProfile(ctx, other.ID, user.ID, &dto.UpdateProfileDTO{}, nil, nil)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	longName := ""
	for i := 0; i < 51; i++ {
		longName += "字"
	}
	_, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileDTO{Name: &longName}, nil, nil)
	assert.ErrorIs(t, err, ErrNameTooLong)

	// 提交空串是清空，缺省不改
	name := "renamed"
	empty := ""
	updated, err := svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileDTO{
		Name:         &name,
		Introduction: &empty,
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "", updated.Introduction)

	updated, err = svc.UpdateProfile(ctx, user.ID, user.ID, &dto.UpdateProfileDTO{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	// 未提交文件時保留既有頭像
	assert.Equal(t, consts.DefaultAvatarURL, updated.Avatar)
}
