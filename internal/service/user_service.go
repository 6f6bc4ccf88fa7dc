package service

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/redis"
	"Chirper/internal/pkg/security"
	"Chirper/internal/pkg/storage"
	"Chirper/internal/repository"
	"context"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type UserService interface {
	SignUp(ctx context.Context, signUpDTO *dto.SignUpDTO) (*dto.UserDTO, error)
	SignIn(ctx context.Context, signInDTO *dto.SignInDTO) (*dto.SignInResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetCurrentUser(ctx context.Context, userId uint64) (*dto.UserDTO, error)
	GetUserProfile(ctx context.Context, id uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, actorId, targetId uint64, updateDTO *dto.UpdateProfileDTO, avatar, cover *multipart.FileHeader) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo      repository.UserRepo
	tweetRepo     repository.TweetRepo
	followService FollowService
	uploader      storage.Uploader
}

func NewUserService(
	userRepo repository.UserRepo,
	tweetRepo repository.TweetRepo,
	followService FollowService,
	uploader storage.Uploader,
) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		tweetRepo:     tweetRepo,
		followService: followService,
		uploader:      uploader,
	}
}

func (s *UserServiceImpl) SignUp(ctx context.Context, signUpDTO *dto.SignUpDTO) (*dto.UserDTO, error) {
	// 校验顺序与文案沿用站点历史行为，不可重排
	if signUpDTO.Password != signUpDTO.CheckPassword {
		return nil, ErrCheckPasswordUnlike
	}
	// 全空白输入视同未填
	if strings.TrimSpace(signUpDTO.Account) == "" {
		return nil, ErrAccountRequired
	}
	if strings.TrimSpace(signUpDTO.Email) == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(signUpDTO.Password) == "" {
		return nil, ErrPasswordRequired
	}
	if utf8.RuneCountInString(signUpDTO.Account) > 20 {
		return nil, ErrAccountTooLong
	}
	if utf8.RuneCountInString(signUpDTO.Name) > 50 {
		return nil, ErrNameTooLong
	}

	// 一次扫描同时查两类撞名，email 撞名先报
	existUsers, err := s.userRepo.FindUsersByAccountOrEmail(ctx, signUpDTO.Account, signUpDTO.Email)
	if err != nil {
		return nil, err
	}
	for _, exist := range existUsers {
		if exist.Email == signUpDTO.Email {
			return nil, ErrEmailExist
		}
	}
	for _, exist := range existUsers {
		if exist.Account == signUpDTO.Account {
			return nil, ErrAccountExist
		}
	}

	passwordHash, err := security.HashPassword(signUpDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Account:  signUpDTO.Account,
		Email:    signUpDTO.Email,
		Name:     signUpDTO.Name,
		Password: passwordHash,
		Role:     consts.RoleUser,
		Avatar:   consts.DefaultAvatarURL,
		Cover:    consts.DefaultCoverURL,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func (s *UserServiceImpl) SignIn(ctx context.Context, signInDTO *dto.SignInDTO) (*dto.SignInResultDTO, error) {
	if signInDTO.Account == "" || signInDTO.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetUserByAccount(ctx, signInDTO.Account)
	if err != nil {
		return nil, err
	}
	// 管理员不走这条登录通道
	if user == nil || user.Role == consts.RoleAdmin {
		return nil, ErrUserNotExist
	}

	if err = security.CheckPasswordHash(signInDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	// 令牌携带签发时刻的资料快照
	token, err := security.GenerateToken(&security.UserClaims{
		UserID:       user.ID,
		Account:      user.Account,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		Avatar:       user.Avatar,
		Cover:        user.Cover,
		Introduction: user.Introduction,
	})
	if err != nil {
		return nil, err
	}

	userDTO := dto.UserDTO{}
	if err = copier.Copy(&userDTO, user); err != nil {
		return nil, err
	}
	return &dto.SignInResultDTO{
		Token: token,
		User:  userDTO,
	}, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, userId uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoUserFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func (s *UserServiceImpl) GetUserProfile(ctx context.Context, id uint64) (*dto.ProfileDTO, error) {
	var user *model.User
	var follower, following, tweetAmount int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = s.userRepo.GetUserById(egCtx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		follower, err = s.followService.GetFollowerCount(egCtx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		following, err = s.followService.GetFollowingCount(egCtx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		tweetAmount, err = s.tweetRepo.CountByUserId(egCtx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if user == nil || user.Role == consts.RoleAdmin {
		return nil, ErrNoUserFound
	}

	profileDTO := &dto.ProfileDTO{
		Follower:    follower,
		Following:   following,
		TweetAmount: tweetAmount,
	}
	if err := copier.Copy(&profileDTO.UserDTO, user); err != nil {
		return nil, err
	}
	return profileDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(
	ctx context.Context,
	actorId, targetId uint64,
	updateDTO *dto.UpdateProfileDTO,
	avatar, cover *multipart.FileHeader,
) (*dto.UserDTO, error) {
	if actorId != targetId {
		return nil, ErrPermissionDenied
	}

	user, err := s.userRepo.GetUserById(ctx, targetId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoUserFound
	}

	// 指针判空而非值判空：提交空串是“清空”，缺省才是“不改”
	if updateDTO.Name != nil {
		if utf8.RuneCountInString(*updateDTO.Name) > 50 {
			return nil, ErrNameTooLong
		}
		user.Name = *updateDTO.Name
	}
	if updateDTO.Introduction != nil {
		user.Introduction = *updateDTO.Introduction
	}

	// 两路文件并行上传，没产出新地址就保留旧值
	var avatarURL, coverURL string
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		avatarURL, err = s.uploader.Upload(egCtx, avatar)
		return err
	})
	eg.Go(func() error {
		var err error
		coverURL, err = s.uploader.Upload(egCtx, cover)
		return err
	})
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if avatarURL != "" {
		user.Avatar = avatarURL
	}
	if coverURL != "" {
		user.Cover = coverURL
	}

	user.UpdatedAt = time.Now()
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}
