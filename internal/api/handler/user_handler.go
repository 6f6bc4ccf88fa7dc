package handler

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/pkg/response"
	"Chirper/internal/service"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) SignUp(c *gin.Context) {
	var signUpDTO dto.SignUpDTO
	err := c.ShouldBind(&signUpDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.SignUp(c.Request.Context(), &signUpDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) SignIn(c *gin.Context) {
	var signInDTO dto.SignInDTO
	err := c.ShouldBind(&signInDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.SignIn(c.Request.Context(), &signInDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := s.userSvc.GetCurrentUser(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUserProfile(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}
	profile, err := s.userSvc.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// UpdateProfile 表单字段区分“未提交”与“提交空值”，文件字段缺失按无变更处理
func (s *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	updateDTO := &dto.UpdateProfileDTO{}
	if name, exist := c.GetPostForm("name"); exist {
		updateDTO.Name = &name
	}
	if introduction, exist := c.GetPostForm("introduction"); exist {
		updateDTO.Introduction = &introduction
	}

	var avatar, cover *multipart.FileHeader
	if file, err := c.FormFile("avatar"); err == nil {
		avatar = file
	}
	if file, err := c.FormFile("cover"); err == nil {
		cover = file
	}

	user, err := s.userSvc.UpdateProfile(c.Request.Context(), c.GetUint64("user_id"), id, updateDTO, avatar, cover)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
