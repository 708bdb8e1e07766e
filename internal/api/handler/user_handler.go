package handler

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/api/middleware"
	"Blogverse/internal/pkg/response"
	"Blogverse/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	if err := c.ShouldBindJSON(&signupDTO); err != nil {
		response.BindError(c, err)
		return
	}
	session, err := s.userSvc.Signup(c.Request.Context(), &signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

func (s *UserHandler) Signin(c *gin.Context) {
	var signinDTO dto.SigninDTO
	if err := c.ShouldBindJSON(&signinDTO); err != nil {
		response.BindError(c, err)
		return
	}
	session, err := s.userSvc.Signin(c.Request.Context(), &signinDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

func (s *UserHandler) Signout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, service.ErrMissingToken)
		return
	}
	if err := s.userSvc.Signout(c.Request.Context(), claims); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
