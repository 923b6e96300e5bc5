package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/pkg/resp"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/services"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type RegisterReq struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=student cook admin"`
	Email       string `json:"email"`
	Grade       string `json:"grade"`
	Allergies   string `json:"allergies"`
	Preferences string `json:"preferences"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Service.Register(services.RegisterIn{
		Username:    req.Username,
		Password:    req.Password,
		Role:        entity.Role(req.Role),
		Email:       req.Email,
		Grade:       req.Grade,
		Allergies:   req.Allergies,
		Preferences: req.Preferences,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrInvalidRole):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username, "role": user.Role},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	user, student, err := ac.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := gin.H{"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role}
	if student != nil {
		out["student"] = student
	}
	resp.OK(c, out)
}
