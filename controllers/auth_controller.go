package controllers

import (
	"beadcraft/pkg/resp"
	"beadcraft/services"
	"beadcraft/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{s}
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, m, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "merchant": m})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	m, err := ac.service.GetProfile(utils.CurrentMerchantID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, m)
}
