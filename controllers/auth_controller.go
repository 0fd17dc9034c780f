package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/services"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	resp, err := ctl.svc.Register(input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, resp)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	resp, err := ctl.svc.Login(input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}

func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.svc.Me(currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}

// Logout only acknowledges; tokens are stateless and expire on their own.
func (ctl *AuthController) Logout(c *gin.Context) {
	respondMessage(c, "Logout realizado com sucesso")
}
