package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/services"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

func (ctl *UserController) Get(c *gin.Context) {
	user, err := ctl.svc.Get(currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	var input services.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	user, err := ctl.svc.Update(currentUserID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}

func (ctl *UserController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respondMessage(c, "Usuário excluído com sucesso")
}
