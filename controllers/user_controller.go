package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type UserController struct {
	Auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{Auth: auth}
}

func (uc *UserController) Index(c *gin.Context) {
	users, err := uc.Auth.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("list users failed")
	}
	render(c, "Users", "users.tmpl", gin.H{"Users": users})
}

func (uc *UserController) Create(c *gin.Context) {
	role := c.DefaultPostForm("role", "admin")

	switch err := uc.Auth.CreateUser(c.PostForm("username"), c.PostForm("password"), role); {
	case err == nil:
		utils.Flash(c, "success", "User created")
	case errors.Is(err, services.ErrConflict):
		utils.Flash(c, "error", "Username already exists")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Username, password and a valid role are required")
	default:
		log.Error().Err(err).Msg("create user failed")
		utils.Flash(c, "error", "Could not create user")
	}
	c.Redirect(http.StatusFound, "/users")
}
