package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, "Sign in", "login.tmpl", gin.H{"Next": c.Query("next")})
}

func (ac *AuthController) Login(c *gin.Context) {
	claim, err := ac.Auth.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("login failed")
		}
		utils.Flash(c, "error", "Invalid credentials")
		target := "/login"
		if next := c.Query("next"); next != "" {
			target += "?next=" + url.QueryEscape(next)
		}
		c.Redirect(http.StatusFound, target)
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, claim.UserID)
	sess.Set(middleware.SessionUsername, claim.Username)
	sess.Set(middleware.SessionRole, claim.Role)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("session save failed")
		c.String(http.StatusInternalServerError, "session error")
		return
	}

	next := strings.TrimSpace(c.Query("next"))
	if next != "" && strings.HasPrefix(next, "/") {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.Redirect(http.StatusFound, roleHome(claim.Role))
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	render(c, "Student Registration", "register.tmpl", nil)
}

func (ac *AuthController) Register(c *gin.Context) {
	input := services.RegisterInput{
		Username:   c.PostForm("username"),
		Password:   c.PostForm("password"),
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Guardian:   c.PostForm("guardian"),
		Department: c.PostForm("department"),
		Batch:      c.PostForm("batch"),
		Semester:   c.PostForm("semester"),
	}

	switch err := ac.Auth.RegisterStudent(input); {
	case err == nil:
		utils.Flash(c, "success", "Registration successful. Please login.")
		c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, services.ErrConflict):
		utils.Flash(c, "error", "Username or email already exists.")
		c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Username, password and full name are required.")
		c.Redirect(http.StatusFound, "/register")
	default:
		log.Error().Err(err).Msg("registration failed")
		utils.Flash(c, "error", "Registration failed. Try again.")
		c.Redirect(http.StatusFound, "/register")
	}
}

func (ac *AuthController) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
