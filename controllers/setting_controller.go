package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type SettingController struct {
	Settings *services.SettingService
}

func NewSettingController(settings *services.SettingService) *SettingController {
	return &SettingController{Settings: settings}
}

func (sc *SettingController) Index(c *gin.Context) {
	setting, err := sc.Settings.Get()
	if err != nil {
		log.Error().Err(err).Msg("load settings failed")
	}
	methods, err := sc.Settings.PaymentMethods()
	if err != nil {
		log.Error().Err(err).Msg("load payment methods failed")
	}
	render(c, "Settings", "settings.tmpl", gin.H{
		"Setting": setting,
		"Methods": strings.Join(methods, ", "),
	})
}

func (sc *SettingController) Update(c *gin.Context) {
	input := services.SettingInput{
		Name:           c.PostForm("name"),
		Address:        c.PostForm("address"),
		Phone:          c.PostForm("phone"),
		Email:          c.PostForm("email"),
		PaymentMethods: strings.Split(c.PostForm("payment_methods"), ","),
	}

	if _, err := sc.Settings.Update(input); err != nil {
		log.Error().Err(err).Msg("update settings failed")
		utils.Flash(c, "error", "Could not save settings")
	} else {
		utils.Flash(c, "success", "Settings saved")
	}
	c.Redirect(http.StatusFound, "/settings")
}
