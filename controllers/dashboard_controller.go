package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
)

type DashboardController struct {
	Reports *services.ReportService
}

func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{Reports: reports}
}

func (dc *DashboardController) Index(c *gin.Context) {
	claim, _ := middleware.CurrentClaim(c)
	if claim.Role != models.RoleAdmin {
		c.Redirect(http.StatusFound, "/portal")
		return
	}

	stats, err := dc.Reports.Dashboard()
	if err != nil {
		log.Error().Err(err).Msg("dashboard stats failed")
	}
	render(c, "Dashboard", "dashboard.tmpl", gin.H{"Stats": stats})
}
