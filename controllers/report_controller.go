package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// Occupancy returns one object per room: room, capacity, occupied, vacant.
func (rc *ReportController) Occupancy(c *gin.Context) {
	rows, err := rc.Reports.Occupancy()
	if err != nil {
		log.Error().Err(err).Msg("occupancy report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Income returns payment totals grouped by YYYY-MM, ascending.
func (rc *ReportController) Income(c *gin.Context) {
	rows, err := rc.Reports.MonthlyIncome()
	if err != nil {
		log.Error().Err(err).Msg("income report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
