package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
)

type ExportController struct {
	Exports *services.ExportService
}

func NewExportController(exports *services.ExportService) *ExportController {
	return &ExportController{Exports: exports}
}

func (ec *ExportController) StudentsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=students.csv")
	if err := ec.Exports.StudentsCSV(c.Writer); err != nil {
		log.Error().Err(err).Msg("students export failed")
	}
}

func (ec *ExportController) PaymentsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=payments.csv")
	if err := ec.Exports.PaymentsCSV(c.Writer); err != nil {
		log.Error().Err(err).Msg("payments export failed")
	}
}
