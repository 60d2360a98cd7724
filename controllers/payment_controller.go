package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
	Students *services.StudentService
	Settings *services.SettingService
}

func NewPaymentController(payments *services.PaymentService, students *services.StudentService, settings *services.SettingService) *PaymentController {
	return &PaymentController{Payments: payments, Students: students, Settings: settings}
}

func (pc *PaymentController) Index(c *gin.Context) {
	rows, err := pc.Payments.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("list payments failed")
	}
	students, err := pc.Students.NameList()
	if err != nil {
		log.Error().Err(err).Msg("list students failed")
	}
	methods, err := pc.Settings.PaymentMethods()
	if err != nil {
		log.Error().Err(err).Msg("load payment methods failed")
	}
	render(c, "Payments", "payments.tmpl", gin.H{
		"Payments": rows,
		"Students": students,
		"Methods":  methods,
	})
}

// Create is the admin path: any status may be chosen at creation.
func (pc *PaymentController) Create(c *gin.Context) {
	studentID, err := parseUint(c.PostForm("student_id"))
	if err != nil {
		utils.Flash(c, "error", "Select a student")
		c.Redirect(http.StatusFound, "/payments")
		return
	}
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		utils.Flash(c, "error", "Amount must be a number")
		c.Redirect(http.StatusFound, "/payments")
		return
	}

	input := services.PaymentInput{
		StudentID: studentID,
		Amount:    amount,
		Method:    c.DefaultPostForm("method", "Cash"),
		PaidOn:    c.PostForm("paid_on"),
		Note:      c.PostForm("note"),
		Status:    c.DefaultPostForm("status", "Pending"),
	}

	_, dropped, err := pc.Payments.Record(input, proofFile(c), false)
	switch {
	case err == nil && dropped:
		utils.Flash(c, "success", "Payment recorded (proof file ignored: unsupported type)")
	case err == nil:
		utils.Flash(c, "success", "Payment recorded")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "error", "Student not found")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Amount must be at least 0 and status must be valid")
	default:
		log.Error().Err(err).Msg("record payment failed")
		utils.Flash(c, "error", "Could not record payment")
	}
	c.Redirect(http.StatusFound, "/payments")
}

// proofFile returns the optional uploaded proof, nil when absent.
func proofFile(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile("proof")
	if err != nil {
		return nil
	}
	return fh
}
