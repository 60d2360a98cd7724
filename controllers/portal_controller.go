package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// PortalController is the student-facing surface. Every handler resolves
// the student from the session, never from form input.
type PortalController struct {
	Students *services.StudentService
	Rooms    *services.RoomService
	Payments *services.PaymentService
	Settings *services.SettingService
}

func NewPortalController(students *services.StudentService, rooms *services.RoomService, payments *services.PaymentService, settings *services.SettingService) *PortalController {
	return &PortalController{Students: students, Rooms: rooms, Payments: payments, Settings: settings}
}

func (pc *PortalController) currentStudent(c *gin.Context) *models.Student {
	claim, _ := middleware.CurrentClaim(c)
	student, err := pc.Students.ByUserID(claim.UserID)
	if err != nil {
		log.Error().Err(err).Msg("resolve student failed")
		return nil
	}
	return student
}

func (pc *PortalController) Home(c *gin.Context) {
	student := pc.currentStudent(c)

	var allocation *services.AllocationRow
	var payments []models.Payment
	if student != nil {
		var err error
		allocation, err = pc.Rooms.LatestForStudent(student.ID)
		if err != nil {
			log.Error().Err(err).Msg("load allocation failed")
		}
		payments, err = pc.Payments.ListByStudent(student.ID, 10)
		if err != nil {
			log.Error().Err(err).Msg("load payments failed")
		}
	}

	render(c, "Student Portal", "portal.tmpl", gin.H{
		"Student":    student,
		"Allocation": allocation,
		"Payments":   payments,
	})
}

func (pc *PortalController) RoomsPage(c *gin.Context) {
	rooms, err := pc.Rooms.List()
	if err != nil {
		log.Error().Err(err).Msg("list rooms failed")
	}
	render(c, "Available Rooms", "portal_rooms.tmpl", gin.H{"Rooms": rooms})
}

func (pc *PortalController) PaymentsPage(c *gin.Context) {
	student := pc.currentStudent(c)
	if student == nil {
		utils.Flash(c, "error", "Profile not found.")
		c.Redirect(http.StatusFound, "/portal")
		return
	}

	payments, err := pc.Payments.ListByStudent(student.ID, 0)
	if err != nil {
		log.Error().Err(err).Msg("list payments failed")
	}
	methods, err := pc.Settings.PaymentMethods()
	if err != nil {
		log.Error().Err(err).Msg("load payment methods failed")
	}
	render(c, "My Payments", "portal_payments.tmpl", gin.H{
		"Payments": payments,
		"Methods":  methods,
	})
}

// SubmitPayment always records with status Pending, whatever the form
// carried.
func (pc *PortalController) SubmitPayment(c *gin.Context) {
	student := pc.currentStudent(c)
	if student == nil {
		utils.Flash(c, "error", "Profile not found.")
		c.Redirect(http.StatusFound, "/portal")
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		utils.Flash(c, "error", "Amount must be a number")
		c.Redirect(http.StatusFound, "/portal/payments")
		return
	}

	input := services.PaymentInput{
		StudentID: student.ID,
		Amount:    amount,
		Method:    c.DefaultPostForm("method", "Challan"),
		PaidOn:    c.PostForm("paid_on"),
		Note:      c.PostForm("note"),
	}

	_, dropped, err := pc.Payments.Record(input, proofFile(c), true)
	switch {
	case err == nil && dropped:
		utils.Flash(c, "success", "Payment submitted (proof file ignored: unsupported type). Awaiting admin review.")
	case err == nil:
		utils.Flash(c, "success", "Payment submitted. Awaiting admin review.")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Amount must be at least 0")
	default:
		log.Error().Err(err).Msg("submit payment failed")
		utils.Flash(c, "error", "Could not submit payment")
	}
	c.Redirect(http.StatusFound, "/portal/payments")
}

func (pc *PortalController) ProfilePage(c *gin.Context) {
	student := pc.currentStudent(c)
	if student == nil {
		utils.Flash(c, "error", "Profile not found.")
		c.Redirect(http.StatusFound, "/portal")
		return
	}
	render(c, "Edit Profile", "portal_profile.tmpl", gin.H{"Student": student})
}

func (pc *PortalController) UpdateProfile(c *gin.Context) {
	student := pc.currentStudent(c)
	if student == nil {
		utils.Flash(c, "error", "Profile not found.")
		c.Redirect(http.StatusFound, "/portal")
		return
	}

	input := services.StudentInput{
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Guardian:   c.PostForm("guardian"),
		Department: c.PostForm("department"),
		Batch:      c.PostForm("batch"),
		Semester:   c.PostForm("semester"),
	}

	switch err := pc.Students.UpdateProfile(student.ID, input); {
	case err == nil:
		utils.Flash(c, "success", "Profile updated")
		c.Redirect(http.StatusFound, "/portal")
	case errors.Is(err, services.ErrConflict):
		utils.Flash(c, "error", "Email already in use.")
		c.Redirect(http.StatusFound, "/portal/profile")
	default:
		log.Error().Err(err).Msg("update profile failed")
		utils.Flash(c, "error", "Could not update profile")
		c.Redirect(http.StatusFound, "/portal/profile")
	}
}
