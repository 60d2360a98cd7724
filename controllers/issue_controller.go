package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// IssueController serves /issues for both roles: a dispatcher checks the
// session role and hands off to the admin or student variant, so neither
// handler carries role conditionals of its own.
type IssueController struct {
	Issues   *services.IssueService
	Students *services.StudentService
}

func NewIssueController(issues *services.IssueService, students *services.StudentService) *IssueController {
	return &IssueController{Issues: issues, Students: students}
}

func (ic *IssueController) Index(c *gin.Context) {
	claim, _ := middleware.CurrentClaim(c)
	if claim.Role == models.RoleAdmin {
		ic.adminIndex(c)
		return
	}
	ic.studentIndex(c, claim)
}

func (ic *IssueController) Mutate(c *gin.Context) {
	claim, _ := middleware.CurrentClaim(c)
	if c.PostForm("action") == "close" {
		ic.close(c, claim)
		return
	}
	if claim.Role == models.RoleAdmin {
		ic.adminLog(c)
		return
	}
	ic.studentLog(c, claim)
}

func (ic *IssueController) adminIndex(c *gin.Context) {
	rows, err := ic.Issues.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("list issues failed")
	}
	students, err := ic.Students.NameList()
	if err != nil {
		log.Error().Err(err).Msg("list students failed")
	}
	render(c, "Issues", "issues_admin.tmpl", gin.H{"Issues": rows, "Students": students})
}

func (ic *IssueController) studentIndex(c *gin.Context, claim services.SessionClaim) {
	var issues []models.Issue
	student, err := ic.Students.ByUserID(claim.UserID)
	if err != nil {
		log.Error().Err(err).Msg("resolve student failed")
	}
	if student != nil {
		issues, err = ic.Issues.ListByStudent(student.ID)
		if err != nil {
			log.Error().Err(err).Msg("list issues failed")
		}
	}
	render(c, "My Complaints", "issues_student.tmpl", gin.H{"Issues": issues})
}

// adminLog may attach the issue to a student chosen in the form, or leave
// it detached.
func (ic *IssueController) adminLog(c *gin.Context) {
	var studentID *uint
	if raw := c.PostForm("student_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			utils.Flash(c, "error", "Invalid student")
			c.Redirect(http.StatusFound, "/issues")
			return
		}
		studentID = &id
	}
	ic.logIssue(c, studentID)
}

// studentLog always resolves the student from the caller's own profile;
// form input is never trusted for it.
func (ic *IssueController) studentLog(c *gin.Context, claim services.SessionClaim) {
	student, err := ic.Students.ByUserID(claim.UserID)
	if err != nil {
		log.Error().Err(err).Msg("resolve student failed")
		utils.Flash(c, "error", "Could not log issue")
		c.Redirect(http.StatusFound, "/issues")
		return
	}
	var studentID *uint
	if student != nil {
		studentID = &student.ID
	}
	ic.logIssue(c, studentID)
}

func (ic *IssueController) logIssue(c *gin.Context, studentID *uint) {
	switch _, err := ic.Issues.Log(c.PostForm("title"), c.PostForm("detail"), studentID); {
	case err == nil:
		utils.Flash(c, "success", "Issue logged")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Title is required")
	default:
		log.Error().Err(err).Msg("log issue failed")
		utils.Flash(c, "error", "Could not log issue")
	}
	c.Redirect(http.StatusFound, "/issues")
}

func (ic *IssueController) close(c *gin.Context, claim services.SessionClaim) {
	if claim.Role != models.RoleAdmin {
		utils.Flash(c, "error", "Not authorized")
		c.Redirect(http.StatusFound, "/issues")
		return
	}

	id, err := parseUint(c.PostForm("id"))
	if err != nil {
		utils.Flash(c, "error", "Invalid issue id")
		c.Redirect(http.StatusFound, "/issues")
		return
	}

	switch err := ic.Issues.Close(id); {
	case err == nil:
		utils.Flash(c, "success", "Issue closed")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "error", "Issue not found")
	default:
		log.Error().Err(err).Msg("close issue failed")
		utils.Flash(c, "error", "Could not close issue")
	}
	c.Redirect(http.StatusFound, "/issues")
}
