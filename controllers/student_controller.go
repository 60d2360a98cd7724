package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type StudentController struct {
	Students *services.StudentService
}

func NewStudentController(students *services.StudentService) *StudentController {
	return &StudentController{Students: students}
}

func (sc *StudentController) Index(c *gin.Context) {
	q := c.Query("q")
	students, err := sc.Students.List(q)
	if err != nil {
		log.Error().Err(err).Msg("list students failed")
	}
	render(c, "Students", "students.tmpl", gin.H{"StudentList": students, "Query": q})
}

func (sc *StudentController) Mutate(c *gin.Context) {
	if c.PostForm("_method") == "DELETE" {
		sc.remove(c)
		return
	}
	sc.create(c)
}

func (sc *StudentController) create(c *gin.Context) {
	input := services.StudentInput{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Guardian:   c.PostForm("guardian"),
		Department: c.PostForm("department"),
		Batch:      c.PostForm("batch"),
		Semester:   c.PostForm("semester"),
	}

	switch _, err := sc.Students.Create(input); {
	case err == nil:
		utils.Flash(c, "success", "Student added")
	case errors.Is(err, services.ErrConflict):
		utils.Flash(c, "error", "Email already exists")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Name is required")
	default:
		log.Error().Err(err).Msg("create student failed")
		utils.Flash(c, "error", "Could not add student")
	}
	c.Redirect(http.StatusFound, "/students")
}

func (sc *StudentController) remove(c *gin.Context) {
	id, err := parseUint(c.PostForm("id"))
	if err != nil {
		utils.Flash(c, "error", "Invalid student id")
		c.Redirect(http.StatusFound, "/students")
		return
	}

	switch err := sc.Students.Delete(id); {
	case err == nil:
		utils.Flash(c, "success", "Student removed")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "error", "Student not found")
	default:
		log.Error().Err(err).Msg("delete student failed")
		utils.Flash(c, "error", "Could not remove student")
	}
	c.Redirect(http.StatusFound, "/students")
}
