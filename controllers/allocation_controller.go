package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type AllocationController struct {
	Rooms    *services.RoomService
	Students *services.StudentService
}

func NewAllocationController(rooms *services.RoomService, students *services.StudentService) *AllocationController {
	return &AllocationController{Rooms: rooms, Students: students}
}

func (alc *AllocationController) Index(c *gin.Context) {
	allocations, err := alc.Rooms.ListAllocations()
	if err != nil {
		log.Error().Err(err).Msg("list allocations failed")
	}
	students, err := alc.Students.NameList()
	if err != nil {
		log.Error().Err(err).Msg("list students failed")
	}
	rooms, err := alc.Rooms.List()
	if err != nil {
		log.Error().Err(err).Msg("list rooms failed")
	}
	render(c, "Allocations", "allocations.tmpl", gin.H{
		"Allocations": allocations,
		"Students":    students,
		"Rooms":       rooms,
	})
}

// Mutate dispatches on the action field: allocate or release.
func (alc *AllocationController) Mutate(c *gin.Context) {
	switch c.PostForm("action") {
	case "allocate":
		alc.allocate(c)
	case "release":
		alc.release(c)
	default:
		utils.Flash(c, "error", "Unknown action")
		c.Redirect(http.StatusFound, "/allocations")
	}
}

func (alc *AllocationController) allocate(c *gin.Context) {
	studentID, err1 := parseUint(c.PostForm("student_id"))
	roomID, err2 := parseUint(c.PostForm("room_id"))
	if err1 != nil || err2 != nil {
		utils.Flash(c, "error", "Select a student and a room")
		c.Redirect(http.StatusFound, "/allocations")
		return
	}

	_, err := alc.Rooms.Allocate(studentID, roomID, c.PostForm("start_date"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Allocated successfully")
	case errors.Is(err, services.ErrRoomFull):
		utils.Flash(c, "error", "Room is full")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "error", "Student or room not found")
	default:
		log.Error().Err(err).Msg("allocate failed")
		utils.Flash(c, "error", "Allocation failed")
	}
	c.Redirect(http.StatusFound, "/allocations")
}

func (alc *AllocationController) release(c *gin.Context) {
	allocID, err := parseUint(c.PostForm("alloc_id"))
	if err != nil {
		utils.Flash(c, "error", "Invalid allocation id")
		c.Redirect(http.StatusFound, "/allocations")
		return
	}

	switch err := alc.Rooms.Release(allocID); {
	case err == nil:
		utils.Flash(c, "success", "Released successfully")
	case errors.Is(err, services.ErrNotActive):
		utils.Flash(c, "error", "Allocation is not active")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "error", "Allocation not found")
	default:
		log.Error().Err(err).Msg("release failed")
		utils.Flash(c, "error", "Release failed")
	}
	c.Redirect(http.StatusFound, "/allocations")
}
