package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (rc *RoomController) Index(c *gin.Context) {
	rooms, err := rc.Rooms.List()
	if err != nil {
		log.Error().Err(err).Msg("list rooms failed")
	}
	render(c, "Rooms", "rooms.tmpl", gin.H{"Rooms": rooms})
}

// Mutate handles the POST side of /rooms: create, or delete when the form
// carries _method=DELETE.
func (rc *RoomController) Mutate(c *gin.Context) {
	if c.PostForm("_method") == "DELETE" {
		rc.remove(c)
		return
	}
	rc.create(c)
}

func (rc *RoomController) create(c *gin.Context) {
	capacity, err := strconv.Atoi(c.DefaultPostForm("capacity", "1"))
	if err != nil {
		utils.Flash(c, "error", "Capacity must be a number")
		c.Redirect(http.StatusFound, "/rooms")
		return
	}

	room, err := rc.Rooms.Create(c.PostForm("number"), c.PostForm("type"), capacity)
	switch {
	case err == nil:
		utils.Flash(c, "success", fmt.Sprintf("Room %s added", room.Number))
	case errors.Is(err, services.ErrConflict):
		utils.Flash(c, "error", "Room number already exists")
	case errors.Is(err, services.ErrValidation):
		utils.Flash(c, "error", "Room number and a capacity of at least 1 are required")
	default:
		log.Error().Err(err).Msg("create room failed")
		utils.Flash(c, "error", "Could not add room")
	}
	c.Redirect(http.StatusFound, "/rooms")
}

func (rc *RoomController) remove(c *gin.Context) {
	id, err := parseUint(c.PostForm("id"))
	if err != nil {
		utils.Flash(c, "error", "Invalid room id")
		c.Redirect(http.StatusFound, "/rooms")
		return
	}

	switch err := rc.Rooms.Delete(id); {
	case err == nil:
		utils.Flash(c, "success", "Room deleted")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "error", "Room not found")
	default:
		log.Error().Err(err).Msg("delete room failed")
		utils.Flash(c, "error", "Could not delete room")
	}
	c.Redirect(http.StatusFound, "/rooms")
}
