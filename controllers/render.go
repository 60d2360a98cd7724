package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/utils"
)

// render wraps c.HTML with the data every page needs: the session claim
// for the navbar and any pending flash notices.
func render(c *gin.Context, title, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	claim, loggedIn := middleware.CurrentClaim(c)
	data["Title"] = title
	data["Claim"] = claim
	data["LoggedIn"] = loggedIn
	data["Flashes"] = utils.TakeFlashes(c)
	c.HTML(http.StatusOK, name, data)
}

func roleHome(role string) string {
	if role == models.RoleAdmin {
		return "/"
	}
	return "/portal"
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	return uint(v), err
}
