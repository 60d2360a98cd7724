package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"hostel-backend/utils"
)

// UploadController streams stored proof files. Names carry no sensitive
// data; access still requires a session.
type UploadController struct {
	UploadDir string
}

func NewUploadController(uploadDir string) *UploadController {
	return &UploadController{UploadDir: uploadDir}
}

func (uc *UploadController) Serve(c *gin.Context) {
	// Sanitize again on the way out so a crafted name cannot escape the
	// upload dir.
	name := utils.SanitizeFilename(c.Param("name"))
	path := filepath.Join(uc.UploadDir, name)

	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.File(path)
}
