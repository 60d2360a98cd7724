package utils

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage is a one-shot notice rendered on the next page load.
// Category is "success" or "error".
type FlashMessage struct {
	Category string
	Message  string
}

func Flash(c *gin.Context, category, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(category + "|" + message)
	_ = sess.Save()
}

// TakeFlashes drains the pending notices.
func TakeFlashes(c *gin.Context) []FlashMessage {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save()
	}

	messages := make([]FlashMessage, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(s, "|")
		if !found {
			category, message = "success", s
		}
		messages = append(messages, FlashMessage{Category: category, Message: message})
	}
	return messages
}
