package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// Session keys written at login.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// CurrentClaim reads the logged-in identity from the session.
func CurrentClaim(c *gin.Context) (services.SessionClaim, bool) {
	sess := sessions.Default(c)
	userID, ok := sess.Get(SessionUserID).(uint)
	if !ok {
		return services.SessionClaim{}, false
	}
	username, _ := sess.Get(SessionUsername).(string)
	role, _ := sess.Get(SessionRole).(string)
	return services.SessionClaim{UserID: userID, Username: username, Role: role}, true
}

// LoginRequired redirects anonymous requests to the login page, keeping
// the requested path for the post-login redirect.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentClaim(c); !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired additionally rejects non-admin sessions, sending them back
// to the student portal with a visible warning.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := CurrentClaim(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		if claim.Role != models.RoleAdmin {
			utils.Flash(c, "error", "Admins only.")
			c.Redirect(http.StatusFound, "/portal")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StudentRequired keeps admins out of the portal views; they land on the
// dashboard instead.
func StudentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, ok := CurrentClaim(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		if claim.Role != models.RoleStudent {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
