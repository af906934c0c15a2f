package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kwencafe/website/session"
	"github.com/kwencafe/website/utils"
)

const SessionCookieName = "kwen_admin_session"

// AdminAuth gates the admin console. The browser needs a valid signed cookie
// and the server needs a stored API token; anything else goes back to the
// login screen. A stale token is not detected here — the first failing admin
// call surfaces it, per the console's error model.
func AdminAuth(sess *session.Manager, cookieSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookieName)
		if err != nil || value == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if _, err := utils.ParseSessionCookie(value, cookieSecret); err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
