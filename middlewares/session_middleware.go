package middlewares

import (
	"github.com/gin-gonic/gin"

	"campus-market/sessions"
)

// Session resolves the signed session cookie for every request. The flash
// slot is popped here: it is handed to the handler for this one render and
// the cookie is rewritten without it.
func Session(manager *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessions.CookieName)
		sess := manager.Decode(token)

		if flash := sess.PopFlash(); flash != nil {
			sessions.AttachFlash(c, flash)
			manager.Save(c, sess)
		}

		sessions.Attach(c, sess)
		c.Next()
	}
}
