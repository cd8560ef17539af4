package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-market/sessions"
)

// RequireAuth guards the page surface. Unauthenticated requests are sent
// to the sign-in page and the requested URL is remembered so a successful
// sign-in can return to it.
func RequireAuth(manager *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Current(c)
		if !sess.LoggedIn() {
			sess.ReturnTo = c.Request.URL.RequestURI()
			manager.Save(c, sess)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthAPI guards the JSON surface with a plain 401.
func RequireAuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Current(c).LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Next()
	}
}
