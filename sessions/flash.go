package sessions

import "github.com/gin-gonic/gin"

const flashKey = "flash"

// AttachFlash stores a popped flash on the request context for the
// current render only.
func AttachFlash(c *gin.Context, f *Flash) {
	c.Set(flashKey, f)
}

// CurrentFlash returns the flash popped for this request, if any.
func CurrentFlash(c *gin.Context) *Flash {
	if v, exists := c.Get(flashKey); exists {
		if f, ok := v.(*Flash); ok {
			return f
		}
	}
	return nil
}
