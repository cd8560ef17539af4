package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus-market/constants"
	"campus-market/i18n"
	"campus-market/sessions"
)

// viewData builds the common template context (locale, current user,
// categories, popped flash) and merges the handler's own fields on top.
func viewData(c *gin.Context, titleKey string, extra gin.H) gin.H {
	sess := sessions.Current(c)
	data := gin.H{
		"title":          i18n.T(sess.Lang, titleKey),
		"lang":           sess.Lang,
		"currentUser":    sess.User,
		"categories":     constants.Categories,
		"categoryLabels": constants.CategoryLabels,
		"flash":          sessions.CurrentFlash(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// renderServerError logs the failure and renders the generic localized
// error page. The API surface has its own 500 shape.
func renderServerError(c *gin.Context, log *logrus.Logger, err error) {
	log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	sess := sessions.Current(c)
	c.HTML(http.StatusInternalServerError, "error.html", viewData(c, "title_error", gin.H{
		"message": i18n.T(sess.Lang, "server_error"),
	}))
}
