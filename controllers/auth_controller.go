package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus-market/dto"
	"campus-market/i18n"
	"campus-market/services"
	"campus-market/sessions"
	"campus-market/validation"
)

type IAuthController interface {
	ShowRegister(ctx *gin.Context)
	Register(ctx *gin.Context)
	ShowLogin(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	SetLanguage(ctx *gin.Context)
}

type AuthController struct {
	service        services.IAuthService
	sessionManager *sessions.Manager
	log            *logrus.Logger
}

func NewAuthController(service services.IAuthService, sessionManager *sessions.Manager, log *logrus.Logger) IAuthController {
	return &AuthController{service: service, sessionManager: sessionManager, log: log}
}

func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", viewData(ctx, "title_register", gin.H{
		"errors":   []validation.FieldError{},
		"formData": dto.RegisterForm{},
	}))
}

func (c *AuthController) Register(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	var form dto.RegisterForm
	_ = ctx.ShouldBind(&form)
	form.Username = strings.TrimSpace(form.Username)

	if errs := validation.Validate(sess.Lang, validation.RegisterChains(form)...); errs != nil {
		ctx.HTML(http.StatusUnprocessableEntity, "register.html", viewData(ctx, "title_register", gin.H{
			"errors":   errs,
			"formData": form,
		}))
		return
	}

	user, err := c.service.Signup(form.Username, form.Password)
	if err != nil {
		if err == services.ErrUsernameTaken {
			ctx.HTML(http.StatusConflict, "register.html", viewData(ctx, "title_register", gin.H{
				"errors":   []validation.FieldError{{Field: "username", Message: i18n.T(sess.Lang, "username_taken")}},
				"formData": form,
			}))
			return
		}
		renderServerError(ctx, c.log, err)
		return
	}

	sess.User = &sessions.User{ID: user.ID, Username: user.Username}
	sess.SetFlash("success", i18n.T(sess.Lang, "flash_registered"))
	c.sessionManager.Save(ctx, sess)
	ctx.Redirect(http.StatusFound, "/items")
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", viewData(ctx, "title_login", gin.H{
		"errors":   []validation.FieldError{},
		"formData": dto.LoginForm{},
	}))
}

func (c *AuthController) Login(ctx *gin.Context) {
	sess := sessions.Current(ctx)

	var form dto.LoginForm
	_ = ctx.ShouldBind(&form)
	form.Username = strings.TrimSpace(form.Username)

	if errs := validation.Validate(sess.Lang, validation.LoginChains(form)...); errs != nil {
		ctx.HTML(http.StatusUnprocessableEntity, "login.html", viewData(ctx, "title_login", gin.H{
			"errors":   errs,
			"formData": form,
		}))
		return
	}

	user, err := c.service.Login(form.Username, form.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			ctx.HTML(http.StatusUnauthorized, "login.html", viewData(ctx, "title_login", gin.H{
				"errors":   []validation.FieldError{{Field: "password", Message: i18n.T(sess.Lang, "login_failed")}},
				"formData": form,
			}))
			return
		}
		renderServerError(ctx, c.log, err)
		return
	}

	redirectURL := sess.ReturnTo
	if redirectURL == "" {
		redirectURL = "/items"
	}

	sess.User = &sessions.User{ID: user.ID, Username: user.Username}
	sess.ReturnTo = ""
	sess.SetFlash("success", i18n.T(sess.Lang, "flash_logged_in"))
	c.sessionManager.Save(ctx, sess)
	ctx.Redirect(http.StatusFound, redirectURL)
}

func (c *AuthController) Logout(ctx *gin.Context) {
	c.sessionManager.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/login")
}

func (c *AuthController) SetLanguage(ctx *gin.Context) {
	locale := ctx.Param("locale")
	if i18n.Supported(locale) {
		sess := sessions.Current(ctx)
		sess.Lang = locale
		c.sessionManager.Save(ctx, sess)
	}

	referer := ctx.GetHeader("Referer")
	if referer == "" {
		referer = "/"
	}
	ctx.Redirect(http.StatusFound, referer)
}
