package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campus-market/controllers"
	"campus-market/infra"
	"campus-market/middlewares"
	"campus-market/models"
	"campus-market/repositories"
	"campus-market/services"
	"campus-market/sessions"
	"campus-market/storage"
)

// setupServer wires the full route table against an in-memory database,
// the same way main does.
func setupServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := infra.SetupTestDB()
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	sessionManager := sessions.NewManager("test-secret")
	images, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)
	log := infra.Logger()

	authService := services.NewAuthService(repositories.NewAuthRepository(db))
	authController := controllers.NewAuthController(authService, sessionManager, log)

	itemService := services.NewItemService(repositories.NewItemRepository(db))
	itemController := controllers.NewItemController(itemService, sessionManager, images, log)
	itemAPIController := controllers.NewItemAPIController(itemService, log)

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(middlewares.Session(sessionManager))

	r.GET("/", itemController.Home)
	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)
	r.POST("/lang/:locale", authController.SetLanguage)

	itemRouter := r.Group("/items", middlewares.RequireAuth(sessionManager))
	itemRouter.GET("", itemController.Index)
	itemRouter.GET("/new", itemController.New)
	itemRouter.POST("", itemController.Create)
	itemRouter.GET("/:id", itemController.Show)
	itemRouter.GET("/:id/edit", itemController.Edit)
	itemRouter.PUT("/:id", itemController.Update)
	itemRouter.DELETE("/:id", itemController.Delete)

	apiRouter := r.Group("/api/items")
	apiRouter.GET("", itemAPIController.List)
	apiRouter.GET("/:id", itemAPIController.Get)
	apiRouter.GET("/category/:category", itemAPIController.ByCategory)
	apiRouter.GET("/hot/top10", itemAPIController.Hot)

	apiRouterWithAuth := r.Group("/api/items", middlewares.RequireAuthAPI())
	apiRouterWithAuth.POST("", itemAPIController.Create)
	apiRouterWithAuth.PUT("/:id", itemAPIController.Update)
	apiRouterWithAuth.DELETE("/:id", itemAPIController.Delete)

	return middlewares.MethodOverride(r), db
}

func doForm(h http.Handler, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, h http.Handler, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// register creates an account over HTTP and returns the session cookies.
func register(t *testing.T, h http.Handler, username, password string) []*http.Cookie {
	t.Helper()
	rec := doForm(h, http.MethodPost, "/register", url.Values{
		"username":        {username},
		"password":        {password},
		"confirmPassword": {password},
	}, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
