package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"campus-market/config"
	"campus-market/controllers"
	"campus-market/infra"
	"campus-market/middlewares"
	"campus-market/models"
	"campus-market/repositories"
	"campus-market/services"
	"campus-market/sessions"
	"campus-market/storage"
)

func setupRouter(db *gorm.DB, cfg config.Config, log *logrus.Logger) (*gin.Engine, error) {
	sessionManager := sessions.NewManager(cfg.Session.Secret)

	images, err := storage.NewImageStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)
	authController := controllers.NewAuthController(authService, sessionManager, log)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService, sessionManager, images, log)
	itemAPIController := controllers.NewItemAPIController(itemService, log)

	r := gin.Default()
	r.Use(cors.Default())
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/uploads", cfg.Upload.Dir)
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

	return r, nil
}

func main() {
	log := infra.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") != "false" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
	}

	r, err := setupRouter(db, cfg, log)
	if err != nil {
		log.Fatalf("setup router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middlewares.MethodOverride(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}
