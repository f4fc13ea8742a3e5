package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/opsdash/internal/server/http/handlers"
	"github.com/polkiloo/opsdash/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	salesHandler := handlers.NewSalesHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)
	engine.GET("/sales", salesHandler.Report)

	auth := engine.Group("/auth")
	auth.POST("/login", authHandler.Login)

	user := engine.Group("/user")
	user.POST("/change-password", profileHandler.ChangePassword)
	user.POST("/change-avatar", profileHandler.ChangeAvatar)
	user.DELETE("/change-avatar", profileHandler.RemoveAvatar)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/profile", profileHandler.Profile)

	return engine
}
