package routes

import (
	adminapi "canvas-app/internal/api/admin"
	authapi "canvas-app/internal/api/auth"
	canvasapi "canvas-app/internal/api/canvases"
	usersapi "canvas-app/internal/api/users"
	"canvas-app/internal/app/http/middleware"
	"canvas-app/internal/domain/canvases"
	"canvas-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {
	canvasStore := store.NewCanvasStore(db)
	userStore := store.NewUserStore(db)
	svc := canvases.NewService(canvasStore, log)

	authH := authapi.NewHandler(db, log)
	usersH := usersapi.NewHandler(db, userStore)
	canvasH := canvasapi.NewHandler(svc, canvasStore, log)
	adminH := adminapi.NewHandler(db, canvasStore)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public canvas browsing
	r.GET("/canvases", canvasH.ListPublic)
	r.GET("/canvases/:id", canvasH.Get)
	r.GET("/profiles/:id/name", usersH.GetProfileName)

	// Public auth routes get the strict sanitizer; canvas routes do not,
	// their rich-text fields are cleaned at the DTO boundary.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authH.Register)
	public.POST("/login", authH.Login)
	public.GET("/verify", usersH.VerifyEmail)
	public.POST("/resend-verification", authH.ResendVerification)
	public.POST("/request-password-reset", authH.RequestPasswordReset)
	public.POST("/reset-password", authH.ResetPassword)

	public.GET("/auth/google", authH.GoogleStart)
	public.GET("/auth/google/callback", authH.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersH.GetCurrentUser)
	auth.POST("/change-password", authH.ChangePassword)

	auth.GET("/my/canvases", canvasH.ListMine)
	auth.POST("/canvases", canvasH.Create)
	auth.PUT("/canvases/:id", canvasH.Save)
	auth.POST("/canvases/:id/clone", canvasH.Clone)
	auth.DELETE("/canvases/:id", canvasH.Delete)

	auth.PUT("/canvases/:id/title", canvasH.UpdateTitle)
	auth.PUT("/canvases/:id/version", canvasH.UpdateVersion)
	auth.PUT("/canvases/:id/visibility", canvasH.UpdateVisibility)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminH.Dashboard)
	admin.GET("/users", adminH.ListAllUsers)
	admin.GET("/user/:id", adminH.GetUserDetails)
	admin.POST("/canvases/seed", adminH.SeedCanvases)
}
