package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/arsitekstudio/cms-api/docs"
	"github.com/arsitekstudio/cms-api/internal/api/handler"
	"github.com/arsitekstudio/cms-api/internal/api/middleware"
	"github.com/arsitekstudio/cms-api/internal/auth"
	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
	"github.com/arsitekstudio/cms-api/pkg/logger"
)

// Dependencies carries everything the router needs that is constructed at
// process start.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client // nil disables redis-backed features
	Codec     *auth.TokenCodec
	Resolver  *auth.Resolver
	UploadDir string

	AuthService       ports.AuthService
	UserService       ports.UserService
	ProjectService    ports.ProjectService
	ContentService    ports.ContentService
	SubmissionService ports.SubmissionService
	AnalyticsService  ports.AnalyticsService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("arsitek_cms"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Resolver, deps.Codec)
	userHandler := handler.NewUserHandler(deps.UserService)
	projectHandler := handler.NewProjectHandler(deps.ProjectService)
	serviceHandler := handler.NewServiceHandler(deps.ContentService)
	teamHandler := handler.NewTeamHandler(deps.ContentService)
	settingsHandler := handler.NewSettingsHandler(deps.ContentService)
	contactHandler := handler.NewContactHandler(deps.SubmissionService)
	submissionHandler := handler.NewSubmissionHandler(deps.SubmissionService)
	analyticsHandler := handler.NewAnalyticsHandler(deps.AnalyticsService)
	uploadHandler := handler.NewUploadHandler(deps.UploadDir)
	adminPages := handler.NewAdminPagesHandler()

	session := middleware.Session(deps.Resolver)
	editors := middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)

	e.GET("/api/projects", projectHandler.List)
	e.GET("/api/projects/:slug", projectHandler.Get)
	e.GET("/api/services", serviceHandler.List)
	e.GET("/api/team", teamHandler.List)
	e.GET("/api/settings", settingsHandler.Get)
	e.POST("/api/contact", contactHandler.Submit)
	e.POST("/api/analytics", analyticsHandler.Track)

	// --- Authenticated content management (admins and editors) ---
	managed := e.Group("/api", session, editors)
	managed.POST("/projects", projectHandler.Create)
	managed.PUT("/projects/:id", projectHandler.Update)
	managed.DELETE("/projects/:id", projectHandler.Delete)
	managed.POST("/services", serviceHandler.Create)
	managed.PUT("/services/:id", serviceHandler.Update)
	managed.DELETE("/services/:id", serviceHandler.Delete)
	managed.POST("/team", teamHandler.Create)
	managed.PUT("/team/:id", teamHandler.Update)
	managed.DELETE("/team/:id", teamHandler.Delete)
	managed.GET("/submissions", submissionHandler.List)
	managed.GET("/submissions/:id", submissionHandler.Get)
	managed.PATCH("/submissions/:id", submissionHandler.MarkRead)
	managed.DELETE("/submissions/:id", submissionHandler.Delete)
	managed.GET("/analytics/stats", analyticsHandler.Stats)
	managed.POST("/upload", uploadHandler.Upload)

	// --- Admin-only management ---
	restricted := e.Group("/api", session, adminOnly)
	restricted.GET("/users", userHandler.List)
	restricted.POST("/users", userHandler.Create)
	restricted.PUT("/users/:id", userHandler.Update)
	restricted.DELETE("/users/:id", userHandler.Delete)
	restricted.PUT("/settings", settingsHandler.Update)

	// --- Admin console pages (structural token check at the edge) ---
	pages := e.Group("/admin", middleware.EdgeGuard())
	pages.GET("", adminPages.Index)
	pages.GET("/", adminPages.Index)
	pages.GET("/login", adminPages.Login)
	pages.GET("/login/", adminPages.Login)
	// Console sub-pages are client routed; the static login routes win
	// over the wildcard.
	pages.GET("/*", adminPages.Index)

	// --- Static uploads ---
	e.Static("/uploads", deps.UploadDir)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
